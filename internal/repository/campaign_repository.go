package repository

import (
	"errors"

	"github.com/campaign-next/internal/models"

	"gorm.io/gorm"
)

// CampaignRepository 活动数据访问接口
type CampaignRepository interface {
	GetByID(id uint) (*models.Campaign, error)
	GetByName(name string) (*models.Campaign, error)
	Create(campaign *models.Campaign) error
	ListActiveAt(t int) ([]models.Campaign, error)
	DeleteAll() error
}

// GormCampaignRepository GORM 实现
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository 创建活动仓库
func NewCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// GetByID 根据ID获取活动
func (r *GormCampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.First(&campaign, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// GetByName 根据名称获取活动
func (r *GormCampaignRepository) GetByName(name string) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.Where("name = ?", name).First(&campaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

// Create 创建活动
func (r *GormCampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

// ListActiveAt 获取时刻 t 生效的活动，窗口两端均为闭区间
func (r *GormCampaignRepository) ListActiveAt(t int) ([]models.Campaign, error) {
	campaigns := make([]models.Campaign, 0)
	err := r.db.
		Where("creation_time <= ? AND creation_time + duration >= ?", t, t).
		Find(&campaigns).Error
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

// DeleteAll 删除全部活动（硬删除，仅用于数据重置）
func (r *GormCampaignRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.Campaign{}).Error
}
