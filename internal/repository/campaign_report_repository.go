package repository

import (
	"errors"

	"github.com/campaign-next/internal/models"

	"gorm.io/gorm"
)

// CampaignReportRepository 活动报表数据访问接口
type CampaignReportRepository interface {
	GetByCampaignID(campaignID uint) (*models.CampaignReport, error)
	Upsert(report *models.CampaignReport) error
	DeleteAll() error
}

// GormCampaignReportRepository GORM 实现
type GormCampaignReportRepository struct {
	db *gorm.DB
}

// NewCampaignReportRepository 创建活动报表仓库
func NewCampaignReportRepository(db *gorm.DB) *GormCampaignReportRepository {
	return &GormCampaignReportRepository{db: db}
}

// GetByCampaignID 根据活动ID获取报表
func (r *GormCampaignReportRepository) GetByCampaignID(campaignID uint) (*models.CampaignReport, error) {
	var report models.CampaignReport
	if err := r.db.Where("campaign_id = ?", campaignID).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

// Upsert 写入报表，同一活动重复投递时覆盖旧值
func (r *GormCampaignReportRepository) Upsert(report *models.CampaignReport) error {
	existing, err := r.GetByCampaignID(report.CampaignID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(report).Error
	}
	report.ID = existing.ID
	report.CreatedAt = existing.CreatedAt
	return r.db.Save(report).Error
}

// DeleteAll 删除全部报表（仅用于数据重置）
func (r *GormCampaignReportRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CampaignReport{}).Error
}
