package repository

import (
	"github.com/campaign-next/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) error
	ListByCampaign(campaign *models.Campaign) ([]models.Order, error)
	DeleteAll() error
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create 创建订单
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// ListByCampaign 获取归属于活动的订单：商品一致、下单时刻落在活动窗口内，
// 且真实下单时间不早于活动创建时间。后一个条件用真实时间做细粒度判定，
// 同一商品在同一小时内先后创建的两个活动不会共享订单。
func (r *GormOrderRepository) ListByCampaign(campaign *models.Campaign) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.
		Where("product_id = ?", campaign.ProductID).
		Where("creation_time >= ? AND creation_time <= ?", campaign.CreationTime, campaign.EndTime()).
		Where("created_at >= ?", campaign.CreatedAt).
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteAll 删除全部订单（仅用于数据重置）
func (r *GormOrderRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Order{}).Error
}
