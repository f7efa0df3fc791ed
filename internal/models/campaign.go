package models

import (
	"time"

	"gorm.io/gorm"
)

// Campaign 限时降价活动表
type Campaign struct {
	ID                     uint           `gorm:"primarykey" json:"id"`                    // 主键
	Name                   string         `gorm:"uniqueIndex;not null" json:"name"`        // 唯一活动名称
	ProductID              uint           `gorm:"not null;index" json:"product_id"`        // 关联商品ID
	Duration               int            `gorm:"not null" json:"duration"`                // 持续小时数
	PriceManipulationLimit int            `gorm:"not null" json:"price_manipulation_limit"` // 最大降价百分比（1-99）
	TargetSalesCount       int            `gorm:"not null" json:"target_sales_count"`      // 目标销量
	CreationTime           int            `gorm:"not null;index" json:"creation_time"`     // 创建时刻（虚拟时钟小时，创建后不变）
	CreatedAt              time.Time      `gorm:"index" json:"created_at"`                 // 创建时间（真实时间，用于同小时订单归属判定）
	UpdatedAt              time.Time      `json:"updated_at"`                              // 更新时间
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`                          // 软删除时间

	// 关联
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 商品信息
}

// TableName 指定表名
func (Campaign) TableName() string {
	return "campaigns"
}

// EndTime 活动窗口结束时刻（闭区间）
func (c Campaign) EndTime() int {
	return c.CreationTime + c.Duration
}

// ActiveAt 判断活动在时刻 t 是否生效，窗口两端均为闭区间
func (c Campaign) ActiveAt(t int) bool {
	return c.CreationTime <= t && t <= c.EndTime()
}
