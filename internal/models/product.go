package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`              // 主键
	Code         string         `gorm:"uniqueIndex;not null" json:"code"`  // 唯一商品编码
	Price        int            `gorm:"not null" json:"price"`             // 当前价格
	InitialPrice int            `gorm:"not null" json:"initial_price"`     // 初始价格（创建后不变）
	Stock        int            `gorm:"not null" json:"stock"`             // 库存
	CreationTime int            `gorm:"not null" json:"creation_time"`     // 创建时刻（虚拟时钟小时）
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`           // 创建时间（真实时间）
	UpdatedAt    time.Time      `json:"updated_at"`                        // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间

	// 关联
	Campaigns []Campaign `gorm:"foreignKey:ProductID" json:"campaigns,omitempty"` // 商品上的活动
	Orders    []Order    `gorm:"foreignKey:ProductID" json:"orders,omitempty"`    // 商品订单
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
