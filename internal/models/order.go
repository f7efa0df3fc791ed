package models

import "time"

// Order 订单表，创建后不可变
type Order struct {
	ID           uint      `gorm:"primarykey" json:"id"`            // 主键
	ProductID    uint      `gorm:"not null;index" json:"product_id"` // 关联商品ID
	Quantity     int       `gorm:"not null" json:"quantity"`        // 数量
	UnitPrice    int       `gorm:"not null" json:"unit_price"`      // 下单时商品单价快照
	CreationTime int       `gorm:"not null;index" json:"creation_time"` // 下单时刻（虚拟时钟小时）
	CreatedAt    time.Time `gorm:"index" json:"created_at"`         // 下单时间（真实时间）

	// 关联
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 商品信息
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
