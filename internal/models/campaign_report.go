package models

import "time"

// CampaignReport 活动结束后的销售汇总报表，由队列 Worker 异步生成
type CampaignReport struct {
	ID           uint      `gorm:"primarykey" json:"id"`                // 主键
	CampaignID   uint      `gorm:"uniqueIndex;not null" json:"campaign_id"` // 关联活动ID
	CampaignName string    `gorm:"not null" json:"campaign_name"`       // 活动名称快照
	ClosedAt     int       `gorm:"not null" json:"closed_at"`           // 活动结束被检测到的时刻（虚拟时钟小时）
	TotalSales   int       `gorm:"not null" json:"total_sales"`         // 总销量
	Turnover     Money     `gorm:"type:decimal(20,2);not null" json:"turnover"` // 营业额
	AveragePrice string    `gorm:"not null" json:"average_price"`       // 平均单价（最多 2 位小数，无销量时为 "-"）
	CreatedAt    time.Time `gorm:"index" json:"created_at"`             // 生成时间
}

// TableName 指定表名
func (CampaignReport) TableName() string {
	return "campaign_reports"
}
