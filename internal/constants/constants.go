package constants

// 系统设置键
const (
	// TimeSettingKey 虚拟时钟在 settings 表中的键
	TimeSettingKey = "time"
)

// 字段长度约束
const (
	CodeMaxLength = 50
	NameMaxLength = 200
)

// 活动状态
const (
	CampaignStatusActive = "Active"
	CampaignStatusEnded  = "Ended"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	// TaskCampaignCloseReport 活动结束报表生成任务
	TaskCampaignCloseReport = "campaign:close_report"
)
