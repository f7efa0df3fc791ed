package queue

import (
	"encoding/json"

	"github.com/campaign-next/internal/constants"

	"github.com/hibiken/asynq"
)

// CampaignCloseReportPayload 活动结束报表任务载荷
type CampaignCloseReportPayload struct {
	CampaignID uint `json:"campaign_id"`
	ClosedAt   int  `json:"closed_at"`
}

// NewCampaignCloseReportTask 构建活动结束报表任务
func NewCampaignCloseReportTask(payload CampaignCloseReportPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(constants.TaskCampaignCloseReport, data), nil
}
