package worker

import (
	"context"
	"encoding/json"

	"github.com/campaign-next/internal/cache"
	"github.com/campaign-next/internal/constants"
	"github.com/campaign-next/internal/logger"
	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/provider"
	"github.com/campaign-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(constants.TaskCampaignCloseReport, c.handleCampaignCloseReport)
}

func (c *Consumer) handleCampaignCloseReport(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_campaign_close_report_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.CampaignCloseReportPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_campaign_close_report_unmarshal_failed", "error", err)
		return err
	}
	if payload.CampaignID == 0 {
		logger.Debugw("worker_campaign_close_report_skip_invalid_payload", "campaign_id", payload.CampaignID)
		return nil
	}
	campaign, err := c.CampaignRepo.GetByID(payload.CampaignID)
	if err != nil {
		logger.Warnw("worker_campaign_close_report_fetch_failed", "campaign_id", payload.CampaignID, "error", err)
		return err
	}
	if campaign == nil {
		logger.Debugw("worker_campaign_close_report_skip_not_found", "campaign_id", payload.CampaignID)
		return nil
	}
	data, err := c.CampaignService.BuildReport(campaign)
	if err != nil {
		logger.Warnw("worker_campaign_close_report_build_failed", "campaign_id", campaign.ID, "error", err)
		return err
	}
	report := &models.CampaignReport{
		CampaignID:   campaign.ID,
		CampaignName: campaign.Name,
		ClosedAt:     payload.ClosedAt,
		TotalSales:   data.TotalSales,
		Turnover:     models.NewMoneyFromInt(data.Turnover),
		AveragePrice: data.AveragePrice,
	}
	if err := c.CampaignReportRepo.Upsert(report); err != nil {
		logger.Warnw("worker_campaign_close_report_save_failed", "campaign_id", campaign.ID, "error", err)
		return err
	}
	// 报表已更新，淘汰缓存让下次读取回源
	if err := cache.DelCampaignReport(ctx, campaign.ID); err != nil {
		logger.Warnw("worker_campaign_close_report_cache_evict_failed", "campaign_id", campaign.ID, "error", err)
	}
	logger.Infow("worker_campaign_close_report_saved",
		"campaign_id", campaign.ID,
		"campaign_name", campaign.Name,
		"closed_at", payload.ClosedAt,
		"total_sales", data.TotalSales,
	)
	return nil
}
