package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/campaign-next/internal/models"
)

const campaignReportCacheTTL = 5 * time.Minute

func campaignReportKey(campaignID uint) string {
	return fmt.Sprintf("report:campaign:%d", campaignID)
}

// GetCampaignReport 获取活动报表缓存
func GetCampaignReport(ctx context.Context, campaignID uint) (*models.CampaignReport, bool, error) {
	if campaignID == 0 {
		return nil, false, nil
	}
	var report models.CampaignReport
	hit, err := GetJSON(ctx, campaignReportKey(campaignID), &report)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &report, true, nil
}

// SetCampaignReport 写入活动报表缓存
func SetCampaignReport(ctx context.Context, report *models.CampaignReport) error {
	if report == nil || report.CampaignID == 0 {
		return nil
	}
	return SetJSON(ctx, campaignReportKey(report.CampaignID), report, campaignReportCacheTTL)
}

// DelCampaignReport 删除活动报表缓存
// Worker 重新生成报表后调用，保证下次读取回源数据库
func DelCampaignReport(ctx context.Context, campaignID uint) error {
	if campaignID == 0 {
		return nil
	}
	return Del(ctx, campaignReportKey(campaignID))
}
