package admin

import (
	"errors"
	"strings"

	"github.com/campaign-next/internal/cache"
	"github.com/campaign-next/internal/constants"
	"github.com/campaign-next/internal/http/response"
	"github.com/campaign-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		response.BadRequest(c, "product code is required")
		return
	}

	product, err := h.ProductService.GetProduct(code)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, err.Error(), nil)
			return
		}
		respondError(c, response.CodeInternal, "product fetch failed", err)
		return
	}

	response.Success(c, product)
}

// CampaignDetail 活动详情
type CampaignDetail struct {
	ID                     uint   `json:"id"`
	Name                   string `json:"name"`
	ProductID              uint   `json:"product_id"`
	Duration               int    `json:"duration"`
	PriceManipulationLimit int    `json:"price_manipulation_limit"`
	TargetSalesCount       int    `json:"target_sales_count"`
	CreationTime           int    `json:"creation_time"`
	EndTime                int    `json:"end_time"`
	Status                 string `json:"status"`
	TotalSales             int    `json:"total_sales"`
	Turnover               int64  `json:"turnover"`
	AveragePrice           string `json:"average_price"`
}

// GetCampaign 获取活动详情及实时销售汇总
func (h *Handler) GetCampaign(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		response.BadRequest(c, "campaign name is required")
		return
	}

	campaign, err := h.CampaignService.GetCampaign(name)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			respondError(c, response.CodeNotFound, err.Error(), nil)
			return
		}
		respondError(c, response.CodeInternal, "campaign fetch failed", err)
		return
	}

	now, err := h.ClockService.Now()
	if err != nil {
		respondError(c, response.CodeInternal, "clock read failed", err)
		return
	}

	data, err := h.CampaignService.BuildReport(campaign)
	if err != nil {
		respondError(c, response.CodeInternal, "campaign report failed", err)
		return
	}

	status := constants.CampaignStatusActive
	if campaign.EndTime() < now {
		status = constants.CampaignStatusEnded
	}

	response.Success(c, CampaignDetail{
		ID:                     campaign.ID,
		Name:                   campaign.Name,
		ProductID:              campaign.ProductID,
		Duration:               campaign.Duration,
		PriceManipulationLimit: campaign.PriceManipulationLimit,
		TargetSalesCount:       campaign.TargetSalesCount,
		CreationTime:           campaign.CreationTime,
		EndTime:                campaign.EndTime(),
		Status:                 status,
		TotalSales:             data.TotalSales,
		Turnover:               data.Turnover,
		AveragePrice:           data.AveragePrice,
	})
}

// GetCampaignReport 获取活动结束后持久化的报表
func (h *Handler) GetCampaignReport(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		response.BadRequest(c, "campaign name is required")
		return
	}

	campaign, err := h.CampaignService.GetCampaign(name)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			respondError(c, response.CodeNotFound, err.Error(), nil)
			return
		}
		respondError(c, response.CodeInternal, "campaign fetch failed", err)
		return
	}

	if cached, hit, err := cache.GetCampaignReport(c.Request.Context(), campaign.ID); err == nil && hit && cached != nil {
		response.Success(c, cached)
		return
	}

	report, err := h.CampaignReportRepo.GetByCampaignID(campaign.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "campaign report fetch failed", err)
		return
	}
	if report == nil {
		respondError(c, response.CodeNotFound, "campaign report not found", nil)
		return
	}
	_ = cache.SetCampaignReport(c.Request.Context(), report)

	response.Success(c, report)
}

// GetCurrentTime 获取虚拟时钟当前小时
func (h *Handler) GetCurrentTime(c *gin.Context) {
	now, err := h.ClockService.Now()
	if err != nil {
		if errors.Is(err, service.ErrSystemConfigMissing) {
			respondError(c, response.CodeNotFound, err.Error(), nil)
			return
		}
		respondError(c, response.CodeInternal, "clock read failed", err)
		return
	}

	response.Success(c, gin.H{
		"hour":  now,
		"clock": service.FormatClock(now),
	})
}
