package service

import (
	"fmt"
	"math"

	"github.com/campaign-next/internal/logger"
	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/queue"
	"github.com/campaign-next/internal/repository"
)

// TimeService 时间推进与定价引擎。每次 tick 按整小时推进虚拟时钟，
// 对推进后仍生效的活动做线性降价，并把 tick 中结束的活动价格回调到初始价。
type TimeService struct {
	clock        *ClockService
	campaignRepo repository.CampaignRepository
	productRepo  repository.ProductRepository
	queueClient  *queue.Client
}

// NewTimeService 创建时间服务
func NewTimeService(clock *ClockService, campaignRepo repository.CampaignRepository, productRepo repository.ProductRepository, queueClient *queue.Client) *TimeService {
	return &TimeService{
		clock:        clock,
		campaignRepo: campaignRepo,
		productRepo:  productRepo,
		queueClient:  queueClient,
	}
}

// IncreaseTime 推进虚拟时钟 hours 小时并重算活动商品价格，
// 返回 "HH:00" 形式的表盘时间（24 小时制取模）。
//
// 读取旧生效集、写入新时钟、读取新生效集与全部价格写入
// 在时钟锁内作为一个整体执行；期间的订单创建会被锁阻塞。
func (s *TimeService) IncreaseTime(hours int) (string, error) {
	if hours <= 0 {
		return "", ErrTimeValueInvalid
	}

	s.clock.Lock()
	defer s.clock.Unlock()

	oldTime, err := s.clock.Now()
	if err != nil {
		return "", err
	}
	activeBefore, err := s.campaignRepo.ListActiveAt(oldTime)
	if err != nil {
		return "", err
	}

	newTime := oldTime + hours
	if err := s.clock.Set(newTime); err != nil {
		return "", err
	}
	activeAfter, err := s.campaignRepo.ListActiveAt(newTime)
	if err != nil {
		return "", err
	}

	if err := s.applyDecay(hours, activeAfter); err != nil {
		return "", err
	}

	// 结束活动的回调写在降价之后执行：同一商品在本 tick 内
	// 既有存续活动又有结束活动时，以回到初始价为准
	closed := closedCampaigns(activeBefore, activeAfter)
	if err := s.restoreInitialPrices(closed); err != nil {
		return "", err
	}

	for _, campaign := range closed {
		if err := s.queueClient.EnqueueCampaignCloseReport(queue.CampaignCloseReportPayload{
			CampaignID: campaign.ID,
			ClosedAt:   newTime,
		}); err != nil {
			logger.Warnw("campaign_close_report_enqueue_failed", "campaign_id", campaign.ID, "error", err)
		}
	}

	return FormatClock(newTime), nil
}

// FormatClock 将虚拟小时数格式化为 24 小时制时钟显示
func FormatClock(hour int) string {
	return fmt.Sprintf("%02d:00", hour%24)
}

// applyDecay 对生效活动的商品按本 tick 经过的小时数降价
func (s *TimeService) applyDecay(hours int, campaigns []models.Campaign) error {
	for _, campaign := range campaigns {
		product, err := s.productRepo.GetByID(campaign.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		newPrice := nextPrice(hours, product.Price, product.InitialPrice, campaign.PriceManipulationLimit, campaign.Duration)
		if err := s.productRepo.UpdatePrice(product.ID, newPrice); err != nil {
			return err
		}
	}
	return nil
}

// restoreInitialPrices 把结束活动的商品价格无条件回调到初始价
func (s *TimeService) restoreInitialPrices(campaigns []models.Campaign) error {
	for _, campaign := range campaigns {
		product, err := s.productRepo.GetByID(campaign.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return ErrProductNotFound
		}
		if err := s.productRepo.UpdatePrice(product.ID, product.InitialPrice); err != nil {
			return err
		}
	}
	return nil
}

// closedCampaigns 求两个生效集的差（按活动ID）：推进前生效、推进后不再生效
func closedCampaigns(before, after []models.Campaign) []models.Campaign {
	stillActive := make(map[uint]struct{}, len(after))
	for _, campaign := range after {
		stillActive[campaign.ID] = struct{}{}
	}
	closed := make([]models.Campaign, 0)
	for _, campaign := range before {
		if _, ok := stillActive[campaign.ID]; !ok {
			closed = append(closed, campaign)
		}
	}
	return closed
}

// hourlyDiscount 每小时降价额：初始价的 limit% 摊到活动全程，向上取整
func hourlyDiscount(initialPrice, limit, duration int) int {
	return int(math.Ceil(float64(initialPrice) * (float64(limit) / 100) / float64(duration)))
}

// minPrice 价格下限（实数）：初始价减去最大降价幅度
func minPrice(initialPrice, limit int) float64 {
	return float64(initialPrice) - float64(initialPrice)*float64(limit)/100
}

// nextPrice 计算降价后的价格，不低于向上取整后的下限
func nextPrice(hours, currentPrice, initialPrice, limit, duration int) int {
	discount := hours * hourlyDiscount(initialPrice, limit, duration)
	floor := minPrice(initialPrice, limit)
	if float64(currentPrice-discount) < floor {
		return int(math.Ceil(floor))
	}
	return currentPrice - discount
}
