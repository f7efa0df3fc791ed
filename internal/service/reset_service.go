package service

import (
	"github.com/campaign-next/internal/logger"
	"github.com/campaign-next/internal/repository"
)

// ResetService 模拟数据重置服务
type ResetService struct {
	campaignRepo repository.CampaignRepository
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	reportRepo   repository.CampaignReportRepository
	clock        *ClockService
}

// NewResetService 创建重置服务
func NewResetService(campaignRepo repository.CampaignRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository, reportRepo repository.CampaignReportRepository, clock *ClockService) *ResetService {
	return &ResetService{
		campaignRepo: campaignRepo,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		reportRepo:   reportRepo,
		clock:        clock,
	}
}

// Reset 清空活动、订单、报表与商品，并把虚拟时钟归零
func (s *ResetService) Reset() error {
	s.clock.Lock()
	defer s.clock.Unlock()

	if err := s.campaignRepo.DeleteAll(); err != nil {
		return err
	}
	if err := s.orderRepo.DeleteAll(); err != nil {
		return err
	}
	if err := s.reportRepo.DeleteAll(); err != nil {
		return err
	}
	if err := s.productRepo.DeleteAll(); err != nil {
		return err
	}
	if err := s.clock.Set(0); err != nil {
		return err
	}
	logger.Infow("system_data_reset")
	return nil
}
