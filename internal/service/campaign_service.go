package service

import (
	"fmt"
	"strings"

	"github.com/campaign-next/internal/constants"
	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CampaignService 活动服务
type CampaignService struct {
	campaignRepo repository.CampaignRepository
	orderRepo    repository.OrderRepository
	productSvc   *ProductService
	clock        *ClockService
}

// NewCampaignService 创建活动服务
func NewCampaignService(campaignRepo repository.CampaignRepository, orderRepo repository.OrderRepository, productSvc *ProductService, clock *ClockService) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		orderRepo:    orderRepo,
		productSvc:   productSvc,
		clock:        clock,
	}
}

// CampaignReportData 活动销售汇总
type CampaignReportData struct {
	TotalSales   int
	Turnover     int64
	AveragePrice string
}

// CreateCampaign 创建限时降价活动。窗口（创建时刻 + 持续小时数）一经创建不再变化。
// 同一商品上允许存在窗口重叠的活动，tick 内后处理者的价格写入生效。
func (s *CampaignService) CreateCampaign(name string, productCode string, duration int, priceManipulationLimit int, targetSalesCount int) (string, error) {
	product, err := s.productSvc.GetProduct(productCode)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(name) == "" {
		return "", ErrCampaignNameInvalid
	}
	if len(name) > constants.NameMaxLength {
		return "", ErrCampaignNameTooLong
	}
	if duration <= 0 {
		return "", ErrDurationInvalid
	}
	if priceManipulationLimit <= 0 || priceManipulationLimit >= 100 {
		return "", ErrPriceLimitInvalid
	}
	if targetSalesCount < 0 {
		return "", ErrTargetSalesInvalid
	}

	existing, err := s.campaignRepo.GetByName(name)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", newCampaignExistsError(name)
	}

	now, err := s.clock.Now()
	if err != nil {
		return "", err
	}

	campaign := &models.Campaign{
		Name:                   name,
		ProductID:              product.ID,
		Duration:               duration,
		PriceManipulationLimit: priceManipulationLimit,
		TargetSalesCount:       targetSalesCount,
		CreationTime:           now,
	}
	if err := s.campaignRepo.Create(campaign); err != nil {
		return "", err
	}

	return fmt.Sprintf("Campaign created; name %s, product %s, duration %d, limit %d, target sales count %d",
		campaign.Name, productCode, campaign.Duration, campaign.PriceManipulationLimit, campaign.TargetSalesCount), nil
}

// GetCampaignInfo 查询活动状态与销售汇总
func (s *CampaignService) GetCampaignInfo(name string) (string, error) {
	campaign, err := s.GetCampaign(name)
	if err != nil {
		return "", err
	}

	now, err := s.clock.Now()
	if err != nil {
		return "", err
	}
	status := constants.CampaignStatusActive
	if campaign.EndTime() < now {
		status = constants.CampaignStatusEnded
	}

	report, err := s.BuildReport(campaign)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Campaign %s info; Status %s, Target Sales %d, Total Sales %d, Turnover %d, Average Item Price %s",
		campaign.Name, status, campaign.TargetSalesCount, report.TotalSales, report.Turnover, report.AveragePrice), nil
}

// GetCampaign 根据名称获取活动实体
func (s *CampaignService) GetCampaign(name string) (*models.Campaign, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrCampaignNameInvalid
	}
	if len(name) > constants.NameMaxLength {
		return nil, ErrCampaignNameTooLong
	}
	campaign, err := s.campaignRepo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}

// BuildReport 汇总活动订单：总销量、营业额、平均单价。
// 平均单价保留至多 2 位小数，无销量时为 "-"。
func (s *CampaignService) BuildReport(campaign *models.Campaign) (CampaignReportData, error) {
	orders, err := s.orderRepo.ListByCampaign(campaign)
	if err != nil {
		return CampaignReportData{}, err
	}

	totalSales := 0
	var turnover int64
	for _, order := range orders {
		totalSales += order.Quantity
		turnover += int64(order.Quantity) * int64(order.UnitPrice)
	}

	averagePrice := "-"
	if totalSales > 0 {
		averagePrice = decimal.NewFromInt(turnover).
			Div(decimal.NewFromInt(int64(totalSales))).
			Round(2).
			String()
	}

	return CampaignReportData{
		TotalSales:   totalSales,
		Turnover:     turnover,
		AveragePrice: averagePrice,
	}, nil
}
