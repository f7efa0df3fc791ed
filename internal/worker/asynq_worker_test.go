package worker

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/provider"
	"github.com/campaign-next/internal/queue"
	"github.com/campaign-next/internal/repository"
	"github.com/campaign-next/internal/service"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Campaign{},
		&models.Order{},
		&models.Setting{},
		&models.CampaignReport{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	reportRepo := repository.NewCampaignReportRepository(db)

	clock := service.NewClockService(settingRepo)
	if err := clock.Set(0); err != nil {
		t.Fatalf("seed clock failed: %v", err)
	}
	productSvc := service.NewProductService(productRepo, clock)

	container := &provider.Container{
		ProductRepo:        productRepo,
		CampaignRepo:       campaignRepo,
		OrderRepo:          orderRepo,
		SettingRepo:        settingRepo,
		CampaignReportRepo: reportRepo,
		CampaignService:    service.NewCampaignService(campaignRepo, orderRepo, productSvc, clock),
	}
	return NewConsumer(container), db
}

func TestHandleCampaignCloseReportPersistsReport(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	product := &models.Product{Code: "P1", Price: 100, InitialPrice: 100, Stock: 1000}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	campaign := &models.Campaign{
		Name: "C1", ProductID: product.ID, Duration: 10,
		PriceManipulationLimit: 20, TargetSalesCount: 100, CreationTime: 0,
	}
	if err := db.Create(campaign).Error; err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	orders := []models.Order{
		{ProductID: product.ID, Quantity: 10, UnitPrice: 150, CreationTime: 1},
		{ProductID: product.ID, Quantity: 2, UnitPrice: 100, CreationTime: 2},
	}
	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			t.Fatalf("create order failed: %v", err)
		}
	}

	task, err := queue.NewCampaignCloseReportTask(queue.CampaignCloseReportPayload{
		CampaignID: campaign.ID,
		ClosedAt:   11,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleCampaignCloseReport(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	report, err := consumer.CampaignReportRepo.GetByCampaignID(campaign.ID)
	if err != nil || report == nil {
		t.Fatalf("load report failed: %v", err)
	}
	if report.CampaignName != "C1" || report.ClosedAt != 11 {
		t.Fatalf("unexpected report header: %+v", report)
	}
	if report.TotalSales != 12 {
		t.Fatalf("total sales want 12, got %d", report.TotalSales)
	}
	if report.AveragePrice != "141.67" {
		t.Fatalf("average price want 141.67, got %s", report.AveragePrice)
	}
}

func TestHandleCampaignCloseReportOverwritesExisting(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	product := &models.Product{Code: "P1", Price: 100, InitialPrice: 100, Stock: 1000}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	campaign := &models.Campaign{
		Name: "C1", ProductID: product.ID, Duration: 10,
		PriceManipulationLimit: 20, TargetSalesCount: 100, CreationTime: 0,
	}
	if err := db.Create(campaign).Error; err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}

	for _, closedAt := range []int{11, 13} {
		task, err := queue.NewCampaignCloseReportTask(queue.CampaignCloseReportPayload{
			CampaignID: campaign.ID,
			ClosedAt:   closedAt,
		})
		if err != nil {
			t.Fatalf("build task failed: %v", err)
		}
		if err := consumer.handleCampaignCloseReport(context.Background(), task); err != nil {
			t.Fatalf("handle task failed: %v", err)
		}
	}

	var count int64
	if err := db.Model(&models.CampaignReport{}).Count(&count).Error; err != nil {
		t.Fatalf("count reports failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("want single report row, got %d", count)
	}
	report, err := consumer.CampaignReportRepo.GetByCampaignID(campaign.ID)
	if err != nil || report == nil {
		t.Fatalf("load report failed: %v", err)
	}
	if report.ClosedAt != 13 {
		t.Fatalf("closed_at want latest 13, got %d", report.ClosedAt)
	}
}

func TestHandleCampaignCloseReportUnknownCampaignIsNoop(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	task, err := queue.NewCampaignCloseReportTask(queue.CampaignCloseReportPayload{
		CampaignID: 999,
		ClosedAt:   5,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleCampaignCloseReport(context.Background(), task); err != nil {
		t.Fatalf("unknown campaign should not error: %v", err)
	}

	var count int64
	if err := db.Model(&models.CampaignReport{}).Count(&count).Error; err != nil {
		t.Fatalf("count reports failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("want no report rows, got %d", count)
	}
}
