package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/campaign-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupOrderRepositoryTest(t *testing.T) (*GormOrderRepository, *GormCampaignRepository) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.Campaign{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewOrderRepository(db), NewCampaignRepository(db)
}

func TestListByCampaignFiltersWindowAndProduct(t *testing.T) {
	orderRepo, campaignRepo := setupOrderRepositoryTest(t)

	base := time.Now().Add(-time.Hour)
	campaign := &models.Campaign{
		Name: "C1", ProductID: 1, Duration: 10,
		PriceManipulationLimit: 20, TargetSalesCount: 100,
		CreationTime: 5, CreatedAt: base,
	}
	if err := campaignRepo.Create(campaign); err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}

	orders := []models.Order{
		{ProductID: 1, Quantity: 1, UnitPrice: 100, CreationTime: 4, CreatedAt: base.Add(time.Minute)},  // 窗口之前
		{ProductID: 1, Quantity: 2, UnitPrice: 100, CreationTime: 5, CreatedAt: base.Add(time.Minute)},  // 左端点
		{ProductID: 1, Quantity: 3, UnitPrice: 100, CreationTime: 15, CreatedAt: base.Add(time.Minute)}, // 右端点
		{ProductID: 1, Quantity: 4, UnitPrice: 100, CreationTime: 16, CreatedAt: base.Add(time.Minute)}, // 窗口之后
		{ProductID: 2, Quantity: 5, UnitPrice: 100, CreationTime: 7, CreatedAt: base.Add(time.Minute)},  // 其他商品
		{ProductID: 1, Quantity: 6, UnitPrice: 100, CreationTime: 7, CreatedAt: base.Add(-time.Minute)}, // 活动创建前的旧订单
	}
	for i := range orders {
		if err := orderRepo.Create(&orders[i]); err != nil {
			t.Fatalf("create order %d failed: %v", i, err)
		}
	}

	matched, err := orderRepo.ListByCampaign(campaign)
	if err != nil {
		t.Fatalf("list by campaign failed: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("want 2 matched orders, got %d", len(matched))
	}
	if matched[0].Quantity != 2 || matched[1].Quantity != 3 {
		t.Fatalf("unexpected matched orders: %+v", matched)
	}
}
