package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/queue"
	"github.com/campaign-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// testEnv 一套基于内存库的服务栈
type testEnv struct {
	db *gorm.DB

	productRepo  repository.ProductRepository
	campaignRepo repository.CampaignRepository
	orderRepo    repository.OrderRepository
	settingRepo  repository.SettingRepository
	reportRepo   repository.CampaignReportRepository

	clock     *ClockService
	products  *ProductService
	orders    *OrderService
	campaigns *CampaignService
	times     *TimeService
	reset     *ResetService
}

func setupServiceTest(t *testing.T) *testEnv {
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

	env := &testEnv{
		db:           db,
		productRepo:  repository.NewProductRepository(db),
		campaignRepo: repository.NewCampaignRepository(db),
		orderRepo:    repository.NewOrderRepository(db),
		settingRepo:  repository.NewSettingRepository(db),
		reportRepo:   repository.NewCampaignReportRepository(db),
	}
	env.clock = NewClockService(env.settingRepo)
	env.products = NewProductService(env.productRepo, env.clock)
	env.orders = NewOrderService(env.orderRepo, env.productRepo, env.products, env.clock)
	env.campaigns = NewCampaignService(env.campaignRepo, env.orderRepo, env.products, env.clock)
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	env.times = NewTimeService(env.clock, env.campaignRepo, env.productRepo, queueClient)
	env.reset = NewResetService(env.campaignRepo, env.orderRepo, env.productRepo, env.reportRepo, env.clock)

	if err := env.clock.Set(0); err != nil {
		t.Fatalf("seed clock failed: %v", err)
	}
	return env
}

func (env *testEnv) createProduct(t *testing.T, code string, price, stock int) *models.Product {
	t.Helper()
	if _, err := env.products.CreateProduct(code, price, stock); err != nil {
		t.Fatalf("create product %s failed: %v", code, err)
	}
	product, err := env.productRepo.GetByCode(code)
	if err != nil || product == nil {
		t.Fatalf("load product %s failed: %v", code, err)
	}
	return product
}

func (env *testEnv) createCampaign(t *testing.T, name, code string, duration, limit, target int) *models.Campaign {
	t.Helper()
	if _, err := env.campaigns.CreateCampaign(name, code, duration, limit, target); err != nil {
		t.Fatalf("create campaign %s failed: %v", name, err)
	}
	campaign, err := env.campaignRepo.GetByName(name)
	if err != nil || campaign == nil {
		t.Fatalf("load campaign %s failed: %v", name, err)
	}
	return campaign
}

func (env *testEnv) productPrice(t *testing.T, code string) int {
	t.Helper()
	product, err := env.productRepo.GetByCode(code)
	if err != nil || product == nil {
		t.Fatalf("load product %s failed: %v", code, err)
	}
	return product.Price
}
