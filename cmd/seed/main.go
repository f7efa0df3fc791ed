package main

import (
	"flag"

	"github.com/campaign-next/internal/config"
	"github.com/campaign-next/internal/logger"
	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/provider"
)

func main() {
	var reset bool
	flag.BoolVar(&reset, "reset", false, "清空业务数据并将虚拟时钟归零")
	flag.Parse()

	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 初始化虚拟时钟
	if err := models.EnsureInitialTime(); err != nil {
		stdLog.Fatalf("Failed to init clock: %v", err)
	}

	container := provider.NewContainer(cfg)

	if reset {
		if err := container.ResetService.Reset(); err != nil {
			stdLog.Fatalf("Failed to reset data: %v", err)
		}
		stdLog.Printf("Business data cleared, clock set to 0")
		return
	}

	// 演示商品
	products := []models.Product{
		{Code: "P1", Price: 100, InitialPrice: 100, Stock: 1000, CreationTime: 0},
		{Code: "P2", Price: 200, InitialPrice: 200, Stock: 500, CreationTime: 0},
		{Code: "P3", Price: 14, InitialPrice: 14, Stock: 125, CreationTime: 0},
	}

	for _, p := range products {
		existing, err := container.ProductRepo.GetByCode(p.Code)
		if err != nil {
			stdLog.Fatalf("Failed to query product %s: %v", p.Code, err)
		}
		if existing != nil {
			stdLog.Printf("Product already exists: %s", p.Code)
			continue
		}
		product := p
		if err := container.ProductRepo.Create(&product); err != nil {
			stdLog.Printf("Failed to create product %s: %v", p.Code, err)
		} else {
			stdLog.Printf("Created product: %s", p.Code)
		}
	}

	stdLog.Printf("Seed completed")
}
