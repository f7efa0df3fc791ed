package service

import (
	"errors"
	"testing"

	"github.com/campaign-next/internal/models"
)

func TestCreateOrderDecrementsStock(t *testing.T) {
	env := setupServiceTest(t)
	env.createProduct(t, "P1", 100, 10)

	out, err := env.orders.CreateOrder("P1", 3)
	if err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if out != "Order created; product P1, quantity 3" {
		t.Fatalf("unexpected output: %s", out)
	}

	product, err := env.productRepo.GetByCode("P1")
	if err != nil || product == nil {
		t.Fatalf("load product failed: %v", err)
	}
	if product.Stock != 7 {
		t.Fatalf("stock want 7, got %d", product.Stock)
	}
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	env := setupServiceTest(t)
	env.createProduct(t, "P1", 100, 10)

	if _, err := env.orders.CreateOrder("P1", 11); !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}

	// 失败的订单不应扣减库存
	if product, _ := env.productRepo.GetByCode("P1"); product.Stock != 10 {
		t.Fatalf("stock want 10, got %d", product.Stock)
	}

	// 恰好清空库存是允许的
	if _, err := env.orders.CreateOrder("P1", 10); err != nil {
		t.Fatalf("exact stock order failed: %v", err)
	}
}

func TestCreateOrderInvalidQuantity(t *testing.T) {
	env := setupServiceTest(t)
	env.createProduct(t, "P1", 100, 10)

	for _, quantity := range []int{0, -1} {
		if _, err := env.orders.CreateOrder("P1", quantity); !errors.Is(err, ErrQuantityInvalid) {
			t.Fatalf("quantity=%d want ErrQuantityInvalid, got %v", quantity, err)
		}
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	env := setupServiceTest(t)
	if _, err := env.orders.CreateOrder("NOPE", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestCreateOrderSnapshotsCurrentPrice(t *testing.T) {
	env := setupServiceTest(t)
	env.createProduct(t, "P1", 100, 1000)
	env.createCampaign(t, "C1", "P1", 10, 20, 100)

	if _, err := env.times.IncreaseTime(3); err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	if _, err := env.orders.CreateOrder("P1", 2); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	var order models.Order
	if err := env.db.Order("id DESC").First(&order).Error; err != nil {
		t.Fatalf("load order failed: %v", err)
	}
	if order.UnitPrice != 94 {
		t.Fatalf("unit price want decayed 94, got %d", order.UnitPrice)
	}
	if order.CreationTime != 3 {
		t.Fatalf("creation time want 3, got %d", order.CreationTime)
	}
}
