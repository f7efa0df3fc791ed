package service

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateProductAndGetInfo(t *testing.T) {
	env := setupServiceTest(t)

	out, err := env.products.CreateProduct("P1", 100, 50)
	if err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if out != "Product created; code P1, price 100, stock 50" {
		t.Fatalf("unexpected output: %s", out)
	}

	info, err := env.products.GetProductInfo("P1")
	if err != nil {
		t.Fatalf("get product info failed: %v", err)
	}
	if info != "Product P1 info; price 100, stock 50" {
		t.Fatalf("unexpected info: %s", info)
	}
}

func TestCreateProductValidations(t *testing.T) {
	env := setupServiceTest(t)

	cases := []struct {
		name  string
		code  string
		price int
		stock int
		want  error
	}{
		{"blank code", "   ", 100, 10, ErrProductCodeInvalid},
		{"code too long", strings.Repeat("x", 51), 100, 10, ErrProductCodeTooLong},
		{"zero price", "P1", 0, 10, ErrPriceInvalid},
		{"negative price", "P1", -3, 10, ErrPriceInvalid},
		{"zero stock", "P1", 100, 0, ErrStockInvalid},
		{"negative stock", "P1", 100, -1, ErrStockInvalid},
	}
	for _, tc := range cases {
		if _, err := env.products.CreateProduct(tc.code, tc.price, tc.stock); !errors.Is(err, tc.want) {
			t.Fatalf("%s: want %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestCreateProductDuplicateCode(t *testing.T) {
	env := setupServiceTest(t)
	env.createProduct(t, "P1", 100, 10)

	_, err := env.products.CreateProduct("P1", 200, 20)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("want ConflictError, got %v", err)
	}
	if conflict.Message != "The product with P1 code has already been created." {
		t.Fatalf("unexpected message: %s", conflict.Message)
	}
}

func TestGetProductInfoUnknownCode(t *testing.T) {
	env := setupServiceTest(t)
	if _, err := env.products.GetProductInfo("NOPE"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestCreateProductStampsClockTime(t *testing.T) {
	env := setupServiceTest(t)
	if _, err := env.times.IncreaseTime(7); err != nil {
		t.Fatalf("tick failed: %v", err)
	}
	product := env.createProduct(t, "P1", 100, 10)
	if product.CreationTime != 7 {
		t.Fatalf("creation time want 7, got %d", product.CreationTime)
	}
	if product.InitialPrice != 100 {
		t.Fatalf("initial price want 100, got %d", product.InitialPrice)
	}
}
