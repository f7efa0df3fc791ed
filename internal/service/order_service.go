package service

import (
	"fmt"

	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/repository"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	productSvc  *ProductService
	clock       *ClockService
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, productSvc *ProductService, clock *ClockService) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		productSvc:  productSvc,
		clock:       clock,
	}
}

// CreateOrder 下单并扣减库存。单价固定为下单时刻的商品价格，
// 之后商品降价或回调都不会改写已有订单。
// 与推进时间共用时钟锁，保证不会读到 tick 中途的价格。
//
// 订单写入与库存扣减是两次独立写入，之间没有事务保护；
// 两者之间失败会留下已下单未扣库存的状态，沿用原有行为。
func (s *OrderService) CreateOrder(code string, quantity int) (string, error) {
	if quantity <= 0 {
		return "", ErrQuantityInvalid
	}

	s.clock.Lock()
	defer s.clock.Unlock()

	product, err := s.productSvc.GetProduct(code)
	if err != nil {
		return "", err
	}

	newStock := product.Stock - quantity
	if newStock < 0 {
		return "", ErrInsufficientStock
	}

	now, err := s.clock.Now()
	if err != nil {
		return "", err
	}

	order := &models.Order{
		ProductID:    product.ID,
		Quantity:     quantity,
		UnitPrice:    product.Price,
		CreationTime: now,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return "", err
	}
	if err := s.productRepo.UpdateStock(product.ID, newStock); err != nil {
		return "", err
	}

	return fmt.Sprintf("Order created; product %s, quantity %d", product.Code, order.Quantity), nil
}
