package service

import (
	"fmt"
	"strings"

	"github.com/campaign-next/internal/constants"
	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
	clock       *ClockService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, clock *ClockService) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		clock:       clock,
	}
}

// CreateProduct 创建商品，创建时刻取自虚拟时钟，初始价格等于创建价格
func (s *ProductService) CreateProduct(code string, price int, stock int) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", ErrProductCodeInvalid
	}
	if len(code) > constants.CodeMaxLength {
		return "", ErrProductCodeTooLong
	}
	if price <= 0 {
		return "", ErrPriceInvalid
	}
	if stock <= 0 {
		return "", ErrStockInvalid
	}

	existing, err := s.productRepo.GetByCode(code)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", newProductExistsError(code)
	}

	now, err := s.clock.Now()
	if err != nil {
		return "", err
	}

	product := &models.Product{
		Code:         code,
		Price:        price,
		InitialPrice: price,
		Stock:        stock,
		CreationTime: now,
	}
	if err := s.productRepo.Create(product); err != nil {
		return "", err
	}
	return fmt.Sprintf("Product created; code %s, price %d, stock %d", product.Code, product.Price, product.Stock), nil
}

// GetProductInfo 查询商品当前价格与库存
func (s *ProductService) GetProductInfo(code string) (string, error) {
	product, err := s.GetProduct(code)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Product %s info; price %d, stock %d", product.Code, product.Price, product.Stock), nil
}

// GetProduct 根据编码获取商品实体
func (s *ProductService) GetProduct(code string) (*models.Product, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ErrProductCodeInvalid
	}
	if len(code) > constants.CodeMaxLength {
		return nil, ErrProductCodeTooLong
	}
	product, err := s.productRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
