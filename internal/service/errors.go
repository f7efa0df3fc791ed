package service

import (
	"errors"
	"fmt"

	"github.com/campaign-next/internal/constants"
)

// 领域校验/查找错误。错误文案就是返回给操作员的应答文本，
// 因此保持为完整的陈述句，不附加内部细节。
var (
	ErrProductCodeInvalid  = errors.New("Product code is not valid.")
	ErrProductCodeTooLong  = fmt.Errorf("Max length of product code should be %d.", constants.CodeMaxLength)
	ErrPriceInvalid        = errors.New("Price is invalid.")
	ErrStockInvalid        = errors.New("Stock is invalid.")
	ErrProductNotFound     = errors.New("Product not found.")
	ErrQuantityInvalid     = errors.New("Quantity is invalid.")
	ErrInsufficientStock   = errors.New("There is not enough stock.")
	ErrCampaignNameInvalid = errors.New("Campaign name is not valid.")
	ErrCampaignNameTooLong = fmt.Errorf("Max length of campaign name should be %d.", constants.NameMaxLength)
	ErrDurationInvalid     = errors.New("Duration is invalid.")
	ErrPriceLimitInvalid   = errors.New("Price manipulation limit is invalid.")
	ErrTargetSalesInvalid  = errors.New("Target sales count is invalid.")
	ErrCampaignNotFound    = errors.New("Campaign not found.")
	ErrTimeValueInvalid    = errors.New("Time value is not valid.")
	ErrSystemConfigMissing = errors.New("System config not found.")
)

// ConflictError 资源冲突错误（重复编码/名称）
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func newProductExistsError(code string) error {
	return &ConflictError{Message: fmt.Sprintf("The product with %s code has already been created.", code)}
}

func newCampaignExistsError(name string) error {
	return &ConflictError{Message: fmt.Sprintf("The campaign with %s name has already been created.", name)}
}
