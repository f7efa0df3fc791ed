package command

import "github.com/campaign-next/internal/service"

// NewMarketplaceDispatcher 创建并注册全部运营命令
func NewMarketplaceDispatcher(
	productService *service.ProductService,
	orderService *service.OrderService,
	campaignService *service.CampaignService,
	timeService *service.TimeService,
) *Dispatcher {
	d := NewDispatcher()

	d.Register("create_product", []ParamType{ParamString, ParamInt, ParamInt}, func(args []interface{}) (string, error) {
		return productService.CreateProduct(args[0].(string), args[1].(int), args[2].(int))
	})
	d.Register("get_product_info", []ParamType{ParamString}, func(args []interface{}) (string, error) {
		return productService.GetProductInfo(args[0].(string))
	})
	d.Register("create_order", []ParamType{ParamString, ParamInt}, func(args []interface{}) (string, error) {
		return orderService.CreateOrder(args[0].(string), args[1].(int))
	})
	d.Register("create_campaign", []ParamType{ParamString, ParamString, ParamInt, ParamInt, ParamInt}, func(args []interface{}) (string, error) {
		return campaignService.CreateCampaign(args[0].(string), args[1].(string), args[2].(int), args[3].(int), args[4].(int))
	})
	d.Register("get_campaign_info", []ParamType{ParamString}, func(args []interface{}) (string, error) {
		return campaignService.GetCampaignInfo(args[0].(string))
	})
	d.Register("increase_time", []ParamType{ParamInt}, func(args []interface{}) (string, error) {
		return timeService.IncreaseTime(args[0].(int))
	})

	return d
}
