package provider

import (
	"github.com/campaign-next/internal/cache"
	"github.com/campaign-next/internal/command"
	"github.com/campaign-next/internal/config"
	"github.com/campaign-next/internal/logger"
	"github.com/campaign-next/internal/models"
	"github.com/campaign-next/internal/queue"
	"github.com/campaign-next/internal/repository"
	"github.com/campaign-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo          repository.AdminRepository
	ProductRepo        repository.ProductRepository
	CampaignRepo       repository.CampaignRepository
	OrderRepo          repository.OrderRepository
	SettingRepo        repository.SettingRepository
	CampaignReportRepo repository.CampaignReportRepository

	// Services
	AuthService     *service.AuthService
	ClockService    *service.ClockService
	ProductService  *service.ProductService
	OrderService    *service.OrderService
	CampaignService *service.CampaignService
	TimeService     *service.TimeService
	ResetService    *service.ResetService

	// Dispatcher 命令分发器
	Dispatcher *command.Dispatcher
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	// 3. 初始化命令分发器
	c.Dispatcher = command.NewMarketplaceDispatcher(
		c.ProductService,
		c.OrderService,
		c.CampaignService,
		c.TimeService,
	)

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CampaignRepo = repository.NewCampaignRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.CampaignReportRepo = repository.NewCampaignReportRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.ClockService = service.NewClockService(c.SettingRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ClockService)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.ProductService, c.ClockService)
	c.CampaignService = service.NewCampaignService(c.CampaignRepo, c.OrderRepo, c.ProductService, c.ClockService)
	c.TimeService = service.NewTimeService(c.ClockService, c.CampaignRepo, c.ProductRepo, c.QueueClient)
	c.ResetService = service.NewResetService(c.CampaignRepo, c.OrderRepo, c.ProductRepo, c.CampaignReportRepo, c.ClockService)
}
