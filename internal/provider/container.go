package provider

import (
	"github.com/lamine-sport/api/internal/authz"
	"github.com/lamine-sport/api/internal/cache"
	"github.com/lamine-sport/api/internal/config"
	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/queue"
	"github.com/lamine-sport/api/internal/repository"
	"github.com/lamine-sport/api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo            repository.UserRepository
	ProductRepo         repository.ProductRepository
	OrderRepo           repository.OrderRepository
	CouponRepo          repository.CouponRepository
	DiscountProgramRepo repository.DiscountProgramRepository
	ReviewRepo          repository.ReviewRepository
	SearchHistoryRepo   repository.SearchHistoryRepository
	BannerRepo          repository.BannerRepository
	DashboardRepo       repository.DashboardRepository

	// Services
	AuthzService         *authz.Service
	UserAuthService      *service.UserAuthService
	UserAdminService     *service.UserAdminService
	EmailService         *service.EmailService
	ProductService       *service.ProductService
	DiscountService      *service.DiscountService
	DiscountAdminService *service.DiscountAdminService
	CouponService        *service.CouponService
	CouponAdminService   *service.CouponAdminService
	OrderService         *service.OrderService
	ReviewService        *service.ReviewService
	SearchHistoryService *service.SearchHistoryService
	FavoriteService      *service.FavoriteService
	BannerService        *service.BannerService
	DashboardService     *service.DashboardService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.CouponRepo = repository.NewCouponRepository(db)
	c.DiscountProgramRepo = repository.NewDiscountProgramRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.SearchHistoryRepo = repository.NewSearchHistoryRepository(db)
	c.BannerRepo = repository.NewBannerRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo, c.QueueClient)
	c.UserAdminService = service.NewUserAdminService(c.UserRepo)
	c.DiscountService = service.NewDiscountService(c.DiscountProgramRepo)
	c.DiscountAdminService = service.NewDiscountAdminService(c.DiscountProgramRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.DiscountService)
	c.CouponService = service.NewCouponService(c.CouponRepo, c.OrderRepo)
	c.CouponAdminService = service.NewCouponAdminService(c.CouponRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CouponRepo, c.CouponService, c.DiscountService, c.QueueClient, c.Config.Shipping)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.ProductRepo)
	c.SearchHistoryService = service.NewSearchHistoryService(c.SearchHistoryRepo)
	c.FavoriteService = service.NewFavoriteService(c.UserRepo, c.ProductRepo, c.DiscountService)
	c.BannerService = service.NewBannerService(c.BannerRepo)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo)
}
