package router

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lamine-sport/api/internal/authz"
	"github.com/lamine-sport/api/internal/cache"
	"github.com/lamine-sport/api/internal/config"
	adminhandlers "github.com/lamine-sport/api/internal/http/handlers/admin"
	publichandlers "github.com/lamine-sport/api/internal/http/handlers/public"
	"github.com/lamine-sport/api/internal/http/response"
	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "ls"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static("/uploads", "./uploads")

	userAuth := UserJWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo)
	optionalAuth := OptionalUserJWTMiddleware(cfg.JWT.SecretKey, c.UserRepo)

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/banners", publicHandler.GetPublicBanners)
			public.GET("/current-program", publicHandler.GetCurrentProgram)
		}

		// 商品接口（可选登录态，用于搜索历史）
		product := apiV1.Group("/product")
		product.Use(optionalAuth)
		{
			product.GET("/get-products", publicHandler.GetProducts)
			product.GET("/get-products/:slug", publicHandler.GetProductBySlug)
			product.GET("/best-sellers", publicHandler.GetBestSellers)
			product.GET("/related/:slug", publicHandler.GetRelatedProducts)
		}

		// 评价接口（游客可读可写）
		review := apiV1.Group("/review")
		review.Use(optionalAuth)
		{
			review.POST("/create-review", publicHandler.CreateReview)
			review.GET("/get-reviews/:product_id", publicHandler.GetProductReviews)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
			auth.POST("/google-login", RateLimitMiddleware(redisClient, loginRule, KeyByIP), publicHandler.UserGoogleLogin)
			auth.POST("/refresh-token", publicHandler.UserRefreshToken)
			auth.POST("/forgot-password", publicHandler.UserForgotPassword)
			auth.POST("/reset-password", publicHandler.UserResetPassword)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("/user")
		user.Use(userAuth)
		{
			user.GET("/me", publicHandler.UserProfile)
			user.PUT("/profile", publicHandler.UserUpdateProfile)
			user.PUT("/password", publicHandler.UserChangePassword)
			user.POST("/logout", publicHandler.UserLogout)
			user.GET("/favorites", publicHandler.GetFavorites)
			user.POST("/favorites", publicHandler.AddFavorite)
			user.DELETE("/favorites/:product_id", publicHandler.RemoveFavorite)
		}

		// 搜索历史接口
		searchHistory := apiV1.Group("/search-history")
		searchHistory.Use(userAuth)
		{
			searchHistory.GET("", publicHandler.GetSearchHistory)
			searchHistory.DELETE("", publicHandler.ClearSearchHistory)
		}

		// 优惠券接口
		coupon := apiV1.Group("/coupon")
		coupon.Use(userAuth)
		{
			coupon.POST("/validate-coupon", publicHandler.ValidateCoupon)
		}

		// 订单接口
		order := apiV1.Group("/order")
		order.Use(userAuth)
		{
			order.POST("/create-order", publicHandler.CreateOrder)
			order.GET("/get-orders", publicHandler.GetMyOrders)
			order.GET("/get-orders/:order_code", publicHandler.GetMyOrderDetail)
			order.POST("/cancel-order/:order_code", publicHandler.CancelMyOrder)
		}

		// 管理员接口
		admin := apiV1.Group("/admin")
		admin.Use(userAuth, AdminRoleMiddleware(), AdminRBACMiddleware(c.AuthzService))
		{
			// 仪表盘
			admin.GET("/dashboard/overview", adminHandler.GetDashboardOverview)
			admin.GET("/dashboard/trends", adminHandler.GetDashboardTrends)
			admin.GET("/dashboard/rankings", adminHandler.GetDashboardRankings)

			// 商品管理
			admin.GET("/products", adminHandler.GetAdminProducts)
			admin.GET("/products/:id", adminHandler.GetAdminProduct)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			// Banner 管理
			admin.GET("/banners", adminHandler.GetAdminBanners)
			admin.GET("/banners/:id", adminHandler.GetAdminBanner)
			admin.POST("/banners", adminHandler.CreateBanner)
			admin.PUT("/banners/:id", adminHandler.UpdateBanner)
			admin.DELETE("/banners/:id", adminHandler.DeleteBanner)

			// 优惠券管理
			admin.POST("/coupons", adminHandler.CreateCoupon)
			admin.GET("/coupons", adminHandler.GetCoupons)
			admin.GET("/coupons/:id", adminHandler.GetCoupon)
			admin.PUT("/coupons/:id", adminHandler.UpdateCoupon)
			admin.DELETE("/coupons/by-code/:code", adminHandler.DeleteCoupon)

			// 折扣活动管理
			admin.POST("/discount-programs", adminHandler.CreateDiscountProgram)
			admin.GET("/discount-programs", adminHandler.GetDiscountPrograms)
			admin.PUT("/discount-programs/:id", adminHandler.UpdateDiscountProgram)
			admin.POST("/discount-programs/:id/cancel", adminHandler.CancelDiscountProgram)

			// 订单管理
			admin.GET("/orders", adminHandler.GetAdminOrders)
			admin.GET("/orders/:order_code", adminHandler.GetAdminOrder)
			admin.PATCH("/orders/status", adminHandler.UpdateOrderStatuses)

			// 评价管理
			admin.GET("/reviews", adminHandler.GetAdminReviews)
			admin.PATCH("/reviews/:id/pin", adminHandler.PinReview)
			admin.DELETE("/reviews/:id", adminHandler.DeleteReview)

			// 用户管理
			admin.GET("/users", adminHandler.GetAdminUsers)
			admin.GET("/users/:id", adminHandler.GetAdminUser)
			admin.POST("/users/:id/lock", adminHandler.LockUser)
			admin.POST("/users/:id/unlock", adminHandler.UnlockUser)
			admin.PUT("/users/:id/role", adminHandler.SetUserRole)

			// 权限管理
			admin.GET("/authz/me", adminHandler.GetAuthzMe)
			admin.GET("/authz/roles", adminHandler.ListAuthzRoles)
			admin.POST("/authz/roles", adminHandler.CreateAuthzRole)
			admin.DELETE("/authz/roles/:role", adminHandler.DeleteAuthzRole)
			admin.GET("/authz/roles/:role/policies", adminHandler.GetAuthzRolePolicies)
			admin.POST("/authz/policies", adminHandler.GrantAuthzPolicy)
			admin.DELETE("/authz/policies", adminHandler.RevokeAuthzPolicy)
			admin.GET("/authz/admins/:id/roles", adminHandler.GetAuthzAdminRoles)
			admin.PUT("/authz/admins/:id/roles", adminHandler.SetAuthzAdminRoles)
			admin.GET("/authz/permissions/catalog", func(ctx *gin.Context) {
				response.Success(ctx, buildAdminPermissionCatalog(r))
			})
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	if segments[1] == "authz" {
		return "authz"
	}
	return segments[1]
}
