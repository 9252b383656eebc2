package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lamine-sport/api/internal/authz"
	"github.com/lamine-sport/api/internal/config"
	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
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

	// 初始化默认管理员并授予超级管理员角色
	adminEmail := os.Getenv("LS_DEFAULT_ADMIN_EMAIL")
	adminPass := os.Getenv("LS_DEFAULT_ADMIN_PASSWORD")
	if err := models.InitDefaultAdmin(adminEmail, adminPass); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		stdLog.Fatalf("Failed to init authz: %v", err)
	}
	if err := authzService.BootstrapBuiltinRoles(); err != nil {
		stdLog.Fatalf("Failed to bootstrap builtin roles: %v", err)
	}
	var adminUsers []models.User
	if err := models.DB.Where("role = ?", constants.UserRoleAdmin).Find(&adminUsers).Error; err != nil {
		stdLog.Printf("Failed to load admin users: %v", err)
	}
	for _, admin := range adminUsers {
		if err := authzService.SetAdminRoles(admin.ID, []string{"super_admin"}); err != nil {
			stdLog.Printf("Failed to assign super_admin to %s: %v", admin.Email, err)
		} else {
			stdLog.Printf("Assigned super_admin role: %s", admin.Email)
		}
	}

	// 添加商品（含颜色规格库存）
	money := func(v float64) models.Money {
		return models.NewMoneyFromDecimal(decimal.NewFromFloat(v))
	}
	moneyPtr := func(v float64) *models.Money {
		m := money(v)
		return &m
	}

	products := []models.Product{
		{
			Name:          "Giày chạy bộ Air Zoom Tempo",
			Slug:          "giay-chay-bo-air-zoom-tempo",
			Description:   "Giày chạy bộ đệm khí, nhẹ và êm cho quãng đường dài.",
			Brand:         "Nike",
			ProductType:   constants.ProductTypeShoes,
			SportType:     constants.SportTypeRunning,
			Gender:        constants.ProductGenderUnisex,
			Visibility:    constants.ProductVisible,
			OriginalPrice: money(2590000),
			SalePrice:     moneyPtr(2190000),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800",
			}),
			Sizes: models.StringArray([]string{"38", "39", "40", "41", "42", "43"}),
			Colors: []models.ProductColor{
				{Value: constants.ProductColorBlack, Name: "Đen", Hex: "#111111", Quantity: 24},
				{Value: constants.ProductColorWhite, Name: "Trắng", Hex: "#f5f5f5", Quantity: 16},
				{Value: constants.ProductColorRed, Name: "Đỏ", Hex: "#d7263d", Quantity: 8},
			},
		},
		{
			Name:          "Áo đấu sân nhà CLB Hà Nội",
			Slug:          "ao-dau-san-nha-clb-ha-noi",
			Description:   "Áo bóng đá chính hãng, vải thoáng khí thấm hút mồ hôi.",
			Brand:         "Kappa",
			ProductType:   constants.ProductTypeShirts,
			SportType:     constants.SportTypeFootball,
			Gender:        constants.ProductGenderMen,
			Visibility:    constants.ProductVisible,
			OriginalPrice: money(890000),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1517466787929-bc90951d0974?w=800",
			}),
			Sizes: models.StringArray([]string{"S", "M", "L", "XL"}),
			Colors: []models.ProductColor{
				{Value: constants.ProductColorRed, Name: "Đỏ", Hex: "#c8102e", Quantity: 40},
				{Value: constants.ProductColorWhite, Name: "Trắng", Hex: "#ffffff", Quantity: 25},
			},
		},
		{
			Name:          "Quần legging tập gym nữ",
			Slug:          "quan-legging-tap-gym-nu",
			Description:   "Chất liệu co giãn 4 chiều, ôm dáng và nâng đỡ khi vận động.",
			Brand:         "Adidas",
			ProductType:   constants.ProductTypePants,
			SportType:     constants.SportTypeGym,
			Gender:        constants.ProductGenderWomen,
			Visibility:    constants.ProductVisible,
			OriginalPrice: money(650000),
			SalePrice:     moneyPtr(520000),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1506629082955-511b1aa562c8?w=800",
			}),
			Sizes: models.StringArray([]string{"S", "M", "L"}),
			Colors: []models.ProductColor{
				{Value: constants.ProductColorBlack, Name: "Đen", Hex: "#000000", Quantity: 30},
				{Value: constants.ProductColorPink, Name: "Hồng", Hex: "#f4a6c0", Quantity: 14},
			},
		},
		{
			Name:          "Vợt tennis Pure Drive",
			Slug:          "vot-tennis-pure-drive",
			Description:   "Vợt tennis cân bằng giữa lực đánh và kiểm soát, phù hợp trình trung cấp.",
			Brand:         "Babolat",
			ProductType:   constants.ProductTypeEquipment,
			SportType:     constants.SportTypeTennis,
			Gender:        constants.ProductGenderUnisex,
			Visibility:    constants.ProductVisible,
			OriginalPrice: money(4990000),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1617083934555-ac7b4d0c8be7?w=800",
			}),
			Sizes: models.StringArray([]string{"Grip 2", "Grip 3"}),
			Colors: []models.ProductColor{
				{Value: constants.ProductColorBlue, Name: "Xanh dương", Hex: "#1763a6", Quantity: 10},
			},
		},
		{
			Name:          "Kính bơi chống sương Speedo",
			Slug:          "kinh-boi-chong-suong-speedo",
			Description:   "Kính bơi chống tia UV, lớp phủ chống sương mù bền bỉ.",
			Brand:         "Speedo",
			ProductType:   constants.ProductTypeAccessories,
			SportType:     constants.SportTypeSwimming,
			Gender:        constants.ProductGenderUnisex,
			Visibility:    constants.ProductVisible,
			OriginalPrice: money(420000),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1530549387789-4c1017266635?w=800",
			}),
			Colors: []models.ProductColor{
				{Value: constants.ProductColorBlue, Name: "Xanh dương", Hex: "#0e4c92", Quantity: 50},
				{Value: constants.ProductColorGrey, Name: "Xám", Hex: "#888888", Quantity: 0},
			},
		},
		{
			Name:          "Áo bóng rổ mesh thoáng khí",
			Slug:          "ao-bong-ro-mesh-thoang-khi",
			Description:   "Áo tanktop bóng rổ vải mesh, khô nhanh khi thi đấu cường độ cao.",
			Brand:         "Under Armour",
			ProductType:   constants.ProductTypeShirts,
			SportType:     constants.SportTypeBasketball,
			Gender:        constants.ProductGenderMen,
			Visibility:    constants.ProductHidden,
			OriginalPrice: money(550000),
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1519861531473-9200262188bf?w=800",
			}),
			Sizes: models.StringArray([]string{"M", "L", "XL"}),
			Colors: []models.ProductColor{
				{Value: constants.ProductColorYellow, Name: "Vàng", Hex: "#ffd100", Quantity: 12},
			},
		},
	}

	for _, prod := range products {
		total := 0
		for _, color := range prod.Colors {
			total += color.Quantity
		}
		prod.StockQuantity = total

		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", prod.Slug)
		}
	}

	// 添加优惠券
	now := time.Now()
	coupons := []models.Coupon{
		{
			Code:     "WELCOME50",
			Type:     constants.CouponTypeFixed,
			Value:    money(50000),
			Quantity: 200,
			Status:   constants.CouponStatusActive,
			StartsAt: now.Add(-24 * time.Hour),
			EndsAt:   now.AddDate(0, 3, 0),
		},
		{
			Code:        "SUMMER10",
			Type:        constants.CouponTypePercent,
			Value:       money(10),
			MaxDiscount: moneyPtr(150000),
			Quantity:    100,
			Status:      constants.CouponStatusActive,
			StartsAt:    now.Add(-24 * time.Hour),
			EndsAt:      now.AddDate(0, 1, 0),
		},
		{
			Code:     "TET2027",
			Type:     constants.CouponTypePercent,
			Value:    money(15),
			Quantity: 50,
			Status:   constants.CouponStatusSchedule,
			StartsAt: now.AddDate(0, 4, 0),
			EndsAt:   now.AddDate(0, 5, 0),
		},
	}
	for _, coupon := range coupons {
		var existing models.Coupon
		if err := models.DB.Where("code = ?", coupon.Code).First(&existing).Error; err != nil {
			if err := models.DB.Create(&coupon).Error; err != nil {
				stdLog.Printf("Failed to create coupon %s: %v", coupon.Code, err)
			} else {
				stdLog.Printf("Created coupon: %s", coupon.Code)
			}
		} else {
			stdLog.Printf("Coupon already exists: %s", coupon.Code)
		}
	}

	// 添加折扣活动
	program := models.DiscountProgram{
		Name:               "Tuần lễ chạy bộ",
		DiscountPercentage: 20,
		ApplyType:          constants.ProgramApplySpecificProducts,
		ApplySetting:       constants.ProgramSettingAlwaysApply,
		Status:             constants.ProgramStatusActive,
		StartsAt:           now.Add(-12 * time.Hour),
		EndsAt:             now.AddDate(0, 0, 14),
	}
	var runningShoes models.Product
	if err := models.DB.Where("slug = ?", "giay-chay-bo-air-zoom-tempo").First(&runningShoes).Error; err == nil {
		program.ProductIDs = models.UintArray([]uint{runningShoes.ID})
	}
	var existingProgram models.DiscountProgram
	if err := models.DB.Where("name = ?", program.Name).First(&existingProgram).Error; err != nil {
		if err := models.DB.Create(&program).Error; err != nil {
			stdLog.Printf("Failed to create discount program %s: %v", program.Name, err)
		} else {
			stdLog.Printf("Created discount program: %s", program.Name)
		}
	} else {
		stdLog.Printf("Discount program already exists: %s", program.Name)
	}

	// 添加 Banner（首页主视觉）
	banners := []models.Banner{
		{
			Name:         "Hero - Bộ sưu tập chạy bộ",
			Position:     constants.BannerPositionHomeHero,
			Title:        "Bộ sưu tập chạy bộ 2026",
			Subtitle:     "Giày và trang phục chạy bộ mới nhất, giảm đến 20%",
			Image:        "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&w=1920&q=80",
			MobileImage:  "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&w=900&q=80",
			LinkType:     constants.BannerLinkTypeInternal,
			LinkValue:    "/products?sport_type=2",
			OpenInNewTab: false,
			IsActive:     true,
			SortOrder:    300,
		},
		{
			Name:         "Hero - Tuần lễ sale",
			Position:     constants.BannerPositionHomeHero,
			Title:        "Tuần lễ thể thao",
			Subtitle:     "Nhập mã SUMMER10 giảm 10% toàn bộ đơn hàng",
			Image:        "https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=1920&q=80",
			MobileImage:  "https://images.unsplash.com/photo-1517649763962-0c623066013b?auto=format&fit=crop&w=900&q=80",
			LinkType:     constants.BannerLinkTypeInternal,
			LinkValue:    "/products",
			OpenInNewTab: false,
			IsActive:     true,
			SortOrder:    200,
		},
		{
			Name:         "Hero - Banner dự phòng",
			Position:     constants.BannerPositionHomeHero,
			Title:        "Banner dự phòng",
			Subtitle:     "Dùng để thử bật tắt và sắp xếp trong trang quản trị",
			Image:        "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=1920&q=80",
			LinkType:     constants.BannerLinkTypeNone,
			OpenInNewTab: false,
			IsActive:     false,
			SortOrder:    100,
		},
	}

	for _, banner := range banners {
		var existing models.Banner
		if err := models.DB.Where("name = ? AND position = ?", banner.Name, banner.Position).First(&existing).Error; err != nil {
			if err := models.DB.Select("*").Create(&banner).Error; err != nil {
				stdLog.Printf("Failed to create banner %s: %v", banner.Name, err)
			} else {
				stdLog.Printf("Created banner: %s", banner.Name)
			}
		} else {
			stdLog.Printf("Banner already exists: %s", banner.Name)
		}
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 1 Admin user with super_admin role")
	fmt.Println("- 6 Products with per-color stock")
	fmt.Println("- 3 Coupons")
	fmt.Println("- 1 Discount program")
	fmt.Println("- 3 Banners (home_hero)")
}
