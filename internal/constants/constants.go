package constants

// 订单状态常量
const (
	OrderStatusWaitingConfirm = "waiting_confirm"
	OrderStatusProcessing     = "processing"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancel         = "cancel"
)

// 支付方式常量
const (
	PaymentMethodCOD      = "cod"
	PaymentMethodTransfer = "transfer"
)

// 优惠券类型常量
const (
	CouponTypeFixed   = "fixed"
	CouponTypePercent = "percent"
)

// 优惠券状态常量
const (
	CouponStatusActive    = "active"
	CouponStatusExpired   = "expired"
	CouponStatusSchedule  = "schedule"
	CouponStatusOutOfUsed = "out_of_used"
)

// 折扣活动状态常量
const (
	ProgramStatusScheduled = "scheduled"
	ProgramStatusActive    = "active"
	ProgramStatusExpired   = "expired"
	ProgramStatusCancelled = "cancelled"
)

// 折扣活动适用范围常量
const (
	ProgramApplyAllProducts      = "all_products"
	ProgramApplySpecificProducts = "specific_products"
)

// 折扣活动覆盖策略常量
const (
	ProgramSettingAlwaysApply        = "always_apply"
	ProgramSettingApplyWithCondition = "apply_with_condition"
)

// 商品类型常量
const (
	ProductTypeShoes       = 1
	ProductTypeShirts      = 2
	ProductTypePants       = 3
	ProductTypeAccessories = 4
	ProductTypeEquipment   = 5
)

// 运动类型常量
const (
	SportTypeFootball   = 1
	SportTypeRunning    = 2
	SportTypeTennis     = 3
	SportTypeBasketball = 4
	SportTypeGym        = 5
	SportTypeSwimming   = 6
)

// 商品性别常量
const (
	ProductGenderMen    = 1
	ProductGenderWomen  = 2
	ProductGenderUnisex = 3
)

// 商品可见性常量
const (
	ProductVisible = 1
	ProductHidden  = 2
)

// 商品颜色常量
const (
	ProductColorBlack  = 1
	ProductColorWhite  = 2
	ProductColorRed    = 3
	ProductColorBlue   = 4
	ProductColorGreen  = 5
	ProductColorYellow = 6
	ProductColorGrey   = 7
	ProductColorBeige  = 8
	ProductColorPink   = 9
)

// 用户角色常量
const (
	UserRoleUser  = "user"
	UserRoleAdmin = "admin"
)

// 用户状态常量
const (
	UserStatusActive = "active"
	UserStatusLocked = "locked"
)

// 队列常量
const (
	QueueDefault         = "default"
	TaskOrderStatusEmail = "order:status_email"
	TaskWelcomeEmail     = "user:welcome_email"
	TaskRecoveryEmail    = "user:recovery_email"
)

// 缓存默认配置常量
const (
	RedisPrefixDefault = "ls"
)

// 站点语言常量
const (
	LocaleViVN = "vi-VN"
	LocaleEnUS = "en-US"
)

// 支持的站点语言顺序（含回退顺序）
var SupportedLocales = []string{LocaleViVN, LocaleEnUS}

// Banner 位置常量
const (
	BannerPositionHomeHero = "home_hero"
)

// Banner 跳转类型常量
const (
	BannerLinkTypeNone     = "none"
	BannerLinkTypeInternal = "internal"
	BannerLinkTypeExternal = "external"
)
