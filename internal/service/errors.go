package service

import "errors"

// 通用错误
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)

// 用户与认证错误
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrAccountLocked          = errors.New("account locked")
	ErrWeakPassword           = errors.New("weak password")
	ErrRecoveryTokenInvalid   = errors.New("recovery token invalid")
	ErrRecoveryTokenExpired   = errors.New("recovery token expired")
	ErrRefreshTokenInvalid    = errors.New("refresh token invalid")
	ErrGoogleAuthDisabled     = errors.New("google auth disabled")
)

// 商品错误
var (
	ErrProductNotFound   = errors.New("product not found")
	ErrProductSlugExists = errors.New("product slug exists")
	ErrProductInvalid    = errors.New("product invalid")
	ErrColorNotFound     = errors.New("color variant not found")
	ErrColorDuplicated   = errors.New("color variant duplicated")
)

// 优惠券错误
var (
	ErrCouponNotFound    = errors.New("coupon not found")
	ErrCouponCodeExists  = errors.New("coupon code exists")
	ErrCouponInvalid     = errors.New("coupon invalid")
	ErrCouponNotStarted  = errors.New("coupon not started")
	ErrCouponExpired     = errors.New("coupon expired")
	ErrCouponExhausted   = errors.New("coupon exhausted")
	ErrCouponAlreadyUsed = errors.New("coupon already used by user")
)

// 折扣活动错误
var (
	ErrProgramNotFound       = errors.New("discount program not found")
	ErrProgramInvalid        = errors.New("discount program invalid")
	ErrProgramNotCancellable = errors.New("discount program not cancellable")
)

// 订单错误
var (
	ErrEmptyCart             = errors.New("empty cart")
	ErrInvalidOrderItem      = errors.New("invalid order item")
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderNotCancellable   = errors.New("order not cancellable")
	ErrOrderAlreadyCancelled = errors.New("order already cancelled")
	ErrInvalidTransition     = errors.New("invalid status transition")
)

// 评价错误
var (
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidRating  = errors.New("invalid rating")
)

// Banner 错误
var (
	ErrInvalidBanner = errors.New("invalid banner")
)

// 邮件错误
var (
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrInvalidEmail              = errors.New("invalid email address")
	ErrEmailSendFailed           = errors.New("email send failed")
)
