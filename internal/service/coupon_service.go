package service

import (
	"strings"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/logger"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CouponService 优惠券校验与计价服务
type CouponService struct {
	couponRepo repository.CouponRepository
	orderRepo  repository.OrderRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository, orderRepo repository.OrderRepository) *CouponService {
	return &CouponService{
		couponRepo: couponRepo,
		orderRepo:  orderRepo,
	}
}

// DeriveCouponStatus 按实时时间与用量推导优惠券状态
// 判定优先级：过期 > 未开始 > 配额用尽 > 可用
func DeriveCouponStatus(coupon *models.Coupon, now time.Time) string {
	if now.After(coupon.EndsAt) {
		return constants.CouponStatusExpired
	}
	if now.Before(coupon.StartsAt) {
		return constants.CouponStatusSchedule
	}
	if coupon.Quantity > 0 && coupon.UsedQuantity >= coupon.Quantity {
		return constants.CouponStatusOutOfUsed
	}
	return constants.CouponStatusActive
}

// Validate 校验优惠码能否用于一次下单
// 存储的 status 可能滞后，这里同时核对显式状态与实时日期/计数；
// 发现缓存状态落后时顺手纠正（尽力而为，失败仅记日志）
func (s *CouponService) Validate(code string, userID uint, now time.Time) (*models.Coupon, error) {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrCouponInvalid
	}

	coupon, err := s.couponRepo.GetByCode(trimmed)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if coupon.Status == constants.CouponStatusExpired || now.After(coupon.EndsAt) {
		s.correctStatus(coupon, constants.CouponStatusExpired)
		return nil, ErrCouponExpired
	}
	if now.Before(coupon.StartsAt) {
		return nil, ErrCouponNotStarted
	}
	if coupon.Quantity > 0 && coupon.UsedQuantity >= coupon.Quantity {
		s.correctStatus(coupon, constants.CouponStatusOutOfUsed)
		return nil, ErrCouponExhausted
	}

	if userID != 0 {
		count, err := s.orderRepo.CountNonCancelledWithCoupon(userID, coupon.Code)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrCouponAlreadyUsed
		}
	}

	return coupon, nil
}

func (s *CouponService) correctStatus(coupon *models.Coupon, status string) {
	if coupon.Status == status {
		return
	}
	if err := s.couponRepo.UpdateStatus(coupon.ID, status); err != nil {
		logger.Warnw("coupon_status_correct_failed",
			"coupon_id", coupon.ID,
			"status", status,
			"error", err,
		)
		return
	}
	coupon.Status = status
}

// ComputeDiscount 计算优惠金额
// 固定金额券不超过商品金额；百分比券按 MaxDiscount 封顶
func ComputeDiscount(coupon *models.Coupon, productsFee models.Money) models.Money {
	if coupon == nil {
		return models.Money{}
	}
	switch coupon.Type {
	case constants.CouponTypeFixed:
		if coupon.Value.Decimal.GreaterThan(productsFee.Decimal) {
			return productsFee
		}
		return coupon.Value
	case constants.CouponTypePercent:
		discount := productsFee.Decimal.Mul(coupon.Value.Decimal).Div(hundred)
		if coupon.MaxDiscount != nil && discount.GreaterThan(coupon.MaxDiscount.Decimal) {
			discount = coupon.MaxDiscount.Decimal
		}
		if discount.GreaterThan(productsFee.Decimal) {
			discount = productsFee.Decimal
		}
		return models.NewMoneyFromDecimal(discount)
	default:
		return models.Money{}
	}
}
