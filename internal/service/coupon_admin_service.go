package service

import (
	"strings"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// CouponAdminService 后台优惠券管理
type CouponAdminService struct {
	couponRepo repository.CouponRepository
}

// NewCouponAdminService 创建后台优惠券服务
func NewCouponAdminService(couponRepo repository.CouponRepository) *CouponAdminService {
	return &CouponAdminService{couponRepo: couponRepo}
}

// CouponInput 创建/更新优惠券的入参
type CouponInput struct {
	Code        string        `json:"code" binding:"required"`
	Type        string        `json:"type" binding:"required"`
	Value       models.Money  `json:"value" binding:"required"`
	MaxDiscount *models.Money `json:"max_discount"`
	Quantity    int           `json:"quantity"`
	StartsAt    time.Time     `json:"starts_at" binding:"required"`
	EndsAt      time.Time     `json:"ends_at" binding:"required"`
}

func validateCouponInput(input *CouponInput) error {
	input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
	if input.Code == "" {
		return ErrCouponInvalid
	}
	if input.Type != constants.CouponTypeFixed && input.Type != constants.CouponTypePercent {
		return ErrCouponInvalid
	}
	if input.Value.Decimal.IsNegative() || input.Value.Decimal.IsZero() {
		return ErrCouponInvalid
	}
	if input.Type == constants.CouponTypePercent && input.Value.Decimal.GreaterThan(hundred) {
		return ErrCouponInvalid
	}
	if input.Quantity < 0 {
		return ErrCouponInvalid
	}
	if !input.EndsAt.After(input.StartsAt) {
		return ErrCouponInvalid
	}
	return nil
}

// Create 创建优惠券，状态按日期推导
func (s *CouponAdminService) Create(input CouponInput) (*models.Coupon, error) {
	if err := validateCouponInput(&input); err != nil {
		return nil, err
	}

	existing, err := s.couponRepo.GetByCode(input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCouponCodeExists
	}

	coupon := &models.Coupon{
		Code:        input.Code,
		Type:        input.Type,
		Value:       input.Value,
		MaxDiscount: input.MaxDiscount,
		Quantity:    input.Quantity,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
	}
	coupon.Status = DeriveCouponStatus(coupon, time.Now())

	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券，保留已用计数并重新推导状态
func (s *CouponAdminService) Update(id uint, input CouponInput) (*models.Coupon, error) {
	if err := validateCouponInput(&input); err != nil {
		return nil, err
	}

	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	if input.Code != coupon.Code {
		existing, err := s.couponRepo.GetByCode(input.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != coupon.ID {
			return nil, ErrCouponCodeExists
		}
	}

	coupon.Code = input.Code
	coupon.Type = input.Type
	coupon.Value = input.Value
	coupon.MaxDiscount = input.MaxDiscount
	coupon.Quantity = input.Quantity
	coupon.StartsAt = input.StartsAt
	coupon.EndsAt = input.EndsAt
	coupon.Status = DeriveCouponStatus(coupon, time.Now())

	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Get 查询单个优惠券
func (s *CouponAdminService) Get(id uint) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// DeleteByCode 按优惠码删除
func (s *CouponAdminService) DeleteByCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	coupon, err := s.couponRepo.GetByCode(code)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}
	return s.couponRepo.DeleteByCode(code)
}

// List 分页列表
func (s *CouponAdminService) List(filter repository.CouponListFilter) ([]models.Coupon, int64, error) {
	return s.couponRepo.List(filter)
}
