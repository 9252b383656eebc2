package service

import (
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// DiscountService 折扣活动服务
// 所有商品读路径统一经由 ApplyToProducts 叠加活动价，避免各端点各自实现
type DiscountService struct {
	programRepo repository.DiscountProgramRepository
}

// NewDiscountService 创建折扣活动服务
func NewDiscountService(programRepo repository.DiscountProgramRepository) *DiscountService {
	return &DiscountService{programRepo: programRepo}
}

// CurrentProgram 获取当前生效的折扣活动
// 存储的 status 仅作缓存，这里同时按实时时间窗口复核
func (s *DiscountService) CurrentProgram(now time.Time) (*models.DiscountProgram, error) {
	program, err := s.programRepo.GetActive(now)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, nil
	}
	if now.Before(program.StartsAt) || now.After(program.EndsAt) {
		return nil, nil
	}
	return program, nil
}

// ApplyProgramToProduct 对单个商品叠加活动价（纯函数，仅改写内存中的副本）
//  1. 无活动或商品不在适用范围：不改动
//  2. always_apply：无条件覆盖促销价
//  3. apply_with_condition：仅当折后价低于现有促销价（或尚无促销价）时覆盖，绝不抬价
func ApplyProgramToProduct(product *models.Product, program *models.DiscountProgram) {
	if product == nil || program == nil {
		return
	}
	if !program.AppliesTo(product.ID) {
		return
	}
	if program.DiscountPercentage <= 0 || program.DiscountPercentage > 100 {
		return
	}

	discounted := product.OriginalPrice.ApplyPercentOff(program.DiscountPercentage)

	switch program.ApplySetting {
	case constants.ProgramSettingAlwaysApply:
		product.SalePrice = &discounted
	case constants.ProgramSettingApplyWithCondition:
		if product.SalePrice == nil || discounted.Decimal.LessThan(product.SalePrice.Decimal) {
			product.SalePrice = &discounted
		}
	}
}

// ApplyToProducts 对商品集合叠加当前生效活动
func (s *DiscountService) ApplyToProducts(products []models.Product, now time.Time) error {
	program, err := s.CurrentProgram(now)
	if err != nil {
		return err
	}
	if program == nil {
		return nil
	}
	for i := range products {
		ApplyProgramToProduct(&products[i], program)
	}
	return nil
}

// ApplyToProduct 对单个商品叠加当前生效活动
func (s *DiscountService) ApplyToProduct(product *models.Product, now time.Time) error {
	if product == nil {
		return nil
	}
	program, err := s.CurrentProgram(now)
	if err != nil {
		return err
	}
	ApplyProgramToProduct(product, program)
	return nil
}

// EffectivePrice 返回商品当前应展示的价格
func EffectivePrice(product *models.Product) models.Money {
	if product.SalePrice != nil {
		return *product.SalePrice
	}
	return product.OriginalPrice
}
