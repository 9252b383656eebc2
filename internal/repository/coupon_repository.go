package repository

import (
	"errors"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"

	"gorm.io/gorm"
)

// CouponRepository 优惠券数据访问接口
type CouponRepository interface {
	GetByID(id uint) (*models.Coupon, error)
	GetByCode(code string) (*models.Coupon, error)
	Create(coupon *models.Coupon) error
	Update(coupon *models.Coupon) error
	UpdateStatus(id uint, status string) error
	DeleteByCode(code string) error
	List(filter CouponListFilter) ([]models.Coupon, int64, error)
	IncrementUsedQuantity(id uint, delta int) (int64, error)
	DecrementUsedQuantity(id uint, delta int) error
	ExpireDue(now time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormCouponRepository
}

// CouponListFilter 优惠券列表筛选
type CouponListFilter struct {
	Code     string
	Status   string
	Page     int
	PageSize int
}

// GormCouponRepository GORM 实现
type GormCouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository 创建优惠券仓库
func NewCouponRepository(db *gorm.DB) *GormCouponRepository {
	return &GormCouponRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCouponRepository) WithTx(tx *gorm.DB) *GormCouponRepository {
	if tx == nil {
		return r
	}
	return &GormCouponRepository{db: tx}
}

// GetByID 根据ID获取优惠券
func (r *GormCouponRepository) GetByID(id uint) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.First(&coupon, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// GetByCode 根据优惠码获取优惠券
func (r *GormCouponRepository) GetByCode(code string) (*models.Coupon, error) {
	var coupon models.Coupon
	if err := r.db.Where("code = ?", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

// Create 创建优惠券
func (r *GormCouponRepository) Create(coupon *models.Coupon) error {
	return r.db.Create(coupon).Error
}

// Update 更新优惠券
func (r *GormCouponRepository) Update(coupon *models.Coupon) error {
	return r.db.Save(coupon).Error
}

// UpdateStatus 更新优惠券状态缓存字段
func (r *GormCouponRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Coupon{}).Where("id = ?", id).UpdateColumn("status", status).Error
}

// DeleteByCode 按优惠码删除
func (r *GormCouponRepository) DeleteByCode(code string) error {
	return r.db.Where("code = ?", code).Delete(&models.Coupon{}).Error
}

// List 获取优惠券列表
func (r *GormCouponRepository) List(filter CouponListFilter) ([]models.Coupon, int64, error) {
	var coupons []models.Coupon
	query := r.db.Model(&models.Coupon{})

	if filter.Code != "" {
		query = query.Where("code LIKE ?", "%"+filter.Code+"%")
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&coupons).Error; err != nil {
		return nil, 0, err
	}
	return coupons, total, nil
}

// IncrementUsedQuantity 增加优惠券使用次数
// 条件更新确保 used_quantity 不会越过 quantity（0 表示不限量），返回受影响行数供调用方判定配额竞争
func (r *GormCouponRepository) IncrementUsedQuantity(id uint, delta int) (int64, error) {
	if delta <= 0 {
		delta = 1
	}
	result := r.db.Model(&models.Coupon{}).
		Where("id = ?", id).
		Where("quantity = 0 OR used_quantity + ? <= quantity", delta).
		UpdateColumn("used_quantity", gorm.Expr("used_quantity + ?", delta))
	return result.RowsAffected, result.Error
}

// DecrementUsedQuantity 减少优惠券使用次数（下限 0）
func (r *GormCouponRepository) DecrementUsedQuantity(id uint, delta int) error {
	if delta <= 0 {
		delta = 1
	}
	return r.db.Model(&models.Coupon{}).
		Where("id = ?", id).
		Where("used_quantity >= ?", delta).
		UpdateColumn("used_quantity", gorm.Expr("used_quantity - ?", delta)).Error
}

// ExpireDue 将过期时间已到的优惠券批量标记为 expired
func (r *GormCouponRepository) ExpireDue(now time.Time) (int64, error) {
	result := r.db.Model(&models.Coupon{}).
		Where("status <> ?", constants.CouponStatusExpired).
		Where("ends_at <= ?", now).
		UpdateColumn("status", constants.CouponStatusExpired)
	return result.RowsAffected, result.Error
}
