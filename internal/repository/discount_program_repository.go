package repository

import (
	"errors"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"

	"gorm.io/gorm"
)

// DiscountProgramRepository 折扣活动数据访问接口
type DiscountProgramRepository interface {
	GetByID(id uint) (*models.DiscountProgram, error)
	GetActive(now time.Time) (*models.DiscountProgram, error)
	Create(program *models.DiscountProgram) error
	Update(program *models.DiscountProgram) error
	UpdateStatus(id uint, status string) error
	List(filter DiscountProgramListFilter) ([]models.DiscountProgram, int64, error)
	ExpireDue(now time.Time) (int64, error)
	WithTx(tx *gorm.DB) *GormDiscountProgramRepository
}

// DiscountProgramListFilter 折扣活动列表筛选
type DiscountProgramListFilter struct {
	Status   string
	Page     int
	PageSize int
}

// GormDiscountProgramRepository GORM 实现
type GormDiscountProgramRepository struct {
	db *gorm.DB
}

// NewDiscountProgramRepository 创建折扣活动仓库
func NewDiscountProgramRepository(db *gorm.DB) *GormDiscountProgramRepository {
	return &GormDiscountProgramRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDiscountProgramRepository) WithTx(tx *gorm.DB) *GormDiscountProgramRepository {
	if tx == nil {
		return r
	}
	return &GormDiscountProgramRepository{db: tx}
}

// GetByID 根据ID获取折扣活动
func (r *GormDiscountProgramRepository) GetByID(id uint) (*models.DiscountProgram, error) {
	var program models.DiscountProgram
	if err := r.db.First(&program, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

// GetActive 获取当前生效的折扣活动
// 同时按状态与实时时间窗口筛选；若存在多个重叠活动，取最新创建的一个，保证选择确定性
func (r *GormDiscountProgramRepository) GetActive(now time.Time) (*models.DiscountProgram, error) {
	var program models.DiscountProgram
	query := r.db.Where("status = ?", constants.ProgramStatusActive).
		Where("starts_at <= ?", now).
		Where("ends_at >= ?", now)
	if err := query.Order("id desc").First(&program).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

// Create 创建折扣活动
func (r *GormDiscountProgramRepository) Create(program *models.DiscountProgram) error {
	return r.db.Create(program).Error
}

// Update 更新折扣活动
func (r *GormDiscountProgramRepository) Update(program *models.DiscountProgram) error {
	return r.db.Save(program).Error
}

// UpdateStatus 更新折扣活动状态缓存字段
func (r *GormDiscountProgramRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.DiscountProgram{}).Where("id = ?", id).UpdateColumn("status", status).Error
}

// List 获取折扣活动列表
func (r *GormDiscountProgramRepository) List(filter DiscountProgramListFilter) ([]models.DiscountProgram, int64, error) {
	var programs []models.DiscountProgram
	query := r.db.Model(&models.DiscountProgram{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("id desc").Find(&programs).Error; err != nil {
		return nil, 0, err
	}
	return programs, total, nil
}

// ExpireDue 将过期时间已到的折扣活动批量标记为 expired
func (r *GormDiscountProgramRepository) ExpireDue(now time.Time) (int64, error) {
	result := r.db.Model(&models.DiscountProgram{}).
		Where("status <> ?", constants.ProgramStatusExpired).
		Where("ends_at <= ?", now).
		UpdateColumn("status", constants.ProgramStatusExpired)
	return result.RowsAffected, result.Error
}
