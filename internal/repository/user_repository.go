package repository

import (
	"errors"

	"github.com/lamine-sport/api/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByRecoveryToken(token string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	List(filter UserListFilter) ([]models.User, int64, error)
	UpdateStatus(id uint, status string) error
	AddFavorite(userID, productID uint) error
	RemoveFavorite(userID, productID uint) error
	ListFavorites(userID uint) ([]models.Product, error)
	HasFavorite(userID, productID uint) (bool, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByEmail 根据邮箱获取用户
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByID 根据 ID 获取用户
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByRecoveryToken 根据找回密码令牌获取用户
func (r *GormUserRepository) GetByRecoveryToken(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	var user models.User
	if err := r.db.Where("recovery_token = ?", token).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// List 用户列表
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("email LIKE ? OR full_name LIKE ?", like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var users []models.User
	if err := query.Order("id desc").Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// UpdateStatus 更新用户状态
func (r *GormUserRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).UpdateColumn("status", status).Error
}

// AddFavorite 添加收藏
func (r *GormUserRepository) AddFavorite(userID, productID uint) error {
	user := models.User{ID: userID}
	return r.db.Model(&user).Association("Favorites").Append(&models.Product{ID: productID})
}

// RemoveFavorite 取消收藏
func (r *GormUserRepository) RemoveFavorite(userID, productID uint) error {
	user := models.User{ID: userID}
	return r.db.Model(&user).Association("Favorites").Delete(&models.Product{ID: productID})
}

// ListFavorites 获取收藏商品列表
func (r *GormUserRepository) ListFavorites(userID uint) ([]models.Product, error) {
	var products []models.Product
	user := models.User{ID: userID}
	if err := r.db.Model(&user).Preload("Colors").Association("Favorites").Find(&products); err != nil {
		return nil, err
	}
	return products, nil
}

// HasFavorite 判断是否已收藏
func (r *GormUserRepository) HasFavorite(userID, productID uint) (bool, error) {
	var count int64
	if err := r.db.Table("user_favorites").
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
