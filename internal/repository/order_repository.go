package repository

import (
	"errors"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByCode(code string) (*models.Order, error)
	GetByCodeAndUser(code string, userID uint) (*models.Order, error)
	ExistsByCode(code string) (bool, error)
	ListByCodes(codes []string) ([]models.Order, error)
	ListByUser(filter OrderListFilter) ([]models.Order, int64, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string, updates map[string]interface{}) error
	CountNonCancelledWithCoupon(userID uint, couponCode string) (int64, error)
	ResolveReceiverEmailByOrderID(orderID uint) (string, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByCode 根据订单编号获取订单
func (r *GormOrderRepository) GetByCode(code string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Where("order_code = ?", code).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByCodeAndUser 获取用户名下的订单
func (r *GormOrderRepository) GetByCodeAndUser(code string, userID uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").
		Where("order_code = ? AND user_id = ?", code, userID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ExistsByCode 判断订单编号是否已占用
func (r *GormOrderRepository) ExistsByCode(code string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).Where("order_code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByCodes 批量获取订单（含订单项）
func (r *GormOrderRepository) ListByCodes(codes []string) ([]models.Order, error) {
	if len(codes) == 0 {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := r.db.Preload("Items").Where("order_code IN ?", codes).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListByUser 获取用户订单列表
func (r *GormOrderRepository) ListByUser(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{}).Where("user_id = ?", filter.UserID)

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderCode != "" {
		query = query.Where("order_code LIKE ?", "%"+filter.OrderCode+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListAdmin 管理端订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	var orders []models.Order
	query := r.db.Model(&models.Order{})

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderCode != "" {
		query = query.Where("order_code = ?", filter.OrderCode)
	}
	if filter.ReceiverEmail != "" {
		query = query.Where("receiver_email = ?", filter.ReceiverEmail)
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

	if err := query.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	if updates == nil {
		updates = map[string]interface{}{}
	}
	updates["status"] = status
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates).Error
}

// CountNonCancelledWithCoupon 统计用户携带指定优惠码的未取消订单数
// 每人一次的核销约束通过扫描历史订单实现，而非独立的使用台账
func (r *GormOrderRepository) CountNonCancelledWithCoupon(userID uint, couponCode string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Order{}).
		Where("user_id = ? AND coupon_code = ?", userID, couponCode).
		Where("status <> ?", constants.OrderStatusCancel).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ResolveReceiverEmailByOrderID 根据订单 ID 解析状态通知的收件邮箱。
func (r *GormOrderRepository) ResolveReceiverEmailByOrderID(orderID uint) (string, error) {
	if orderID == 0 {
		return "", nil
	}
	var row struct {
		ReceiverEmail string
	}
	if err := r.db.Model(&models.Order{}).
		Select("receiver_email").
		Where("id = ?", orderID).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return row.ReceiverEmail, nil
}
