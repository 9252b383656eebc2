package repository

import (
	"errors"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	GetByID(id uint) (*models.Product, error)
	GetBySlug(slug string) (*models.Product, error)
	ListByIDs(ids []uint) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	ReplaceColors(productID uint, colors []models.ProductColor) error
	List(filter ProductListFilter) ([]models.Product, int64, error)
	BestSellers(limit int) ([]models.Product, error)
	Related(product *models.Product, limit int) ([]models.Product, error)
	DecrementColorStock(productID uint, colorValue, quantity int) (int64, error)
	RestoreColorStock(productID uint, colorValue, quantity int) (int64, error)
	AdjustStockCounters(productID uint, delta int) error
	WithTx(tx *gorm.DB) *GormProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// GetByID 根据ID获取商品（含颜色规格）
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Colors").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetBySlug 根据 slug 获取商品
func (r *GormProductRepository) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Colors").Where("slug = ?", slug).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListByIDs 批量获取商品
func (r *GormProductRepository) ListByIDs(ids []uint) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	if err := r.db.Preload("Colors").Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create 创建商品（含颜色规格）
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update 更新商品
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete 删除商品及其颜色规格
func (r *GormProductRepository) Delete(id uint) error {
	if err := r.db.Where("product_id = ?", id).Delete(&models.ProductColor{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.Product{}, id).Error
}

// ReplaceColors 整体替换商品颜色规格
func (r *GormProductRepository) ReplaceColors(productID uint, colors []models.ProductColor) error {
	if err := r.db.Where("product_id = ?", productID).Delete(&models.ProductColor{}).Error; err != nil {
		return err
	}
	for i := range colors {
		colors[i].ID = 0
		colors[i].ProductID = productID
	}
	if len(colors) == 0 {
		return nil
	}
	return r.db.Create(&colors).Error
}

// List 获取商品列表
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	var products []models.Product
	query := r.db.Model(&models.Product{})

	if filter.OnlyVisible {
		query = query.Where("visibility = ?", constants.ProductVisible)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR brand LIKE ?", like, like)
	}
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.ProductType != 0 {
		query = query.Where("product_type = ?", filter.ProductType)
	}
	if filter.SportType != 0 {
		query = query.Where("sport_type = ?", filter.SportType)
	}
	if filter.Gender != 0 {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.ColorValue != 0 {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&models.ProductColor{}).Select("product_id").Where("value = ?", filter.ColorValue),
		)
	}
	if filter.PriceMin != nil {
		query = query.Where("original_price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("original_price <= ?", *filter.PriceMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch filter.SortBy {
	case "price_asc":
		query = query.Order("original_price asc")
	case "price_desc":
		query = query.Order("original_price desc")
	case "best_seller":
		query = query.Order("sale_quantity desc")
	default:
		query = query.Order("id desc")
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Colors").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// BestSellers 按销量获取热销商品
func (r *GormProductRepository) BestSellers(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	var products []models.Product
	if err := r.db.Preload("Colors").
		Where("visibility = ?", constants.ProductVisible).
		Order("sale_quantity desc").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Related 获取同运动类型的相关商品
func (r *GormProductRepository) Related(product *models.Product, limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	var products []models.Product
	if err := r.db.Preload("Colors").
		Where("visibility = ?", constants.ProductVisible).
		Where("sport_type = ? AND id <> ?", product.SportType, product.ID).
		Order("sale_quantity desc").
		Limit(limit).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DecrementColorStock 条件扣减颜色库存并累加销量
// 以 quantity >= ? 作为扣减前提，由存储引擎串行化并发订单，返回受影响行数供调用方判定超卖
func (r *GormProductRepository) DecrementColorStock(productID uint, colorValue, quantity int) (int64, error) {
	result := r.db.Model(&models.ProductColor{}).
		Where("product_id = ? AND value = ?", productID, colorValue).
		Where("quantity >= ?", quantity).
		UpdateColumns(map[string]interface{}{
			"quantity": gorm.Expr("quantity - ?", quantity),
			"sale":     gorm.Expr("sale + ?", quantity),
		})
	return result.RowsAffected, result.Error
}

// RestoreColorStock 回补颜色库存并回退销量
// 以 sale >= ? 作为回补前提（销量不可为负），返回受影响行数供调用方决定是否同步商品级计数
func (r *GormProductRepository) RestoreColorStock(productID uint, colorValue, quantity int) (int64, error) {
	result := r.db.Model(&models.ProductColor{}).
		Where("product_id = ? AND value = ?", productID, colorValue).
		Where("sale >= ?", quantity).
		UpdateColumns(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", quantity),
			"sale":     gorm.Expr("sale - ?", quantity),
		})
	return result.RowsAffected, result.Error
}

// AdjustStockCounters 调整商品级库存与销量计数
// delta 为负表示售出（库存减、销量加），为正表示回补
func (r *GormProductRepository) AdjustStockCounters(productID uint, delta int) error {
	if delta == 0 {
		return nil
	}
	return r.db.Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumns(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity + ?", delta),
			"sale_quantity":  gorm.Expr("sale_quantity - ?", delta),
		}).Error
}
