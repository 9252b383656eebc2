package service

import (
	"strings"
	"time"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// ProductService 商品业务服务
type ProductService struct {
	repo            repository.ProductRepository
	discountService *DiscountService
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, discountService *DiscountService) *ProductService {
	return &ProductService{repo: repo, discountService: discountService}
}

// ProductColorInput 商品颜色规格输入
type ProductColorInput struct {
	Value    int `json:"value" binding:"required"`
	Quantity int `json:"quantity"`
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	Name          string              `json:"name" binding:"required"`
	Slug          string              `json:"slug" binding:"required"`
	Description   string              `json:"description"`
	Brand         string              `json:"brand"`
	ProductType   int                 `json:"product_type" binding:"required"`
	SportType     int                 `json:"sport_type" binding:"required"`
	Gender        int                 `json:"gender"`
	Visibility    int                 `json:"visibility"`
	OriginalPrice models.Money        `json:"original_price" binding:"required"`
	SalePrice     *models.Money       `json:"sale_price"`
	Images        []string            `json:"images"`
	Sizes         []string            `json:"sizes"`
	Colors        []ProductColorInput `json:"colors" binding:"required"`
}

// ListPublic 前台商品列表，叠加当前折扣活动后返回
func (s *ProductService) ListPublic(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyVisible = true
	products, total, err := s.repo.List(filter)
	if err != nil {
		return nil, 0, err
	}
	if err := s.discountService.ApplyToProducts(products, time.Now()); err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetPublicBySlug 前台商品详情
func (s *ProductService) GetPublicBySlug(slug string) (*models.Product, error) {
	product, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil || product.Visibility != constants.ProductVisible {
		return nil, ErrProductNotFound
	}
	if err := s.discountService.ApplyToProduct(product, time.Now()); err != nil {
		return nil, err
	}
	return product, nil
}

// BestSellers 按销量排序的前台商品
func (s *ProductService) BestSellers(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 10
	}
	products, err := s.repo.BestSellers(limit)
	if err != nil {
		return nil, err
	}
	if err := s.discountService.ApplyToProducts(products, time.Now()); err != nil {
		return nil, err
	}
	return products, nil
}

// Related 同类推荐，排除商品自身
func (s *ProductService) Related(slug string, limit int) ([]models.Product, error) {
	product, err := s.repo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if limit <= 0 {
		limit = 8
	}
	related, err := s.repo.Related(product, limit)
	if err != nil {
		return nil, err
	}
	if err := s.discountService.ApplyToProducts(related, time.Now()); err != nil {
		return nil, err
	}
	return related, nil
}

// ListAdmin 后台商品列表，含隐藏商品，不叠加活动价
func (s *ProductService) ListAdmin(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	filter.OnlyVisible = false
	return s.repo.List(filter)
}

// GetAdminByID 后台商品详情
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品，总库存为各颜色库存之和
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	colors, stock, err := validateProductInput(&input)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetBySlug(input.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductSlugExists
	}

	product := &models.Product{
		Name:          input.Name,
		Slug:          input.Slug,
		Description:   input.Description,
		Brand:         strings.TrimSpace(input.Brand),
		ProductType:   input.ProductType,
		SportType:     input.SportType,
		Gender:        input.Gender,
		Visibility:    input.Visibility,
		OriginalPrice: input.OriginalPrice,
		SalePrice:     input.SalePrice,
		Images:        models.StringArray(input.Images),
		Sizes:         models.StringArray(input.Sizes),
		StockQuantity: stock,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceColors(product.ID, colors); err != nil {
		return nil, err
	}
	return s.repo.GetByID(product.ID)
}

// Update 更新商品，颜色规格整体替换但保留已售计数
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	colors, stock, err := validateProductInput(&input)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if input.Slug != product.Slug {
		existing, err := s.repo.GetBySlug(input.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, ErrProductSlugExists
		}
	}

	soldByColor := map[int]int{}
	for _, color := range product.Colors {
		soldByColor[color.Value] = color.Sale
	}
	for i := range colors {
		colors[i].Sale = soldByColor[colors[i].Value]
	}

	product.Name = input.Name
	product.Slug = input.Slug
	product.Description = input.Description
	product.Brand = strings.TrimSpace(input.Brand)
	product.ProductType = input.ProductType
	product.SportType = input.SportType
	product.Gender = input.Gender
	product.Visibility = input.Visibility
	product.OriginalPrice = input.OriginalPrice
	product.SalePrice = input.SalePrice
	product.Images = models.StringArray(input.Images)
	product.Sizes = models.StringArray(input.Sizes)
	product.StockQuantity = stock
	product.Colors = nil

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	if err := s.repo.ReplaceColors(product.ID, colors); err != nil {
		return nil, err
	}
	return s.repo.GetByID(product.ID)
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.repo.Delete(id)
}

func validateProductInput(input *ProductInput) ([]models.ProductColor, int, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Slug = strings.ToLower(strings.TrimSpace(input.Slug))
	if input.Name == "" || input.Slug == "" {
		return nil, 0, ErrProductInvalid
	}
	if input.ProductType < constants.ProductTypeShoes || input.ProductType > constants.ProductTypeEquipment {
		return nil, 0, ErrProductInvalid
	}
	if input.SportType < constants.SportTypeFootball || input.SportType > constants.SportTypeSwimming {
		return nil, 0, ErrProductInvalid
	}
	if input.Gender == 0 {
		input.Gender = constants.ProductGenderUnisex
	}
	if input.Gender < constants.ProductGenderMen || input.Gender > constants.ProductGenderUnisex {
		return nil, 0, ErrProductInvalid
	}
	if input.Visibility == 0 {
		input.Visibility = constants.ProductVisible
	}
	if input.Visibility != constants.ProductVisible && input.Visibility != constants.ProductHidden {
		return nil, 0, ErrProductInvalid
	}
	if input.OriginalPrice.Decimal.IsNegative() || input.OriginalPrice.Decimal.IsZero() {
		return nil, 0, ErrProductInvalid
	}
	if input.SalePrice != nil {
		if input.SalePrice.Decimal.IsNegative() ||
			input.SalePrice.Decimal.GreaterThanOrEqual(input.OriginalPrice.Decimal) {
			return nil, 0, ErrProductInvalid
		}
	}
	if len(input.Colors) == 0 {
		return nil, 0, ErrProductInvalid
	}

	seen := map[int]bool{}
	colors := make([]models.ProductColor, 0, len(input.Colors))
	stock := 0
	for _, color := range input.Colors {
		if color.Value < constants.ProductColorBlack || color.Value > constants.ProductColorPink {
			return nil, 0, ErrColorNotFound
		}
		if seen[color.Value] {
			return nil, 0, ErrColorDuplicated
		}
		if color.Quantity < 0 {
			return nil, 0, ErrProductInvalid
		}
		seen[color.Value] = true
		stock += color.Quantity
		colors = append(colors, models.ProductColor{
			Value:    color.Value,
			Quantity: color.Quantity,
		})
	}
	return colors, stock, nil
}
