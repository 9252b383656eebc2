package service

import (
	"strings"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"
)

// BannerService Banner 业务服务
type BannerService struct {
	repo repository.BannerRepository
}

// NewBannerService 创建 Banner 服务
func NewBannerService(repo repository.BannerRepository) *BannerService {
	return &BannerService{repo: repo}
}

// BannerInput 创建/更新 Banner 输入
type BannerInput struct {
	Name         string `json:"name" binding:"required"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Image        string `json:"image" binding:"required"`
	MobileImage  string `json:"mobile_image"`
	LinkType     string `json:"link_type"`
	LinkValue    string `json:"link_value"`
	OpenInNewTab *bool  `json:"open_in_new_tab"`
	IsActive     *bool  `json:"is_active"`
	SortOrder    int    `json:"sort_order"`
}

// ListAdmin 后台 Banner 列表
func (s *BannerService) ListAdmin(position, search string, isActive *bool, page, pageSize int) ([]models.Banner, int64, error) {
	filter := repository.BannerListFilter{
		Page:     page,
		PageSize: pageSize,
		Position: strings.TrimSpace(position),
		Search:   strings.TrimSpace(search),
		IsActive: isActive,
	}
	return s.repo.List(filter)
}

// ListPublic 前台 Banner 列表，目前仅有首页轮播位
func (s *BannerService) ListPublic(limit int) ([]models.Banner, error) {
	return s.repo.ListValidByPosition(constants.BannerPositionHomeHero, limit)
}

// GetByID 根据 ID 获取 Banner
func (s *BannerService) GetByID(id uint) (*models.Banner, error) {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, ErrNotFound
	}
	return banner, nil
}

// Create 创建 Banner
func (s *BannerService) Create(input BannerInput) (*models.Banner, error) {
	banner, err := buildBannerEntity(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Update 更新 Banner
func (s *BannerService) Update(id uint, input BannerInput) (*models.Banner, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	banner, err := buildBannerEntity(input, existing)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// Delete 删除 Banner
func (s *BannerService) Delete(id uint) error {
	banner, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if banner == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func buildBannerEntity(input BannerInput, existing *models.Banner) (*models.Banner, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidBanner
	}
	image := strings.TrimSpace(input.Image)
	if image == "" {
		return nil, ErrInvalidBanner
	}

	linkType := normalizeBannerLinkType(input.LinkType)
	if linkType == "" {
		return nil, ErrInvalidBanner
	}

	linkValue := strings.TrimSpace(input.LinkValue)
	if linkType == constants.BannerLinkTypeNone {
		linkValue = ""
	}
	if linkType != constants.BannerLinkTypeNone && linkValue == "" {
		return nil, ErrInvalidBanner
	}

	entity := existing
	if entity == nil {
		entity = &models.Banner{IsActive: true}
	}
	entity.Name = name
	entity.Position = constants.BannerPositionHomeHero
	entity.Title = strings.TrimSpace(input.Title)
	entity.Subtitle = strings.TrimSpace(input.Subtitle)
	entity.Image = image
	entity.MobileImage = strings.TrimSpace(input.MobileImage)
	entity.LinkType = linkType
	entity.LinkValue = linkValue
	entity.SortOrder = input.SortOrder
	if input.OpenInNewTab != nil {
		entity.OpenInNewTab = *input.OpenInNewTab
	}
	if input.IsActive != nil {
		entity.IsActive = *input.IsActive
	}
	return entity, nil
}

func normalizeBannerLinkType(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case "", constants.BannerLinkTypeNone:
		return constants.BannerLinkTypeNone
	case constants.BannerLinkTypeInternal:
		return constants.BannerLinkTypeInternal
	case constants.BannerLinkTypeExternal:
		return constants.BannerLinkTypeExternal
	default:
		return ""
	}
}
