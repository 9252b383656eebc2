package service

import (
	"errors"
	"testing"

	"github.com/lamine-sport/api/internal/constants"
	"github.com/lamine-sport/api/internal/models"
	"github.com/lamine-sport/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupBannerServiceTest(t *testing.T) (*BannerService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Banner{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewBannerService(repository.NewBannerRepository(db)), db
}

func TestCreateBannerNormalizesLink(t *testing.T) {
	svc, _ := setupBannerServiceTest(t)

	banner, err := svc.Create(BannerInput{
		Name:      "Khuyến mãi hè",
		Image:     "https://cdn.laminesport.vn/banners/summer.jpg",
		LinkType:  " Internal ",
		LinkValue: " /collections/summer ",
	})
	if err != nil {
		t.Fatalf("create banner failed: %v", err)
	}
	if banner.Position != constants.BannerPositionHomeHero {
		t.Fatalf("banner position want home_hero got %s", banner.Position)
	}
	if banner.LinkType != constants.BannerLinkTypeInternal || banner.LinkValue != "/collections/summer" {
		t.Fatalf("link should be normalized, got type=%s value=%q", banner.LinkType, banner.LinkValue)
	}
	if !banner.IsActive {
		t.Fatalf("banner should default to active")
	}

	// none 类型清空跳转值
	plain, err := svc.Create(BannerInput{
		Name:      "Hình nền thương hiệu",
		Image:     "https://cdn.laminesport.vn/banners/brand.jpg",
		LinkType:  "none",
		LinkValue: "/ignored",
	})
	if err != nil {
		t.Fatalf("create banner failed: %v", err)
	}
	if plain.LinkValue != "" {
		t.Fatalf("none link should drop value, got %q", plain.LinkValue)
	}
}

func TestCreateBannerValidatesInput(t *testing.T) {
	svc, _ := setupBannerServiceTest(t)

	cases := []BannerInput{
		{Name: "  ", Image: "https://cdn.laminesport.vn/a.jpg"},
		{Name: "thiếu ảnh", Image: "  "},
		{Name: "link lạ", Image: "https://cdn.laminesport.vn/a.jpg", LinkType: "popup"},
		{Name: "thiếu link", Image: "https://cdn.laminesport.vn/a.jpg", LinkType: "external"},
	}
	for i, input := range cases {
		if _, err := svc.Create(input); !errors.Is(err, ErrInvalidBanner) {
			t.Fatalf("case %d want ErrInvalidBanner, got %v", i, err)
		}
	}
}

func TestListPublicReturnsActiveHomeHeroOnly(t *testing.T) {
	svc, db := setupBannerServiceTest(t)

	if _, err := svc.Create(BannerInput{Name: "Hiện", Image: "https://cdn.laminesport.vn/1.jpg"}); err != nil {
		t.Fatalf("create banner failed: %v", err)
	}
	inactive := false
	if _, err := svc.Create(BannerInput{Name: "Ẩn", Image: "https://cdn.laminesport.vn/2.jpg", IsActive: &inactive}); err != nil {
		t.Fatalf("create banner failed: %v", err)
	}

	var total int64
	db.Model(&models.Banner{}).Count(&total)
	if total != 2 {
		t.Fatalf("expected 2 banners persisted, got %d", total)
	}

	banners, err := svc.ListPublic(10)
	if err != nil {
		t.Fatalf("list public failed: %v", err)
	}
	if len(banners) != 1 || banners[0].Name != "Hiện" {
		t.Fatalf("public list should only show active banners, got %+v", banners)
	}
}

func TestUpdateAndDeleteBannerRequireExisting(t *testing.T) {
	svc, _ := setupBannerServiceTest(t)

	if _, err := svc.Update(4242, BannerInput{Name: "x", Image: "https://cdn.laminesport.vn/x.jpg"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing banner want ErrNotFound, got %v", err)
	}
	if err := svc.Delete(4242); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing banner want ErrNotFound, got %v", err)
	}

	banner, err := svc.Create(BannerInput{Name: "Đổi tên", Image: "https://cdn.laminesport.vn/3.jpg"})
	if err != nil {
		t.Fatalf("create banner failed: %v", err)
	}
	updated, err := svc.Update(banner.ID, BannerInput{Name: "Tên mới", Image: banner.Image, SortOrder: 5})
	if err != nil {
		t.Fatalf("update banner failed: %v", err)
	}
	if updated.Name != "Tên mới" || updated.SortOrder != 5 {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := svc.Delete(banner.ID); err != nil {
		t.Fatalf("delete banner failed: %v", err)
	}
	if _, err := svc.GetByID(banner.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted banner want ErrNotFound, got %v", err)
	}
}
