package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page        int
	PageSize    int
	Search      string
	Brand       string
	ProductType int
	SportType   int
	Gender      int
	ColorValue  int
	PriceMin    *float64
	PriceMax    *float64
	OnlyVisible bool
	SortBy      string // newest / price_asc / price_desc / best_seller
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page          int
	PageSize      int
	UserID        uint
	Status        string
	OrderCode     string
	ReceiverEmail string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

// ReviewListFilter 查询评价列表的过滤条件
type ReviewListFilter struct {
	Page      int
	PageSize  int
	ProductID uint
	Rating    int
	Pinned    *bool
}

// BannerListFilter 查询 Banner 列表的过滤条件
type BannerListFilter struct {
	Page      int
	PageSize  int
	Position  string
	Search    string
	IsActive  *bool
	OnlyValid bool
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page        int
	PageSize    int
	Keyword     string
	Role        string
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}
