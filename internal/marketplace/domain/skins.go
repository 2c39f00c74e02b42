package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type SkinStatus string

const (
	SkinStatusListed    SkinStatus = "listed"
	SkinStatusSold      SkinStatus = "sold"
	SkinStatusCancelled SkinStatus = "cancelled"
)

type Skin struct {
	Id           int
	SellerId     int
	SellerName   string
	SellerAvatar string
	Name         string
	Weapon       string
	Category     string
	Rarity       string
	Wear         string
	FloatValue   float64
	Price        decimal.Decimal
	ImageUrl     string
	StatTrak     bool
	Collection   string
	InspectLink  string
	SteamAssetId string
	ListedAt     time.Time
	Status       SkinStatus
}

// SkinDraft holds the fields a seller submits when creating a listing.
// Metadata comes from the external inventory source and is not validated
// beyond the required fields.
type SkinDraft struct {
	Name         string
	Weapon       string
	Category     string
	Rarity       string
	Wear         string
	FloatValue   float64
	Price        decimal.Decimal
	ImageUrl     string
	StatTrak     bool
	Collection   string
	InspectLink  string
	SteamAssetId string
}

type SkinSort string

const (
	SkinSortNewest    SkinSort = "newest"
	SkinSortPriceAsc  SkinSort = "price-asc"
	SkinSortPriceDesc SkinSort = "price-desc"
	SkinSortFloatAsc  SkinSort = "float-asc"
	SkinSortFloatDesc SkinSort = "float-desc"
)

type SkinFilter struct {
	Search     string
	Categories []string
	Rarities   []string
	Wears      []string
	StatTrak   bool
	PriceMin   decimal.Decimal
	PriceMax   decimal.Decimal
	Sort       SkinSort
	Limit      int
	Offset     int
}

type SkinsRepository interface {
	GetSkin(ctx context.Context, skinId int) (Skin, error)
	CreateSkin(ctx context.Context, sellerId int, draft SkinDraft) (Skin, error)
	CancelSkin(ctx context.Context, sellerId, skinId int) error
	BrowseSkins(ctx context.Context, filter SkinFilter) ([]Skin, int, error)
	ListSellerSkins(ctx context.Context, sellerId int, status SkinStatus) ([]Skin, error)
}

type SellerSkinsCounter interface {
	CountSellerSkins(ctx context.Context, sellerId int, status SkinStatus) (int, error)
}
