package application

import (
	"context"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
)

type ListingCase struct {
	skinsRepository domain.SkinsRepository
}

func NewListingCase(skinsRepository domain.SkinsRepository) *ListingCase {
	return &ListingCase{
		skinsRepository: skinsRepository,
	}
}

func (lc *ListingCase) CreateListing(ctx context.Context, sellerId int, draft domain.SkinDraft) (domain.Skin, error) {
	if err := validateDraft(draft); err != nil {
		return domain.Skin{}, err
	}

	skin, err := lc.skinsRepository.CreateSkin(ctx, sellerId, draft)
	if err != nil {
		return domain.Skin{}, err
	}

	return skin, nil
}

func (lc *ListingCase) CancelListing(ctx context.Context, sellerId, skinId int) error {
	return lc.skinsRepository.CancelSkin(ctx, sellerId, skinId)
}

func (lc *ListingCase) GetListing(ctx context.Context, skinId int) (domain.Skin, error) {
	return lc.skinsRepository.GetSkin(ctx, skinId)
}

func (lc *ListingCase) BrowseListings(ctx context.Context, filter domain.SkinFilter) ([]domain.Skin, int, error) {
	return lc.skinsRepository.BrowseSkins(ctx, filter)
}

func (lc *ListingCase) ListUserListings(ctx context.Context, sellerId int, status domain.SkinStatus) ([]domain.Skin, error) {
	if status == "" {
		status = domain.SkinStatusListed
	}

	return lc.skinsRepository.ListSellerSkins(ctx, sellerId, status)
}

func validateDraft(draft domain.SkinDraft) error {
	required := map[string]string{
		"name":     draft.Name,
		"weapon":   draft.Weapon,
		"category": draft.Category,
		"rarity":   draft.Rarity,
		"wear":     draft.Wear,
	}

	for field, value := range required {
		if value == "" {
			return &domain.InvalidArgumentsError{Msg: field + " is required"}
		}
	}

	if !draft.Price.IsPositive() {
		return &domain.InvalidArgumentsError{Msg: "price must be positive"}
	}

	return nil
}
