package application

import (
	"context"
	"fmt"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
)

type CartCase struct {
	skinsRepository domain.SkinsRepository
	cartRepository  domain.CartRepository
}

func NewCartCase(skinsRepository domain.SkinsRepository, cartRepository domain.CartRepository) *CartCase {
	return &CartCase{
		skinsRepository: skinsRepository,
		cartRepository:  cartRepository,
	}
}

func (cc *CartCase) AddToCart(ctx context.Context, userId, skinId int) error {
	skin, err := cc.skinsRepository.GetSkin(ctx, skinId)
	if err != nil {
		return err
	}

	if skin.Status != domain.SkinStatusListed {
		return &domain.SkinNotFoundError{Msg: fmt.Sprintf("skin with id %d is no longer listed", skinId)}
	}

	if skin.SellerId == userId {
		return &domain.SelfPurchaseError{}
	}

	err = cc.cartRepository.AddItem(ctx, userId, skinId)
	if err != nil {
		return err
	}

	return nil
}

func (cc *CartCase) RemoveFromCart(ctx context.Context, userId, skinId int) error {
	return cc.cartRepository.RemoveItem(ctx, userId, skinId)
}

func (cc *CartCase) ClearCart(ctx context.Context, userId int) error {
	return cc.cartRepository.Clear(ctx, userId)
}

func (cc *CartCase) ListCart(ctx context.Context, userId int) ([]domain.CartItem, error) {
	items, err := cc.cartRepository.ListItems(ctx, userId)
	if err != nil {
		return nil, err
	}

	return items, nil
}
