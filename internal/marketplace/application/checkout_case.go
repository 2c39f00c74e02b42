package application

import (
	"context"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
)

type CheckoutCase struct {
	settler domain.Settler
}

func NewCheckoutCase(settler domain.Settler) *CheckoutCase {
	return &CheckoutCase{
		settler: settler,
	}
}

func (cc *CheckoutCase) Checkout(ctx context.Context, buyerId int) (domain.SettlementResult, error) {
	result, err := cc.settler.SettleCart(ctx, buyerId)
	if err != nil {
		return domain.SettlementResult{}, err
	}

	return result, nil
}
