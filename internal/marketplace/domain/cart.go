package domain

import (
	"context"
	"time"
)

// CartItem is a cart row joined with the referenced skin and its seller.
type CartItem struct {
	CartItemId int
	AddedAt    time.Time
	Skin       Skin
}

type CartRepository interface {
	AddItem(ctx context.Context, userId, skinId int) error
	RemoveItem(ctx context.Context, userId, skinId int) error
	Clear(ctx context.Context, userId int) error
	ListItems(ctx context.Context, userId int) ([]CartItem, error)
}
