package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// SettlementResult reports what a committed checkout charged.
type SettlementResult struct {
	Total     decimal.Decimal
	ItemCount int
}

// Settler converts the buyer's cart into completed purchases as one atomic
// unit of work. On any failure no state change is retained, so a caller may
// retry after a transient error without double-charging.
type Settler interface {
	SettleCart(ctx context.Context, buyerId int) (SettlementResult, error)
}
