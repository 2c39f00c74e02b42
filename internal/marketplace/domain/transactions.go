package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypePurchase   TransactionType = "purchase"
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an immutable ledger record of a balance-affecting event.
type Transaction struct {
	Id          int
	UserId      int
	Type        TransactionType
	Amount      decimal.Decimal
	Description string
	SkinId      int
	SkinName    string
	Status      TransactionStatus
	CreatedAt   time.Time
}

type TransactionsRepository interface {
	ListUserTransactions(ctx context.Context, userId, limit, offset int) ([]Transaction, error)
}
