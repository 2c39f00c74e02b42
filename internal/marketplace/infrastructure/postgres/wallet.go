package postgres

import (
	"context"
	"fmt"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

// Wallet applies administrative deposits and withdrawals. These are the only
// balance mutations outside the settlement engine, and they follow the same
// locked read-modify-write discipline.
type Wallet struct {
	txManager database.TxManager
}

func NewWallet(txManager database.TxManager) *Wallet {
	return &Wallet{
		txManager: txManager,
	}
}

func (w *Wallet) Deposit(ctx context.Context, userId int, amount decimal.Decimal) (decimal.Decimal, error) {
	return w.applyChange(ctx, userId, amount, domain.TransactionTypeDeposit)
}

func (w *Wallet) Withdraw(ctx context.Context, userId int, amount decimal.Decimal) (decimal.Decimal, error) {
	return w.applyChange(ctx, userId, amount, domain.TransactionTypeWithdrawal)
}

func (w *Wallet) applyChange(ctx context.Context, userId int, amount decimal.Decimal, txType domain.TransactionType) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, &domain.InvalidArgumentsError{Msg: "amount must be positive"}
	}

	var newBalance decimal.Decimal

	err := w.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		balance, err := GetAndLockUserBalance(ctx, executor, userId)
		if err != nil {
			return err
		}

		var description string

		switch txType {
		case domain.TransactionTypeDeposit:
			newBalance = balance.Add(amount)
			description = fmt.Sprintf("Deposited %s", amount.StringFixed(2))
		case domain.TransactionTypeWithdrawal:
			if balance.LessThan(amount) {
				return &domain.InsufficientBalanceError{}
			}

			newBalance = balance.Sub(amount)
			description = fmt.Sprintf("Withdrew %s", amount.StringFixed(2))
		default:
			return &domain.InvalidArgumentsError{Msg: fmt.Sprintf("unsupported wallet operation %s", txType)}
		}

		updateBalanceSQL := `UPDATE users SET balance = $1::NUMERIC, updated_at = NOW() WHERE id = $2`
		_, err = executor.Exec(ctx, updateBalanceSQL, newBalance.StringFixed(2), userId)
		if err != nil {
			return fmt.Errorf("failed to update user balance: %w", err)
		}

		insertTransactionSQL := `INSERT INTO transactions (user_id, type, amount, description, status) VALUES ($1, $2, $3::NUMERIC, $4, 'completed')`
		_, err = executor.Exec(ctx, insertTransactionSQL, userId, txType, amount.StringFixed(2), description)
		if err != nil {
			return fmt.Errorf("failed to insert wallet transaction: %w", err)
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return newBalance, nil
}
