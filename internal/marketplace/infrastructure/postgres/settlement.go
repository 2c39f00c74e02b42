package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/database"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SettlementItem is a cart row joined with the current state of its skin,
// read inside the settlement transaction.
type SettlementItem struct {
	SkinId   int
	Name     string
	SellerId int
	Price    decimal.Decimal
	Status   domain.SkinStatus
}

// SettlementEngine performs the atomic checkout: it re-validates every cart
// item, locks the buyer's balance row, moves funds, marks skins sold, writes
// the ledger rows and clears the cart in a single transaction.
type SettlementEngine struct {
	txBeginner database.TxBeginner
	logger     logging.Logger
}

func NewSettlementEngine(txBeginner database.TxBeginner, logger logging.Logger) *SettlementEngine {
	return &SettlementEngine{
		txBeginner: txBeginner,
		logger:     logger,
	}
}

func (se *SettlementEngine) SettleCart(ctx context.Context, buyerId int) (domain.SettlementResult, error) {
	tx, err := se.txBeginner.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return domain.SettlementResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		err := tx.Rollback(ctx)
		if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			se.logger.Error("failed to rollback transaction", "error", err)
		}
	}()

	items, err := ReadCartForSettlement(ctx, tx, buyerId)
	if err != nil {
		return domain.SettlementResult{}, err
	}

	if len(items) == 0 {
		return domain.SettlementResult{}, &domain.EmptyCartError{}
	}

	if names := UnavailableItemNames(items); len(names) > 0 {
		return domain.SettlementResult{}, &domain.ItemsUnavailableError{Names: names}
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}

	balance, err := GetAndLockUserBalance(ctx, tx, buyerId)
	if err != nil {
		return domain.SettlementResult{}, err
	}

	if balance.LessThan(total) {
		return domain.SettlementResult{}, &domain.InsufficientBalanceError{}
	}

	for _, item := range items {
		err = SettleItem(ctx, tx, buyerId, item)
		if err != nil {
			return domain.SettlementResult{}, err
		}
	}

	clearCartSQL := `DELETE FROM cart_items WHERE user_id = $1`
	_, err = tx.Exec(ctx, clearCartSQL, buyerId)
	if err != nil {
		return domain.SettlementResult{}, fmt.Errorf("failed to clear cart: %w", err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return domain.SettlementResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return domain.SettlementResult{
		Total:     total,
		ItemCount: len(items),
	}, nil
}

// ReadCartForSettlement reads the buyer's cart joined with each skin's
// current price, seller and status. Rows come back in skin id order so the
// ledger rows of a batch are written in a stable order.
func ReadCartForSettlement(ctx context.Context, querier database.Querier, buyerId int) ([]SettlementItem, error) {
	cartSelectSQL := `SELECT ci.skin_id, s.name, s.seller_id, s.price::TEXT, s.status
FROM cart_items ci
JOIN skins s ON s.id = ci.skin_id
WHERE ci.user_id = $1
ORDER BY ci.skin_id`

	rows, err := querier.Query(ctx, cartSelectSQL, buyerId)
	if err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}
	defer rows.Close()

	var items []SettlementItem
	for rows.Next() {
		var item SettlementItem
		var price string

		err = rows.Scan(&item.SkinId, &item.Name, &item.SellerId, &price, &item.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart row: %w", err)
		}

		item.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("failed to parse skin price: %w", err)
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cart rows: %w", err)
	}

	return items, nil
}

// UnavailableItemNames returns the names of batch items that are no longer
// in the listed state.
func UnavailableItemNames(items []SettlementItem) []string {
	var names []string
	for _, item := range items {
		if item.Status != domain.SkinStatusListed {
			names = append(names, item.Name)
		}
	}

	return names
}

func GetAndLockUserBalance(ctx context.Context, querier database.Querier, userId int) (decimal.Decimal, error) {
	lockUserSQL := `SELECT balance::TEXT FROM users WHERE id = $1 FOR UPDATE`

	var balance string
	err := querier.QueryRow(ctx, lockUserSQL, userId).Scan(&balance)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userId)}
		}

		return decimal.Zero, fmt.Errorf("failed to lock user row: %w", err)
	}

	parsed, err := decimal.NewFromString(balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse user balance: %w", err)
	}

	return parsed, nil
}

// SettleItem applies one batch item: the conditioned listed->sold transition,
// the buyer debit, the seller credit and the symmetric pair of ledger rows.
func SettleItem(ctx context.Context, executor database.Executor, buyerId int, item SettlementItem) error {
	price := item.Price.StringFixed(2)

	// The status condition makes exactly one of two racing buyers win even
	// though availability was checked from an earlier read.
	markSoldSQL := `UPDATE skins SET status = 'sold' WHERE id = $1 AND status = 'listed'`
	tag, err := executor.Exec(ctx, markSoldSQL, item.SkinId)
	if err != nil {
		return fmt.Errorf("failed to mark skin as sold: %w", err)
	} else if tag.RowsAffected() == 0 {
		return &domain.ItemsUnavailableError{Names: []string{item.Name}}
	}

	debitBuyerSQL := `UPDATE users SET balance = balance - $1::NUMERIC, total_purchases = total_purchases + $1::NUMERIC, updated_at = NOW() WHERE id = $2`
	_, err = executor.Exec(ctx, debitBuyerSQL, price, buyerId)
	if err != nil {
		return fmt.Errorf("failed to debit buyer balance: %w", err)
	}

	creditSellerSQL := `UPDATE users SET balance = balance + $1::NUMERIC, total_sales = total_sales + $1::NUMERIC, updated_at = NOW() WHERE id = $2`
	_, err = executor.Exec(ctx, creditSellerSQL, price, item.SellerId)
	if err != nil {
		return fmt.Errorf("failed to credit seller balance: %w", err)
	}

	insertTransactionSQL := `INSERT INTO transactions (user_id, type, amount, description, skin_id, status) VALUES ($1, $2, $3::NUMERIC, $4, $5, 'completed')`

	_, err = executor.Exec(ctx, insertTransactionSQL,
		buyerId, domain.TransactionTypePurchase, price, fmt.Sprintf("Purchased %s", item.Name), item.SkinId)
	if err != nil {
		return fmt.Errorf("failed to insert purchase transaction: %w", err)
	}

	_, err = executor.Exec(ctx, insertTransactionSQL,
		item.SellerId, domain.TransactionTypeSale, price, fmt.Sprintf("Sold %s", item.Name), item.SkinId)
	if err != nil {
		return fmt.Errorf("failed to insert sale transaction: %w", err)
	}

	return nil
}
