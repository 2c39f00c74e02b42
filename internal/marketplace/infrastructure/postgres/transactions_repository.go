package postgres

import (
	"context"
	"fmt"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type TransactionsRepository struct {
	querier database.Querier
}

func NewTransactionsRepository(querier database.Querier) *TransactionsRepository {
	return &TransactionsRepository{
		querier: querier,
	}
}

func (tr *TransactionsRepository) ListUserTransactions(ctx context.Context, userId, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}

	listSQL := `SELECT t.id, t.user_id, t.type, t.amount::TEXT, COALESCE(t.description, ''),
       COALESCE(t.skin_id, 0), COALESCE(s.name, ''), t.status, t.created_at
FROM transactions t
LEFT JOIN skins s ON s.id = t.skin_id
WHERE t.user_id = $1
ORDER BY t.created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := tr.querier.Query(ctx, listSQL, userId, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to select transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		var amount string

		err = rows.Scan(
			&transaction.Id, &transaction.UserId, &transaction.Type, &amount,
			&transaction.Description, &transaction.SkinId, &transaction.SkinName,
			&transaction.Status, &transaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}

		transaction.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse transaction amount: %w", err)
		}

		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction rows: %w", err)
	}

	return transactions, nil
}
