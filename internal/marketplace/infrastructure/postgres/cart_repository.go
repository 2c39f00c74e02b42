package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

type CartRepository struct {
	queryExecuter database.QueryExecuter
}

func NewCartRepository(queryExecuter database.QueryExecuter) *CartRepository {
	return &CartRepository{
		queryExecuter: queryExecuter,
	}
}

func (cr *CartRepository) AddItem(ctx context.Context, userId, skinId int) error {
	insertSQL := `INSERT INTO cart_items (user_id, skin_id) VALUES ($1, $2)`

	_, err := cr.queryExecuter.Exec(ctx, insertSQL, userId, skinId)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return &domain.AlreadyInCartError{}
		}

		return fmt.Errorf("failed to insert cart item: %w", err)
	}

	return nil
}

func (cr *CartRepository) RemoveItem(ctx context.Context, userId, skinId int) error {
	deleteSQL := `DELETE FROM cart_items WHERE user_id = $1 AND skin_id = $2`

	tag, err := cr.queryExecuter.Exec(ctx, deleteSQL, userId, skinId)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.CartItemNotFoundError{Msg: fmt.Sprintf("skin %d is not in the cart", skinId)}
	}

	return nil
}

func (cr *CartRepository) Clear(ctx context.Context, userId int) error {
	deleteSQL := `DELETE FROM cart_items WHERE user_id = $1`

	_, err := cr.queryExecuter.Exec(ctx, deleteSQL, userId)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// ListItems returns the cart joined with skin and seller data. Entries whose
// skin has since been sold or cancelled are filtered out, not deleted.
func (cr *CartRepository) ListItems(ctx context.Context, userId int) ([]domain.CartItem, error) {
	listSQL := `SELECT ci.id, ci.added_at,
       s.id, s.seller_id, s.name, s.weapon, s.category, s.rarity, s.wear,
       s.float_value, s.price::TEXT, s.image_url, s.stattrak,
       COALESCE(s.collection, ''), s.listed_at, s.status,
       u.username, u.avatar
FROM cart_items ci
JOIN skins s ON s.id = ci.skin_id
JOIN users u ON u.id = s.seller_id
WHERE ci.user_id = $1 AND s.status = 'listed'
ORDER BY ci.added_at DESC`

	rows, err := cr.queryExecuter.Query(ctx, listSQL, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		var price string

		err = rows.Scan(
			&item.CartItemId, &item.AddedAt,
			&item.Skin.Id, &item.Skin.SellerId, &item.Skin.Name, &item.Skin.Weapon,
			&item.Skin.Category, &item.Skin.Rarity, &item.Skin.Wear,
			&item.Skin.FloatValue, &price, &item.Skin.ImageUrl, &item.Skin.StatTrak,
			&item.Skin.Collection, &item.Skin.ListedAt, &item.Skin.Status,
			&item.Skin.SellerName, &item.Skin.SellerAvatar,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cart row: %w", err)
		}

		item.Skin.Price, err = decimal.NewFromString(price)
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
