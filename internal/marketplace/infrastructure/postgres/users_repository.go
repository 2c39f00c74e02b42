package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const userColumns = `id, steam_id, username, avatar, profile_url, balance::TEXT, total_sales::TEXT, total_purchases::TEXT, created_at`

type UsersRepository struct {
	queryExecuter database.QueryExecuter
}

func NewUsersRepository(queryExecuter database.QueryExecuter) *UsersRepository {
	return &UsersRepository{
		queryExecuter: queryExecuter,
	}
}

// UpsertSteamUser creates the local user record for a resolved identity, or
// refreshes the mutable profile fields when the user already exists.
func (ur *UsersRepository) UpsertSteamUser(ctx context.Context, identity domain.Identity) (domain.User, error) {
	upsertSQL := `INSERT INTO users (steam_id, username, avatar, profile_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (steam_id) DO UPDATE
SET username = EXCLUDED.username, avatar = EXCLUDED.avatar, profile_url = EXCLUDED.profile_url, updated_at = NOW()
RETURNING ` + userColumns

	user, err := scanUser(ur.queryExecuter.QueryRow(ctx, upsertSQL,
		identity.SteamId, identity.Username, identity.Avatar, identity.ProfileUrl))
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to upsert user: %w", err)
	}

	return user, nil
}

func (ur *UsersRepository) GetUser(ctx context.Context, userId int) (domain.User, error) {
	findUserSQL := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.queryExecuter.QueryRow(ctx, findUserSQL, userId))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userId)}
		}

		return domain.User{}, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	var balance, totalSales, totalPurchases string

	err := row.Scan(
		&user.Id, &user.SteamId, &user.Username, &user.Avatar, &user.ProfileUrl,
		&balance, &totalSales, &totalPurchases, &user.CreatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}

	user.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to parse user balance: %w", err)
	}

	user.TotalSales, err = decimal.NewFromString(totalSales)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to parse user total sales: %w", err)
	}

	user.TotalPurchases, err = decimal.NewFromString(totalPurchases)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to parse user total purchases: %w", err)
	}

	return user, nil
}
