package postgres

import (
	"testing"
	"time"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userRowColumns = []string{
	"id", "steam_id", "username", "avatar", "profile_url",
	"balance", "total_sales", "total_purchases", "created_at",
}

func TestUsersRepository_UpsertSteamUser(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

	identity := domain.Identity{
		SteamId:    "76561198000000001",
		Username:   "player_one",
		Avatar:     "https://avatars.steamstatic.com/abc.jpg",
		ProfileUrl: "https://steamcommunity.com/id/player_one/",
	}

	type testCase struct {
		name     string
		identity domain.Identity

		expectedRes domain.User
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:     "successful upsert",
			identity: identity,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows(userRowColumns).
					AddRow(
						1, "76561198000000001", "player_one",
						"https://avatars.steamstatic.com/abc.jpg",
						"https://steamcommunity.com/id/player_one/",
						"0.00", "0.00", "0.00", createdAt,
					)
				mock.ExpectQuery("INSERT").
					WithArgs(
						"76561198000000001", "player_one",
						"https://avatars.steamstatic.com/abc.jpg",
						"https://steamcommunity.com/id/player_one/",
					).
					WillReturnRows(rows)
			},
			expectedRes: domain.User{
				Id:             1,
				SteamId:        "76561198000000001",
				Username:       "player_one",
				Avatar:         "https://avatars.steamstatic.com/abc.jpg",
				ProfileUrl:     "https://steamcommunity.com/id/player_one/",
				Balance:        decimal.RequireFromString("0.00"),
				TotalSales:     decimal.RequireFromString("0.00"),
				TotalPurchases: decimal.RequireFromString("0.00"),
				CreatedAt:      createdAt,
			},
			expectedErr: nil,
		},
		{
			name:     "database error",
			identity: identity,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT").
					WithArgs(
						"76561198000000001", "player_one",
						"https://avatars.steamstatic.com/abc.jpg",
						"https://steamcommunity.com/id/player_one/",
					).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewUsersRepository(mock)
			res, err := repo.UpsertSteamUser(t.Context(), tt.identity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestUsersRepository_GetUser(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)

	type testCase struct {
		name   string
		userId int

		expectedRes domain.User
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:   "user found",
			userId: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows(userRowColumns).
					AddRow(
						1, "76561198000000001", "player_one",
						"https://avatars.steamstatic.com/abc.jpg",
						"https://steamcommunity.com/id/player_one/",
						"120.50", "200.00", "79.50", createdAt,
					)
				mock.ExpectQuery("SELECT").
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectedRes: domain.User{
				Id:             1,
				SteamId:        "76561198000000001",
				Username:       "player_one",
				Avatar:         "https://avatars.steamstatic.com/abc.jpg",
				ProfileUrl:     "https://steamcommunity.com/id/player_one/",
				Balance:        decimal.RequireFromString("120.50"),
				TotalSales:     decimal.RequireFromString("200.00"),
				TotalPurchases: decimal.RequireFromString("79.50"),
				CreatedAt:      createdAt,
			},
			expectedErr: nil,
		},
		{
			name:   "user not found",
			userId: 999,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(999).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.UserNotFoundError{},
		},
		{
			name:   "database error",
			userId: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(1).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewUsersRepository(mock)
			res, err := repo.GetUser(t.Context(), tt.userId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestUsersRepository_GetUser_MalformedBalance(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	rows := pgxmock.NewRows(userRowColumns).
		AddRow(
			1, "76561198000000001", "player_one",
			"https://avatars.steamstatic.com/abc.jpg",
			"https://steamcommunity.com/id/player_one/",
			"not-a-number", "0.00", "0.00",
			time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC),
		)
	mock.ExpectQuery("SELECT").
		WithArgs(1).
		WillReturnRows(rows)

	repo := NewUsersRepository(mock)
	_, err = repo.GetUser(t.Context(), 1)

	assert.ErrorContains(t, err, "failed to parse user balance")
}
