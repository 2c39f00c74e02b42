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

var skinRowColumns = []string{
	"id", "seller_id", "name", "weapon", "category", "rarity", "wear",
	"float_value", "price", "image_url", "stattrak",
	"collection", "inspect_link", "steam_asset_id",
	"listed_at", "status", "username", "avatar",
}

func redlineRow(listedAt time.Time) []any {
	return []any{
		10, 2, "AK-47 | Redline", "AK-47", "Rifle", "Classified", "Field-Tested",
		0.21, "30.00", "https://cdn.example.com/redline.png", false,
		"The Huntsman Collection", "", "",
		listedAt, domain.SkinStatusListed, "seller_one", "https://cdn.example.com/avatar.png",
	}
}

func redlineSkin(listedAt time.Time) domain.Skin {
	return domain.Skin{
		Id:           10,
		SellerId:     2,
		SellerName:   "seller_one",
		SellerAvatar: "https://cdn.example.com/avatar.png",
		Name:         "AK-47 | Redline",
		Weapon:       "AK-47",
		Category:     "Rifle",
		Rarity:       "Classified",
		Wear:         "Field-Tested",
		FloatValue:   0.21,
		Price:        decimal.RequireFromString("30.00"),
		ImageUrl:     "https://cdn.example.com/redline.png",
		Collection:   "The Huntsman Collection",
		ListedAt:     listedAt,
		Status:       domain.SkinStatusListed,
	}
}

func TestSkinsRepository_GetSkin(t *testing.T) {
	t.Parallel()

	listedAt := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	type testCase struct {
		name   string
		skinId int

		expectedRes domain.Skin
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:   "skin found",
			skinId: 10,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows(skinRowColumns).
					AddRow(redlineRow(listedAt)...)
				mock.ExpectQuery("SELECT").
					WithArgs(10).
					WillReturnRows(rows)
			},
			expectedRes: redlineSkin(listedAt),
			expectedErr: nil,
		},
		{
			name:   "skin not found",
			skinId: 999,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(999).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.SkinNotFoundError{},
		},
		{
			name:   "database error",
			skinId: 10,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(10).
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

			repo := NewSkinsRepository(mock)
			res, err := repo.GetSkin(t.Context(), tt.skinId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}

func TestSkinsRepository_CreateSkin(t *testing.T) {
	t.Parallel()

	listedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	draft := domain.SkinDraft{
		Name:       "AWP | Asiimov",
		Weapon:     "AWP",
		Category:   "Sniper Rifle",
		Rarity:     "Covert",
		Wear:       "Battle-Scarred",
		FloatValue: 0.51,
		Price:      decimal.RequireFromString("50.00"),
		ImageUrl:   "https://cdn.example.com/asiimov.png",
		StatTrak:   true,
	}

	type testCase struct {
		name     string
		sellerId int
		draft    domain.SkinDraft

		expectedId  int
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:     "successful insert",
			sellerId: 3,
			draft:    draft,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "listed_at", "status"}).
					AddRow(42, listedAt, domain.SkinStatusListed)
				mock.ExpectQuery("INSERT").
					WithArgs(
						3, "AWP | Asiimov", "AWP", "Sniper Rifle", "Covert", "Battle-Scarred",
						0.51, "50.00", "https://cdn.example.com/asiimov.png", true,
						"", "", "",
					).
					WillReturnRows(rows)
			},
			expectedId:  42,
			expectedErr: nil,
		},
		{
			name:     "database error",
			sellerId: 3,
			draft:    draft,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("INSERT").
					WithArgs(
						3, "AWP | Asiimov", "AWP", "Sniper Rifle", "Covert", "Battle-Scarred",
						0.51, "50.00", "https://cdn.example.com/asiimov.png", true,
						"", "", "",
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

			repo := NewSkinsRepository(mock)
			res, err := repo.CreateSkin(t.Context(), tt.sellerId, tt.draft)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedId, res.Id)
				assert.Equal(t, domain.SkinStatusListed, res.Status)
				assert.Equal(t, tt.sellerId, res.SellerId)
			}
		})
	}
}

func TestSkinsRepository_CancelSkin(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		sellerId int
		skinId   int

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:     "successful cancel",
			sellerId: 2,
			skinId:   10,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(10, 2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name:     "listing not owned by caller",
			sellerId: 5,
			skinId:   10,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(10, 5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.SkinNotFoundError{},
		},
		{
			name:     "database error",
			sellerId: 2,
			skinId:   10,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE").
					WithArgs(10, 2).
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

			repo := NewSkinsRepository(mock)
			err = repo.CancelSkin(t.Context(), tt.sellerId, tt.skinId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSkinsRepository_BrowseSkins(t *testing.T) {
	t.Parallel()

	listedAt := time.Date(2025, 5, 20, 9, 30, 0, 0, time.UTC)

	t.Run("browse with defaults", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		countRows := pgxmock.NewRows([]string{"count"}).AddRow(1)
		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(countRows)

		rows := pgxmock.NewRows(skinRowColumns).
			AddRow(redlineRow(listedAt)...)
		mock.ExpectQuery("SELECT").
			WithArgs(50, 0).
			WillReturnRows(rows)

		repo := NewSkinsRepository(mock)
		skins, total, err := repo.BrowseSkins(t.Context(), domain.SkinFilter{})

		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, []domain.Skin{redlineSkin(listedAt)}, skins)
	})

	t.Run("count error", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("SELECT COUNT").
			WillReturnError(assert.AnError)

		repo := NewSkinsRepository(mock)
		_, _, err = repo.BrowseSkins(t.Context(), domain.SkinFilter{})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestSkinsRepository_CountSellerSkins(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	defer mock.Close(t.Context())

	rows := pgxmock.NewRows([]string{"count"}).AddRow(7)
	mock.ExpectQuery("SELECT COUNT").
		WithArgs(2, domain.SkinStatusListed).
		WillReturnRows(rows)

	repo := NewSkinsRepository(mock)
	count, err := repo.CountSellerSkins(t.Context(), 2, domain.SkinStatusListed)

	assert.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestBuildSkinFilter(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		filter domain.SkinFilter

		expectedWhere string
		expectedArgs  []any
	}

	tests := []testCase{
		{
			name:          "no filters",
			filter:        domain.SkinFilter{},
			expectedWhere: "WHERE s.status = 'listed'",
			expectedArgs:  nil,
		},
		{
			name:          "search filter",
			filter:        domain.SkinFilter{Search: "AK"},
			expectedWhere: "WHERE s.status = 'listed' AND (s.name ILIKE $1 OR s.weapon ILIKE $1)",
			expectedArgs:  []any{"%AK%"},
		},
		{
			name: "categories and price range",
			filter: domain.SkinFilter{
				Categories: []string{"Rifle", "Pistol"},
				PriceMin:   decimal.RequireFromString("10"),
				PriceMax:   decimal.RequireFromString("100"),
			},
			expectedWhere: "WHERE s.status = 'listed' AND s.category = ANY($1) AND s.price >= $2::NUMERIC AND s.price <= $3::NUMERIC",
			expectedArgs:  []any{[]string{"Rifle", "Pistol"}, "10.00", "100.00"},
		},
		{
			name:          "stattrak only",
			filter:        domain.SkinFilter{StatTrak: true},
			expectedWhere: "WHERE s.status = 'listed' AND s.stattrak = TRUE",
			expectedArgs:  nil,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			where, args := buildSkinFilter(tt.filter)

			assert.Equal(t, tt.expectedWhere, where)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestOrderClause(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ORDER BY s.price ASC", orderClause(domain.SkinSortPriceAsc))
	assert.Equal(t, " ORDER BY s.price DESC", orderClause(domain.SkinSortPriceDesc))
	assert.Equal(t, " ORDER BY s.float_value ASC", orderClause(domain.SkinSortFloatAsc))
	assert.Equal(t, " ORDER BY s.float_value DESC", orderClause(domain.SkinSortFloatDesc))
	assert.Equal(t, " ORDER BY s.listed_at DESC", orderClause(domain.SkinSortNewest))
	assert.Equal(t, " ORDER BY s.listed_at DESC", orderClause(""))
}
