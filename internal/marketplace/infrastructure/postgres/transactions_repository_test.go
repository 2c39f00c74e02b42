package postgres

import (
	"testing"
	"time"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionsRepository_ListUserTransactions(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2025, 6, 2, 15, 0, 0, 0, time.UTC)

	transactionColumns := []string{
		"id", "user_id", "type", "amount", "description",
		"skin_id", "name", "status", "created_at",
	}

	type testCase struct {
		name   string
		userId int
		limit  int
		offset int

		expectedRes []domain.Transaction
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:   "purchase and deposit history",
			userId: 1,
			limit:  20,
			offset: 0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows(transactionColumns).
					AddRow(
						7, 1, domain.TransactionTypePurchase, "30.00", "Purchased AK-47 | Redline",
						10, "AK-47 | Redline", domain.TransactionStatusCompleted, createdAt,
					).
					AddRow(
						6, 1, domain.TransactionTypeDeposit, "100.00", "Deposited 100.00",
						0, "", domain.TransactionStatusCompleted, createdAt.Add(-time.Hour),
					)
				mock.ExpectQuery("SELECT").
					WithArgs(1, 20, 0).
					WillReturnRows(rows)
			},
			expectedRes: []domain.Transaction{
				{
					Id:          7,
					UserId:      1,
					Type:        domain.TransactionTypePurchase,
					Amount:      decimal.RequireFromString("30.00"),
					Description: "Purchased AK-47 | Redline",
					SkinId:      10,
					SkinName:    "AK-47 | Redline",
					Status:      domain.TransactionStatusCompleted,
					CreatedAt:   createdAt,
				},
				{
					Id:          6,
					UserId:      1,
					Type:        domain.TransactionTypeDeposit,
					Amount:      decimal.RequireFromString("100.00"),
					Description: "Deposited 100.00",
					Status:      domain.TransactionStatusCompleted,
					CreatedAt:   createdAt.Add(-time.Hour),
				},
			},
			expectedErr: nil,
		},
		{
			name:   "default limit applied",
			userId: 1,
			limit:  0,
			offset: 0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(1, 50, 0).
					WillReturnRows(pgxmock.NewRows(transactionColumns))
			},
			expectedRes: nil,
			expectedErr: nil,
		},
		{
			name:   "database error",
			userId: 1,
			limit:  20,
			offset: 0,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs(1, 20, 0).
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

			repo := NewTransactionsRepository(mock)
			res, err := repo.ListUserTransactions(t.Context(), tt.userId, tt.limit, tt.offset)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, res)
			}
		})
	}
}
