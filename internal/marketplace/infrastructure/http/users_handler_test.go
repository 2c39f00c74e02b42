package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	logmocks "github.com/Kuzo404/cs-skins-backend/gen/mocks/logging"
	mocks "github.com/Kuzo404/cs-skins-backend/gen/mocks/marketplace"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/application"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newUsersHandlerDeps(t *testing.T, ctrl *gomock.Controller) (
	*mocks.MockSettler, *mocks.MockWallet, *UsersHandler,
) {
	t.Helper()

	logger := logmocks.NewMockLogger(ctrl)
	logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	settler := mocks.NewMockSettler(ctrl)
	wallet := mocks.NewMockWallet(ctrl)

	handler := NewUsersHandler(
		application.NewProfileCase(
			mocks.NewMockUsersRepository(ctrl),
			mocks.NewMockSellerSkinsCounter(ctrl),
			mocks.NewMockTransactionsRepository(ctrl),
			logger,
		),
		application.NewListingCase(mocks.NewMockSkinsRepository(ctrl)),
		application.NewCheckoutCase(settler),
		application.NewWalletCase(wallet),
		logger,
	)

	return settler, wallet, handler
}

func TestUsersHandler_Purchase(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userId int

		prepareFn func(t *testing.T, settler *mocks.MockSettler)

		expectedStatus  int
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:   "successful purchase",
			userId: 1,
			prepareFn: func(t *testing.T, settler *mocks.MockSettler) {
				settler.EXPECT().SettleCart(gomock.Any(), 1).
					Return(domain.SettlementResult{
						Total:     decimal.RequireFromString("80.00"),
						ItemCount: 2,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var body struct {
					Success   bool   `json:"success"`
					Total     string `json:"total"`
					ItemCount int    `json:"itemCount"`
				}
				assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.True(t, body.Success)
				assert.Equal(t, "80.00", body.Total)
				assert.Equal(t, 2, body.ItemCount)
			},
		},
		{
			name:   "empty cart",
			userId: 1,
			prepareFn: func(t *testing.T, settler *mocks.MockSettler) {
				settler.EXPECT().SettleCart(gomock.Any(), 1).
					Return(domain.SettlementResult{}, &domain.EmptyCartError{})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "items unavailable",
			userId: 1,
			prepareFn: func(t *testing.T, settler *mocks.MockSettler) {
				settler.EXPECT().SettleCart(gomock.Any(), 1).
					Return(domain.SettlementResult{}, &domain.ItemsUnavailableError{Names: []string{"AK-47 | Redline"}})
			},
			expectedStatus: http.StatusBadRequest,
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var body struct {
					Unavailable []string `json:"unavailable"`
				}
				assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				assert.Equal(t, []string{"AK-47 | Redline"}, body.Unavailable)
			},
		},
		{
			name:   "insufficient balance",
			userId: 1,
			prepareFn: func(t *testing.T, settler *mocks.MockSettler) {
				settler.EXPECT().SettleCart(gomock.Any(), 1).
					Return(domain.SettlementResult{}, &domain.InsufficientBalanceError{})
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "internal error",
			userId: 1,
			prepareFn: func(t *testing.T, settler *mocks.MockSettler) {
				settler.EXPECT().SettleCart(gomock.Any(), 1).
					Return(domain.SettlementResult{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			settler, _, handler := newUsersHandlerDeps(t, ctrl)
			tt.prepareFn(t, settler)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/users/purchase", nil)
			c.Set(userIdContextKey, tt.userId)

			handler.Purchase(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestUsersHandler_Deposit(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userId int
		body   string

		prepareFn func(t *testing.T, wallet *mocks.MockWallet)

		expectedStatus  int
		expectedBalance string
	}

	tests := []testCase{
		{
			name:   "successful deposit",
			userId: 1,
			body:   `{"amount": "25.00"}`,
			prepareFn: func(t *testing.T, wallet *mocks.MockWallet) {
				wallet.EXPECT().Deposit(gomock.Any(), 1, decimal.RequireFromString("25.00")).
					Return(decimal.RequireFromString("125.00"), nil)
			},
			expectedStatus:  http.StatusOK,
			expectedBalance: "125.00",
		},
		{
			name:           "missing amount",
			userId:         1,
			body:           `{}`,
			prepareFn:      func(t *testing.T, wallet *mocks.MockWallet) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed amount",
			userId:         1,
			body:           `{"amount": "abc"}`,
			prepareFn:      func(t *testing.T, wallet *mocks.MockWallet) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "negative amount rejected downstream",
			userId: 1,
			body:   `{"amount": "-5.00"}`,
			prepareFn: func(t *testing.T, wallet *mocks.MockWallet) {
				wallet.EXPECT().Deposit(gomock.Any(), 1, decimal.RequireFromString("-5.00")).
					Return(decimal.Zero, &domain.InvalidArgumentsError{Msg: "amount must be positive"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			_, wallet, handler := newUsersHandlerDeps(t, ctrl)
			tt.prepareFn(t, wallet)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/users/deposit", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")
			c.Set(userIdContextKey, tt.userId)

			handler.Deposit(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.expectedBalance != "" {
				var body struct {
					Balance string `json:"balance"`
				}
				assert.NoError(t, json.Unmarshal(writer.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedBalance, body.Balance)
			}
		})
	}
}
