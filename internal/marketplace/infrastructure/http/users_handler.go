package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/application"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type walletRequestBody struct {
	Amount string `json:"amount" binding:"required"`
}

type UsersHandler struct {
	profileCase  *application.ProfileCase
	listingCase  *application.ListingCase
	checkoutCase *application.CheckoutCase
	walletCase   *application.WalletCase
	logger       logging.Logger
}

func NewUsersHandler(
	profileCase *application.ProfileCase,
	listingCase *application.ListingCase,
	checkoutCase *application.CheckoutCase,
	walletCase *application.WalletCase,
	logger logging.Logger,
) *UsersHandler {
	return &UsersHandler{
		profileCase:  profileCase,
		listingCase:  listingCase,
		checkoutCase: checkoutCase,
		walletCase:   walletCase,
		logger:       logger,
	}
}

func (h *UsersHandler) Profile(c *gin.Context) {
	profile, err := h.profileCase.GetProfile(c.Request.Context(), currentUserId(c))
	if err != nil {
		h.logger.Error("failed to get profile", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse{
		userResponse:   toUserResponse(profile.User),
		ActiveListings: profile.ActiveListings,
		TotalSold:      profile.TotalSold,
	})
}

func (h *UsersHandler) Listings(c *gin.Context) {
	status := domain.SkinStatus(c.DefaultQuery("status", string(domain.SkinStatusListed)))

	skins, err := h.listingCase.ListUserListings(c.Request.Context(), currentUserId(c), status)
	if err != nil {
		h.logger.Error("failed to list user listings", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSkinResponses(skins))
}

func (h *UsersHandler) Transactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	transactions, err := h.profileCase.ListTransactions(c.Request.Context(), currentUserId(c), limit, offset)
	if err != nil {
		h.logger.Error("failed to list transactions", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toTransactionResponses(transactions))
}

func (h *UsersHandler) Purchase(c *gin.Context) {
	result, err := h.checkoutCase.Checkout(c.Request.Context(), currentUserId(c))
	if err != nil {
		h.logger.Error("failed to settle checkout", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"total":     result.Total.StringFixed(2),
		"itemCount": result.ItemCount,
	})
}

func (h *UsersHandler) Deposit(c *gin.Context) {
	h.applyWalletChange(c, h.walletCase.Deposit)
}

func (h *UsersHandler) Withdraw(c *gin.Context) {
	h.applyWalletChange(c, h.walletCase.Withdraw)
}

func (h *UsersHandler) applyWalletChange(
	c *gin.Context,
	changeFn func(ctx context.Context, userId int, amount decimal.Decimal) (decimal.Decimal, error),
) {
	var body walletRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount is required"})
		return
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	balance, err := changeFn(c.Request.Context(), currentUserId(c), amount)
	if err != nil {
		h.logger.Error("failed to apply wallet change", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"balance": balance.StringFixed(2),
	})
}
