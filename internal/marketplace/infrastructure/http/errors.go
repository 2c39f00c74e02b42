package http

import (
	"errors"
	"net/http"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/gin-gonic/gin"
)

func handleDomainError(c *gin.Context, err error) {
	var unavailable *domain.ItemsUnavailableError
	if errors.As(err, &unavailable) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       unavailable.Error(),
			"unavailable": unavailable.Names,
		})
		return
	}

	switch {
	case errors.Is(err, &domain.SkinNotFoundError{}),
		errors.Is(err, &domain.UserNotFoundError{}),
		errors.Is(err, &domain.CartItemNotFoundError{}):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, &domain.AlreadyInCartError{}):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, &domain.EmptyCartError{}),
		errors.Is(err, &domain.InsufficientBalanceError{}),
		errors.Is(err, &domain.SelfPurchaseError{}),
		errors.Is(err, &domain.InvalidArgumentsError{}):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
