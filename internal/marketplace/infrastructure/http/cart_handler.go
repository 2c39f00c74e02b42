package http

import (
	"net/http"
	"strconv"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/application"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type addToCartRequestBody struct {
	SkinId int `json:"skinId" binding:"required"`
}

type CartHandler struct {
	cartCase *application.CartCase
	logger   logging.Logger
}

func NewCartHandler(cartCase *application.CartCase, logger logging.Logger) *CartHandler {
	return &CartHandler{
		cartCase: cartCase,
		logger:   logger,
	}
}

func (h *CartHandler) List(c *gin.Context) {
	items, err := h.cartCase.ListCart(c.Request.Context(), currentUserId(c))
	if err != nil {
		h.logger.Error("failed to list cart", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCartResponse(items))
}

func (h *CartHandler) Add(c *gin.Context) {
	var body addToCartRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skinId is required"})
		return
	}

	err := h.cartCase.AddToCart(c.Request.Context(), currentUserId(c), body.SkinId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *CartHandler) Remove(c *gin.Context) {
	skinId, err := strconv.Atoi(c.Param(SkinIdKey))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skin id"})
		return
	}

	err = h.cartCase.RemoveFromCart(c.Request.Context(), currentUserId(c), skinId)
	if err != nil {
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *CartHandler) Clear(c *gin.Context) {
	err := h.cartCase.ClearCart(c.Request.Context(), currentUserId(c))
	if err != nil {
		h.logger.Error("failed to clear cart", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
