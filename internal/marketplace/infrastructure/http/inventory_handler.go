package http

import (
	"errors"
	"net/http"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/identity"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryClient identity.InventoryClient
	usersRepository domain.UsersRepository
	logger          logging.Logger
}

func NewInventoryHandler(
	inventoryClient identity.InventoryClient,
	usersRepository domain.UsersRepository,
	logger logging.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		inventoryClient: inventoryClient,
		usersRepository: usersRepository,
		logger:          logger,
	}
}

func (h *InventoryHandler) List(c *gin.Context) {
	user, err := h.usersRepository.GetUser(c.Request.Context(), currentUserId(c))
	if err != nil {
		handleDomainError(c, err)
		return
	}

	items, err := h.inventoryClient.FetchInventory(c.Request.Context(), user.SteamId)
	if err != nil {
		if errors.Is(err, identity.ErrInventoryPrivate) {
			c.JSON(http.StatusForbidden, gin.H{"error": "steam inventory is private"})
			return
		}

		h.logger.Error("failed to fetch steam inventory", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch steam inventory"})
		return
	}

	c.JSON(http.StatusOK, items)
}
