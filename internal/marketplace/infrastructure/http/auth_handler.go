package http

import (
	"net/http"
	"time"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/application"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/domain"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/identity"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/jwt"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const sessionLifetime = 24 * time.Hour

type AuthHandler struct {
	provider        identity.Provider
	usersRepository domain.UsersRepository
	profileCase     *application.ProfileCase
	tokenIssuer     jwt.TokenIssuer

	secretKey   string
	backendUrl  string
	frontendUrl string

	logger logging.Logger
}

func NewAuthHandler(
	provider identity.Provider,
	usersRepository domain.UsersRepository,
	profileCase *application.ProfileCase,
	tokenIssuer jwt.TokenIssuer,
	secretKey, backendUrl, frontendUrl string,
	logger logging.Logger,
) *AuthHandler {
	return &AuthHandler{
		provider:        provider,
		usersRepository: usersRepository,
		profileCase:     profileCase,
		tokenIssuer:     tokenIssuer,
		secretKey:       secretKey,
		backendUrl:      backendUrl,
		frontendUrl:     frontendUrl,
		logger:          logger,
	}
}

func (h *AuthHandler) SteamLogin(c *gin.Context) {
	returnTo := h.backendUrl + "/api/auth/steam/return"
	c.Redirect(http.StatusFound, h.provider.AuthURL(returnTo))
}

func (h *AuthHandler) SteamReturn(c *gin.Context) {
	resolved, err := h.provider.ResolveIdentity(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.logger.Error("failed to resolve steam identity", "error", err)
		c.Redirect(http.StatusFound, h.frontendUrl)
		return
	}

	user, err := h.usersRepository.UpsertSteamUser(c.Request.Context(), resolved)
	if err != nil {
		h.logger.Error("failed to upsert user", "error", err)
		c.Redirect(http.StatusFound, h.frontendUrl)
		return
	}

	token, err := h.tokenIssuer.IssueToken([]byte(h.secretKey), user.Id, user.SteamId, sessionLifetime)
	if err != nil {
		h.logger.Error("failed to issue session token", "error", err)
		c.Redirect(http.StatusFound, h.frontendUrl)
		return
	}

	c.SetCookie(sessionCookieName, token, int(sessionLifetime.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, h.frontendUrl)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usersRepository.GetUser(c.Request.Context(), currentUserId(c))
	if err != nil {
		h.logger.Error("failed to get current user", "error", err)
		handleDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
