package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/application"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/identity"
	httpwrap "github.com/Kuzo404/cs-skins-backend/internal/marketplace/infrastructure/http"
	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/infrastructure/postgres"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/database"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/jwt"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
	"github.com/Kuzo404/cs-skins-backend/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	shutdownTimeout   = 5 * time.Second
	httpClientTimeout = 10 * time.Second
)

type App struct {
	cfg    Config
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewApp(cfg Config, logger logging.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *App) Run(ctx context.Context) error {
	logger := a.logger
	dbURL := a.cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, migrations.FS, ".", "pgx", "postgres")
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	httpClient := &http.Client{Timeout: httpClientTimeout}

	steamProvider := identity.NewSteamProvider(httpClient, a.cfg.SteamApiKey)
	inventoryClient := identity.NewSteamInventoryClient(httpClient)

	skinsRepository := postgres.NewSkinsRepository(dbpool)
	cartRepository := postgres.NewCartRepository(dbpool)
	usersRepository := postgres.NewUsersRepository(dbpool)
	transactionsRepository := postgres.NewTransactionsRepository(dbpool)
	settlementEngine := postgres.NewSettlementEngine(dbpool, logger)
	wallet := postgres.NewWallet(database.NewDelegateTxManager(dbpool, logger))

	listingCase := application.NewListingCase(skinsRepository)
	cartCase := application.NewCartCase(skinsRepository, cartRepository)
	checkoutCase := application.NewCheckoutCase(settlementEngine)
	walletCase := application.NewWalletCase(wallet)
	profileCase := application.NewProfileCase(usersRepository, skinsRepository, transactionsRepository, logger)

	tokenIssuer := jwt.NewJWTTokenIssuer()
	tokenParser := jwt.NewJWTTokenParser()

	authHandler := httpwrap.NewAuthHandler(
		steamProvider, usersRepository, profileCase, tokenIssuer,
		a.cfg.JwtSecret, a.cfg.BackendUrl, a.cfg.FrontendUrl, logger,
	)
	skinsHandler := httpwrap.NewSkinsHandler(listingCase, logger)
	cartHandler := httpwrap.NewCartHandler(cartCase, logger)
	usersHandler := httpwrap.NewUsersHandler(profileCase, listingCase, checkoutCase, walletCase, logger)
	inventoryHandler := httpwrap.NewInventoryHandler(inventoryClient, usersRepository, logger)

	router := gin.Default()
	registerRoutes(router, a.cfg, tokenParser, logger,
		authHandler, skinsHandler, cartHandler, usersHandler, inventoryHandler)

	a.server = &http.Server{
		Addr:    a.cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", a.cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *App) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err)
	}

	a.dbpool.Close()
}

func registerRoutes(
	router *gin.Engine,
	cfg Config,
	tokenParser jwt.TokenParser,
	logger logging.Logger,
	authHandler *httpwrap.AuthHandler,
	skinsHandler *httpwrap.SkinsHandler,
	cartHandler *httpwrap.CartHandler,
	usersHandler *httpwrap.UsersHandler,
	inventoryHandler *httpwrap.InventoryHandler,
) {
	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
		})

		api.GET("/auth/steam", authHandler.SteamLogin)
		api.GET("/auth/steam/return", authHandler.SteamReturn)
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/skins", skinsHandler.Browse)
		api.GET("/skins/:"+httpwrap.SkinIdKey, skinsHandler.Get)

		authenticated := api.Group("/", httpwrap.NewAuthMiddleware(cfg.JwtSecret, tokenParser, logger))
		{
			authenticated.GET("/auth/me", authHandler.Me)

			authenticated.POST("/skins", skinsHandler.Create)
			authenticated.DELETE("/skins/:"+httpwrap.SkinIdKey, skinsHandler.Cancel)

			authenticated.GET("/cart", cartHandler.List)
			authenticated.POST("/cart", cartHandler.Add)
			authenticated.DELETE("/cart", cartHandler.Clear)
			authenticated.DELETE("/cart/:"+httpwrap.SkinIdKey, cartHandler.Remove)

			authenticated.GET("/users/profile", usersHandler.Profile)
			authenticated.GET("/users/listings", usersHandler.Listings)
			authenticated.GET("/users/transactions", usersHandler.Transactions)
			authenticated.POST("/users/purchase", usersHandler.Purchase)
			authenticated.POST("/users/deposit", usersHandler.Deposit)
			authenticated.POST("/users/withdraw", usersHandler.Withdraw)

			authenticated.GET("/inventory", inventoryHandler.List)
		}
	}
}
