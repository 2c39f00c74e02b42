package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kuzo404/cs-skins-backend/internal/marketplace/bootstrap"
	"github.com/Kuzo404/cs-skins-backend/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	cfg := bootstrap.LoadConfig()
	app := bootstrap.NewApp(cfg, logger)

	if err := app.Run(mainCtx); err != nil {
		logger.Error("server stopped with error", "error", err)
	}

	app.Shutdown()
}
