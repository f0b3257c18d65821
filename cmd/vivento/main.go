package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/internal/app"
)

//	@title			Vivento API
//	@version		1.0
//	@description	Digital invitations: accounts, templates, events, guests, balance and payments.

// @host						localhost:8080
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		log.Error().Err(err).Msg("vivento failed to start")
		zap.L().Fatal("vivento failed to start", zap.Error(err))
	}

	if err := application.Wait(ctx, stop); err != nil {
		zap.L().Fatal("vivento stopped with errors", zap.Error(err))
	}

	zap.L().Info("vivento stopped")
	_ = zap.L().Sync()
}
