package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/GlebRadaev/vivento/migrations"
)

// RunMigrations applies pending embedded migrations through a goose provider bound to the pool.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, stdlib.OpenDBFromPool(pool), migrations.Migrations)
	if err != nil {
		return fmt.Errorf("failed to build migration provider: %w", err)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			zap.L().Warn("failed to close migration db", zap.Error(err))
		}
	}()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	for _, res := range results {
		zap.L().Info("migration applied",
			zap.Int64("version", res.Source.Version),
			zap.String("file", res.Source.Path),
			zap.Duration("took", res.Duration),
		)
	}
	return nil
}
