package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/csemotors/dealership/internal/api"
	"github.com/csemotors/dealership/internal/infrastructure/config"
	"github.com/csemotors/dealership/internal/infrastructure/db/postgres"
	redisdb "github.com/csemotors/dealership/internal/infrastructure/db/redis"
	"github.com/csemotors/dealership/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// serverCmd represents the server command.
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the dealership HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, err := config.Load(ctx)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger.Init(logger.Options{
			Level:  cfg.LogLevel,
			Pretty: cfg.IsDevelopment(),
		})
		log := logger.Get()

		db, err := postgres.Connect(ctx, postgresConfig(cfg))
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer func() {
			_ = db.Close()
		}()

		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer func() {
			_ = rdb.Close()
		}()

		e, err := api.NewRouter(db, rdb, cfg, log)
		if err != nil {
			return fmt.Errorf("build router: %w", err)
		}

		errCh := make(chan error, 1)
		go func() {
			addr := ":" + cfg.Port
			log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return fmt.Errorf("server error: %w", err)
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

// postgresConfig maps the environment config onto the connector's.
func postgresConfig(cfg *config.Config) postgres.Config {
	return postgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		Database: cfg.Postgres.Database,
		UseSSL:   cfg.Postgres.UseSSL,
	}
}
