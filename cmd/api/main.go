package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"challenge-admin/config"
	_ "challenge-admin/docs" // Swagger docs
	"challenge-admin/internal/httpserver"
	"challenge-admin/pkg/encrypter"
	"challenge-admin/pkg/i18n"
	"challenge-admin/pkg/log"
	"challenge-admin/pkg/scope"
	"challenge-admin/pkg/sqlite"
)

// @title       Challenge Admin API
// @description Challenge management backend. Every error is answered with {success, message, errorCode, details, timestamp}.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Challenge Admin API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Server exited with error: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Storage
	if cfg.SQLite.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.SQLite.Path), 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sqlite.Open(ctx, cfg.SQLite.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := httpserver.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	// 4. Auth infrastructure
	jwtManager, err := scope.New(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	if err != nil {
		return err
	}

	locale, ok := i18n.ParseTag(cfg.I18n.DefaultLocale)
	if !ok {
		logger.Warnf(ctx, "Unsupported i18n.default_locale %q, falling back to %s", cfg.I18n.DefaultLocale, i18n.Korean)
		locale = i18n.Korean
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:                 cfg.HTTPServer.Port,
		Mode:                 cfg.HTTPServer.Mode,
		Environment:          cfg.Environment.Name,
		ShutdownTimeout:      cfg.HTTPServer.ShutdownTimeout,
		DB:                   db,
		JWTManager:           jwtManager,
		Encrypter:            encrypter.New(cfg.Auth.BcryptCost),
		DefaultLocale:        locale,
		LoginRateLimitPerMin: cfg.Auth.LoginRateLimitPerMin,
		SecureCookie:         cfg.HTTPServer.SecureCookie,
		TrustedProxies:       cfg.HTTPServer.TrustedProxies,
		Admin: httpserver.AdminAccount{
			Username: cfg.Admin.Username,
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		},
	})
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	// 6. Run until SIGINT/SIGTERM
	return httpServer.Run(ctx)
}
