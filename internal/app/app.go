// Package app wires configuration, storage, services, and transport
// together and runs the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/finchat/finchat-backend/internal/adapter/ai"
	"github.com/finchat/finchat-backend/internal/adapter/postgres"
	expenserepo "github.com/finchat/finchat-backend/internal/adapter/postgres/expense"
	tokenrepo "github.com/finchat/finchat-backend/internal/adapter/postgres/token"
	userrepo "github.com/finchat/finchat-backend/internal/adapter/postgres/user"
	jwtauth "github.com/finchat/finchat-backend/internal/auth"
	"github.com/finchat/finchat-backend/internal/config"
	authservice "github.com/finchat/finchat-backend/internal/service/auth"
	"github.com/finchat/finchat-backend/internal/service/chat"
	"github.com/finchat/finchat-backend/internal/service/expense"
	"github.com/finchat/finchat-backend/internal/service/report"
	"github.com/finchat/finchat-backend/internal/transport/middleware"
	"github.com/finchat/finchat-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, wires services and transport, and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	expenses := expenserepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	txManager := postgres.NewTxManager(pool)

	authSvc := authservice.NewService(logger, users, tokens, txManager, jwtManager, cfg.Auth)
	expenseSvc := expense.NewService(logger, expenses, cfg.Chat)
	reportSvc := report.NewService(logger, expenseSvc)

	aiClient := ai.New(cfg.AI)
	parser := chat.NewParser(logger, aiClient)
	responder := chat.NewResponder(logger, aiClient, cfg.Chat.RecentInContext)
	chatSvc := chat.NewService(logger, parser, responder, expenseSvc)

	authHandler := rest.NewAuthHandler(authSvc, logger)
	chatHandler := rest.NewChatHandler(chatSvc, logger)
	expenseHandler := rest.NewExpenseHandler(expenseSvc, reportSvc, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	router := rest.NewRouter(authHandler, chatHandler, expenseHandler, healthHandler)

	limiter := middleware.NewRateLimiter(10 * time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authSvc),
	)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
