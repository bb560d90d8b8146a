// Package app wires the stores, use cases and HTTP server together and runs them.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
	"github.com/vadimbarashkov/tinyapp/internal/adapter/repository/memory"
	"github.com/vadimbarashkov/tinyapp/internal/config"
	"github.com/vadimbarashkov/tinyapp/internal/session"
	"github.com/vadimbarashkov/tinyapp/internal/usecase"
	"github.com/vadimbarashkov/tinyapp/pkg/identifier"
	"github.com/vadimbarashkov/tinyapp/pkg/password"
	"golang.org/x/sync/errgroup"

	delivery "github.com/vadimbarashkov/tinyapp/internal/adapter/delivery/http"
)

const shutdownTimeout = 10 * time.Second

func Run(ctx context.Context, cfg *config.Config) error {
	const op = "app.Run"

	logger := NewLogger(cfg)

	ids := identifier.New()
	userRepo := memory.NewUserRepository()
	urlUseCase := usecase.NewURLUseCase(memory.NewURLRepository(), userRepo, ids)
	userUseCase := usecase.NewUserUseCase(
		userRepo,
		ids,
		password.New(password.WithCost(cfg.Password.Cost)),
	)

	sessions := session.NewManager(
		cfg.Session.Secret,
		session.WithCookieName(cfg.Session.CookieName),
		session.WithTTL(cfg.Session.TTL),
		session.WithSecure(cfg.Session.Secure),
	)

	server := &http.Server{
		Addr:           cfg.HTTPServer.Addr(),
		Handler:        delivery.NewRouter(logger, sessions, urlUseCase, userUseCase),
		ReadTimeout:    cfg.HTTPServer.ReadTimeout,
		WriteTimeout:   cfg.HTTPServer.WriteTimeout,
		IdleTimeout:    cfg.HTTPServer.IdleTimeout,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", slog.String("addr", server.Addr), slog.String("env", cfg.Env))

		var err error

		switch cfg.Env {
		case config.EnvProd:
			err = server.ListenAndServeTLS(cfg.HTTPServer.CertFile, cfg.HTTPServer.KeyFile)
		default:
			err = server.ListenAndServe()
		}

		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("%s: server error occurred: %w", op, err)
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: failed to shutdown server: %w", op, err)
		}

		return nil
	})

	return g.Wait()
}

// NewLogger builds the request logger: human readable in dev, JSON elsewhere.
func NewLogger(cfg *config.Config) *httplog.Logger {
	opts := httplog.Options{
		LogLevel:        slog.LevelDebug,
		Concise:         true,
		RequestHeaders:  false,
		Tags:            map[string]string{"env": cfg.Env},
		QuietDownRoutes: []string{"/api/v1/ping"},
		QuietDownPeriod: 10 * time.Second,
	}

	if cfg.Env != config.EnvDev {
		opts.LogLevel = slog.LevelInfo
		opts.JSON = true
		opts.Concise = false
	}

	return httplog.NewLogger("tinyapp", opts)
}
