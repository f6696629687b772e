// @title        Todo Service
// @version      1.0
// @description  Multi-tenant to-do list with a separate administrator login.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/todo-service/internal/api"
	"github.com/99minutos/todo-service/internal/api/handler"
	"github.com/99minutos/todo-service/internal/core/service"
	mongodb "github.com/99minutos/todo-service/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/todo-service/internal/infrastructure/db/redis"
	"github.com/99minutos/todo-service/internal/pkg/config"
	"github.com/99minutos/todo-service/internal/session"
	"github.com/99minutos/todo-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "todo-service",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	users := mongodb.NewUserRepository(db)
	todos := mongodb.NewTodoRepository(db)
	if err := mongodb.EnsureIndexes(ctx, users, todos); err != nil {
		return err
	}
	checks := []handler.DependencyCheck{handler.MongoCheck(db)}

	// --- Session store ---
	var store session.Store
	switch cfg.Session.Store {
	case config.SessionStoreRedis:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		store = redisdb.NewSessionStore(rdb)
		checks = append(checks, handler.RedisCheck(rdb))
	default:
		store = session.NewMemoryStore()
	}
	sessions := session.NewManager(store, session.Options{
		Secret: cfg.Session.Secret,
		TTL:    cfg.Session.TTL,
		Secure: !cfg.IsDevelopment(),
	})

	// --- Services ---
	tokens := service.NewJWTAdminTokens(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	verifier := service.StaticAdminVerifier{Username: cfg.Admin.Username, Password: cfg.Admin.Password}

	e := api.NewRouter(api.Deps{
		Auth:     service.NewAuthService(users, verifier, tokens, logger.Component("auth")),
		Todos:    service.NewTodoService(users, todos, logger.Component("todos")),
		Admin:    service.NewAdminService(users, todos, logger.Component("admin")),
		Tokens:   tokens,
		Sessions: sessions,
		Checks:   checks,
		Log:      logger.Component("http"),
	})

	addr := net.JoinHostPort("", cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Str("session_store", cfg.Session.Store).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
