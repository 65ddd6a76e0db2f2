package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app"
	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/app/auth"
	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/app/database"
	apiDoc "github.com/joefazee/atlas/app/doc"
	"github.com/joefazee/atlas/app/favorites"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/deps"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/router"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/security"

	_ "github.com/joefazee/atlas/docs"
)

// @title Atlas API
// @version 1.0
// @description Country directory with search, region filters, detail pages and per-user favorites.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	log := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{"service": "atlas"})

	if err := run(context.Background(), log); err != nil {
		log.Fatal(err, nil)
	}
}

func run(ctx context.Context, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	if cfg.DB.AutoMigrate {
		if err := database.Migrate(&cfg.DB); err != nil {
			return err
		}
	}
	db, err := database.New(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.Auth.SymmetricKey)
	if err != nil {
		return fmt.Errorf("create token maker: %w", err)
	}

	sessionCache, err := cache.New[string](cfg.Cache)
	if err != nil {
		return err
	}
	if rc, ok := sessionCache.(*cache.RedisCache[string]); ok {
		defer rc.Close()
		if err := rc.Ping(ctx); err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
	}

	container := deps.NewContainer(db, tokenMaker, sanitizer.NewHTMLStripper(), log, sessionCache)

	views := countries.InitServices(container, cfg.Countries)
	defer views.Stop()
	auth.InitServices(container, cfg.Auth)
	favorites.InitServices(container)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), api.CorsMiddleware(), api.RequestLogger(log))

	mounter := router.NewMounter(container)
	mounter.Public(r).
		GET("/healthz", api.HealthCheck(cfg.Env)).
		Mount(countries.MountPublic, auth.MountPublic)
	mounter.Authenticated(r, auth.MiddlewareFrom(container)).Mount(
		auth.MountAuthenticated,
		favorites.MountAuthenticated,
	)
	apiDoc.Init(r, cfg.Env)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("starting atlas api", map[string]interface{}{"addr": server.Addr, "env": cfg.Env})
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received", nil)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Info("server stopped", nil)
	return nil
}
