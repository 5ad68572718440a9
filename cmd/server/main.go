package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"branding-studio-service/internal/adapters/primary/http/handlers"
	"branding-studio-service/internal/adapters/primary/http/middleware"
	"branding-studio-service/internal/adapters/secondary/catalogfile"
	"branding-studio-service/internal/adapters/secondary/imagemeta"
	"branding-studio-service/internal/adapters/secondary/memory"
	"branding-studio-service/internal/adapters/secondary/postgres"
	"branding-studio-service/internal/adapters/secondary/rediscache"
	"branding-studio-service/internal/adapters/secondary/renderer"
	"branding-studio-service/internal/config"
	"branding-studio-service/internal/core/domain"
	output "branding-studio-service/internal/core/ports/output"
	"branding-studio-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx := context.Background()

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Catalog (file or postgres)
	var (
		catalogRepo output.CatalogRepository
		pool        *pgxpool.Pool
	)
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pool, err = newPool(ctx, &cfg.Database)
		if err != nil {
			log.Fatalf("create db pool: %v", err)
		}
		defer pool.Close()
		log.Info("database connection established")
		catalogRepo = postgres.NewCatalogRepository(pool)
	default:
		catalogRepo, err = catalogfile.Load(cfg.Catalog.File)
		if err != nil {
			log.Fatalf("load catalog: %v", err)
		}
		log.WithField("file", cfg.Catalog.File).Info("file catalog loaded")
	}

	// Image metadata (optional S3 source and redis cache)
	var loaderOpts []imagemeta.Option
	if cfg.S3.Enabled {
		client, err := imagemeta.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			log.Warnf("S3 client init failed (continuing without s3:// logos): %v", err)
		} else {
			loaderOpts = append(loaderOpts, imagemeta.WithObjectStore(client))
			log.Info("S3 image source initialized")
		}
	} else {
		log.Info("S3 image source disabled")
	}
	imageLoader := imagemeta.NewLoader(&cfg.Image, loaderOpts...)

	if cfg.Redis.Enabled {
		client, err := rediscache.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warnf("redis init failed (continuing without dimension cache): %v", err)
		} else {
			defer client.Close()
			imageLoader = rediscache.NewImageLoader(imageLoader, client, cfg.Redis.TTL)
			log.Info("image dimension cache initialized")
		}
	} else {
		log.Info("image dimension cache disabled")
	}

	mockupRenderer := renderer.NewRendererClient(&cfg.Renderer)
	workspaceRepo := memory.NewWorkspaceRepository()

	// Core Services (Application Layer)
	workspaceSvc := services.NewWorkspaceService(workspaceRepo, domain.Canvas{
		Width:  cfg.Canvas.Width,
		Height: cfg.Canvas.Height,
	})
	layoutSvc := services.NewLayoutService(workspaceRepo, catalogRepo, imageLoader)
	variantSvc := services.NewVariantService(workspaceRepo)
	mockupSvc := services.NewMockupService(workspaceRepo, mockupRenderer, cfg.Renderer.MaxConcurrency)
	catalogSvc := services.NewCatalogService(catalogRepo)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(workspaceSvc, layoutSvc, variantSvc, mockupSvc, catalogSvc)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	api := router.Group("/api/v1/branding")
	h.RegisterRoutes(api)

	router.GET("/healthz", func(c *gin.Context) {
		if pool != nil {
			if err := pool.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		workspaces, _ := workspaceRepo.Count(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"status": "ok", "workspaces": workspaces})
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func newPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
