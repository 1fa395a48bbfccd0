package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/audit"
	"github.com/BruksfildServices01/salon-console/internal/backend"
	"github.com/BruksfildServices01/salon-console/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-console/internal/db"
	"github.com/BruksfildServices01/salon-console/internal/infra/redisstore"
	"github.com/BruksfildServices01/salon-console/internal/infra/repository"
	"github.com/BruksfildServices01/salon-console/internal/logger"
	"github.com/BruksfildServices01/salon-console/internal/media"
	"github.com/BruksfildServices01/salon-console/internal/remote"
	"github.com/BruksfildServices01/salon-console/internal/routes"
	"github.com/BruksfildServices01/salon-console/internal/state"
	"github.com/BruksfildServices01/salon-console/internal/timezone"
	"github.com/BruksfildServices01/salon-console/internal/workspace"
)

func main() {
	cfg := config.Load()

	zl, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.JWTSecret == "" {
		zl.Fatal("JWT_SECRET is required to verify session tokens")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !timezone.IsValid(cfg.SalonTimezone) {
		zl.Warn("unknown salon timezone, using default",
			zap.String("timezone", cfg.SalonTimezone),
			zap.String("default", timezone.DefaultTimezone),
		)
	}
	loc := timezone.Location(cfg.SalonTimezone)

	// --------------------------------------------------
	// Backend client
	// --------------------------------------------------
	client := remote.New(remote.Options{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.BackendTimeout,
		RPS:     cfg.BackendRPS,
	}, zl.Named("remote"))
	api := backend.New(client, zl.Named("backend"))

	deps := routes.Deps{
		Config:   cfg,
		Logger:   zl,
		API:      api,
		Registry: workspace.NewRegistry(api, timezone.SystemClock(loc), cfg.WorkspaceTTL, zl.Named("workspace")),
	}

	// --------------------------------------------------
	// Audit: postgres when configured, log-only otherwise
	// --------------------------------------------------
	var sink audit.Sink = audit.NewZapSink(zl.Named("audit"))
	if cfg.DatabaseURL != "" {
		db, err := dbpkg.NewDB(cfg.DatabaseURL, zl)
		if err != nil {
			zl.Fatal("database unavailable", zap.Error(err))
		}
		sink = audit.New(db)
		deps.AuditLogs = repository.NewAuditGormRepository(db)
	}
	dispatcher := audit.NewDispatcher(sink, zl.Named("audit"))
	deps.Auditor = dispatcher

	// --------------------------------------------------
	// Salons-with-orders: redis when configured
	// --------------------------------------------------
	deps.Accumulator = state.NewMemoryAccumulator()
	if cfg.RedisURL != "" {
		rdb, err := redisstore.Connect(ctx, cfg.RedisURL)
		if err != nil {
			zl.Fatal("redis unavailable", zap.Error(err))
		}
		defer rdb.Close()
		deps.Accumulator = redisstore.NewSalonSet(rdb)
	}

	// --------------------------------------------------
	// Gallery photos: presigned when a bucket is configured
	// --------------------------------------------------
	deps.Resolver = media.PassThrough{}
	if cfg.GalleryBucket != "" {
		presigner, err := media.NewPresigner(media.S3Options{
			Bucket:    cfg.GalleryBucket,
			Region:    cfg.AWSRegion,
			AccessKey: cfg.AWSAccessKey,
			SecretKey: cfg.AWSSecretKey,
			Endpoint:  cfg.S3Endpoint,
			TTL:       cfg.PresignTTL,
		}, zl.Named("media"))
		if err != nil {
			zl.Fatal("gallery bucket misconfigured", zap.Error(err))
		}
		deps.Resolver = presigner
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	go deps.Registry.Run(ctx, time.Minute)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("backend", cfg.BackendURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Warn("graceful shutdown failed", zap.Error(err))
	}
	dispatcher.Close()
}
