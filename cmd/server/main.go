package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appbilling "github.com/innovation-consortium/billing-backend/internal/application/billing"
	"github.com/innovation-consortium/billing-backend/internal/domain/billing"
	"github.com/innovation-consortium/billing-backend/internal/infrastructure/config"
	"github.com/innovation-consortium/billing-backend/internal/infrastructure/logger"
	"github.com/innovation-consortium/billing-backend/internal/infrastructure/persistence"
	"github.com/innovation-consortium/billing-backend/internal/infrastructure/render"
	"github.com/innovation-consortium/billing-backend/internal/interfaces/http/handler"
	"github.com/innovation-consortium/billing-backend/internal/interfaces/http/middleware"
	"github.com/innovation-consortium/billing-backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Billing Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Record store
	repo, closeStore, err := buildRepository(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize record store", zap.Error(err))
	}
	defer closeStore()

	// Rendering pipeline
	assembler := render.NewAssembler(
		render.OrgIdentity{
			Name:     cfg.Render.OrgName,
			Tagline:  cfg.Render.OrgTagline,
			Location: cfg.Render.OrgLocation,
			Email:    cfg.Render.OrgEmail,
			Phone:    cfg.Render.OrgPhone,
		},
		render.NewDirAssetStore(cfg.Assets.Dir),
		render.NewAggregator(decimal.NewFromFloat(cfg.Render.VATRate)),
		cfg.Render.CurrencyUnit,
		cfg.Assets.Logo,
		cfg.Assets.Signature,
	)
	encoder := render.NewFpdfEncoder()

	// Document archive (optional)
	var archive render.DocumentArchive
	if cfg.Archive.Enabled {
		fsArchive, err := render.NewFileSystemArchive(&render.FileSystemArchiveConfig{
			BasePath:      cfg.Archive.BasePath,
			RetentionDays: cfg.Archive.RetentionDays,
			Logger:        log.Named("archive"),
		})
		if err != nil {
			log.Fatal("Failed to initialize document archive", zap.Error(err))
		}
		archive = fsArchive
		go runArchiveCleanup(ctx, fsArchive, cfg.Archive.RetentionDays, log)
	}

	service := appbilling.NewDocumentService(repo, assembler, encoder, archive, log.Named("documents"))

	// HTTP server
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsCfg.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsCfg.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(corsCfg),
		middleware.Secure(),
	)

	r := router.NewRouter(engine)
	r.Register(handler.DocumentRoutes(handler.NewDocumentHandler(service)))
	r.Setup()

	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	engine.GET("/healthz", healthHandler())

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// buildRepository constructs the configured record store and a close func
func buildRepository(ctx context.Context, cfg *config.Config, log *zap.Logger) (billing.RecordRepository, func(), error) {
	switch cfg.Store.Driver {
	case "firestore":
		fsCfg := persistence.FirestoreConfig{
			ProjectID:         cfg.Firestore.ProjectID,
			CredentialsFile:   cfg.Firestore.CredentialsFile,
			InvoiceCollection: cfg.Firestore.InvoiceCollection,
			SummaryCollection: cfg.Firestore.SummaryCollection,
		}
		client, err := persistence.NewFirestoreClient(ctx, fsCfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Firestore connected", zap.String("project", fsCfg.ProjectID))
		repo := persistence.NewFirestoreRecordRepository(client, fsCfg, log.Named("firestore"))
		return repo, func() { _ = client.Close() }, nil
	default:
		log.Warn("Using in-memory record store; records do not persist")
		return persistence.NewMemoryRecordRepository(), func() {}, nil
	}
}

// runArchiveCleanup sweeps the archive daily, dropping files past retention
func runArchiveCleanup(ctx context.Context, archive *render.FileSystemArchive, retentionDays int, log *zap.Logger) {
	if retentionDays <= 0 {
		return
	}
	age := time.Duration(retentionDays) * 24 * time.Hour

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := archive.CleanupOlderThan(ctx, age); err != nil {
				log.Warn("Archive cleanup failed", zap.Error(err))
			}
		}
	}
}

// healthHandler is intentionally minimal; the record store has no cheap
// ping and the render pipeline is stateless.
func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}
