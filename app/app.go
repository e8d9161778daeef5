package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"void-apparel/app/controller"
	"void-apparel/app/middleware"
	"void-apparel/app/router"
	"void-apparel/config"
	"void-apparel/db"
	"void-apparel/metrics"
	"void-apparel/repository"
	"void-apparel/service"
	"void-apparel/store"
)

// App is the wired storefront backend
type App struct {
	Handler http.Handler
	db      *sql.DB
	cron    *cron.Cron
}

const (
	housekeepingSchedule = "@every 10m"
	limiterIdleTTL       = 30 * time.Minute
)

// Initialize wires repositories, services and controllers from cfg
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{}

	// Orders go to Postgres when configured, otherwise they live in memory
	var orderRepo repository.OrderRepositoryInterface
	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.db = conn

		pgRepo := repository.NewPostgresOrderRepository(conn)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		orderRepo = pgRepo
	} else {
		log.Printf("⚠️  No database configured, orders are kept in memory")
		orderRepo = repository.NewMemoryOrderRepository()
	}

	// Drive-hosted preset artwork is optional
	var driveService service.DriveServiceInterface
	if cfg.GoogleCredentialsPath != "" && cfg.GraphicsDriveFolderID != "" {
		ds, err := service.NewDriveService(ctx, cfg.GoogleCredentialsPath)
		if err != nil {
			a.Close()
			return nil, err
		}
		driveService = ds
	} else if cfg.GraphicsDriveFolderID != "" {
		log.Printf("⚠️  GRAPHICS_DRIVE_FOLDER_ID is set but GOOGLE_APPLICATION_CREDENTIALS is not, using built-in presets only")
	}

	var generator service.ImageGeneratorInterface
	if cfg.PreviewConfigured() {
		generator = service.NewOpenAIImageClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAITimeout)
	} else {
		log.Printf("⚠️  OPENAI_API_KEY is not set, preview generation is disabled")
	}

	library := service.NewGraphicLibraryService(driveService, cfg.GraphicsDriveFolderID)
	studioService := service.NewStudioService(library)
	checkoutService := service.NewCheckoutService(orderRepo)
	previewService := service.NewPreviewService(generator)
	registry := store.NewRegistry()
	sessions := controller.NewSessionResolver(registry, cfg.IsProduction())

	var previewLimiter *middleware.RateLimiter
	if cfg.PreviewRatePerMinute > 0 {
		previewLimiter = middleware.NewRateLimiter(cfg.PreviewRatePerMinute, cfg.PreviewRateBurst, sessions.KnownSessionID)
	}

	controllers := &router.Controllers{
		Preview: controller.NewPreviewController(previewService, sessions),
		Catalog: controller.NewCatalogController(service.NewCatalogService(), studioService),
		Graphic: controller.NewGraphicController(service.NewGraphicUploadService(), studioService, sessions, cfg.UploadMaxBytes),
		Session: controller.NewSessionController(studioService, sessions),
		Cart:    controller.NewCartController(studioService, checkoutService, sessions),
		Order:   controller.NewOrderController(checkoutService, sessions),

		PreviewLimiter: previewLimiter,
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)
	a.Handler = metrics.InstrumentHandler(mux)

	// Idle sessions and rate-limit buckets are dropped periodically
	a.cron = cron.New()
	if _, err := a.cron.AddFunc(housekeepingSchedule, func() {
		evicted := registry.EvictIdle(cfg.SessionIdleTTL)
		cleaned := previewLimiter.Cleanup(limiterIdleTTL)
		log.Printf("🧹 Housekeeping: evicted %d idle sessions, %d live, %d limiter buckets dropped", evicted, registry.Len(), cleaned)
	}); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to schedule housekeeping: %w", err)
	}
	a.cron.Start()

	return a, nil
}

// Close stops background jobs and releases the database connection, if any
func (a *App) Close() {
	if a.cron != nil {
		<-a.cron.Stop().Done()
	}
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		log.Printf("❌ Error closing database: %v", err)
		return
	}
	log.Printf("✓ Database connection closed")
}
