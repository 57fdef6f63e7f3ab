package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/vyron-fashion/storefront/internal/catalog"
	"github.com/vyron-fashion/storefront/internal/config"
	"github.com/vyron-fashion/storefront/internal/database"
	"github.com/vyron-fashion/storefront/internal/handlers"
	"github.com/vyron-fashion/storefront/internal/messaging"
	"github.com/vyron-fashion/storefront/internal/middleware"
	"github.com/vyron-fashion/storefront/internal/recommender"
	"github.com/vyron-fashion/storefront/internal/scheduler"
)

type App struct {
	config    *config.Config
	logger    *logrus.Logger
	db        *database.Database
	engine    *recommender.Engine
	consumer  *messaging.CatalogEventConsumer
	scheduler *scheduler.RebuildScheduler
	handlers  *handlers.Handlers
	router    *gin.Engine
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	db, err := database.New(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	store := catalog.NewStore(db.PG, app.logger)
	app.engine = recommender.NewEngine(store, &cfg.Recommender, app.logger)
	app.consumer = messaging.NewCatalogEventConsumer(cfg, app.engine, app.logger)
	app.scheduler = scheduler.New(app.engine, cfg.Recommender.RebuildInterval, app.logger)
	app.handlers = handlers.New(app.logger, app.engine, db)

	app.setupRouter()

	return app, nil
}

// Start launches the background collaborators: the scheduler performs the
// initial fit and later rebuilds, the consumer turns catalog events into
// staleness signals.
func (a *App) Start(ctx context.Context) {
	go a.scheduler.Run(ctx)
	go a.consumer.Run(ctx)
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.consumer.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing catalog event consumer")
	}

	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing database connections")
		return err
	}

	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter() {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	// Health and metrics (no rate limiting)
	router.GET("/health", a.handlers.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		// Storefront routes
		public := api.Group("")
		public.Use(middleware.RateLimit(a.db.Redis, &a.config.RateLimit, a.logger))
		{
			public.GET("/products/:productId/recommendations", a.handlers.Recommendation.GetSimilar)
			public.POST("/recommendations/search", a.handlers.Recommendation.SearchSimilar)
		}

		// Admin routes (auth is terminated by the gateway in front)
		admin := api.Group("/admin")
		{
			admin.POST("/recommendations/rebuild", a.handlers.Recommendation.Rebuild)
			admin.GET("/recommendations/stats", a.handlers.Recommendation.Stats)
		}
	}

	a.router = router
}
