package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pricesnap/pricesnap-api/internal/cache"
	"github.com/pricesnap/pricesnap-api/internal/catalog"
	"github.com/pricesnap/pricesnap-api/internal/config"
	"github.com/pricesnap/pricesnap-api/internal/database"
	"github.com/pricesnap/pricesnap-api/internal/handler"
	"github.com/pricesnap/pricesnap-api/internal/middleware"
	"github.com/pricesnap/pricesnap-api/internal/repository"
	"github.com/pricesnap/pricesnap-api/internal/service"
	"github.com/pricesnap/pricesnap-api/internal/sse"
	"github.com/pricesnap/pricesnap-api/internal/utils"
	"github.com/pricesnap/pricesnap-api/internal/worker"
)

// main is the application entrypoint for the PriceSnap API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting pricesnap api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis. The listing cache degrades to pass-through when
	// Redis is unreachable, so this is not fatal.
	var listingCache *cache.ListingCache
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis connection failed - listing cache disabled")
		redisClient = nil
	} else {
		defer redisClient.Close()
		listingCache = cache.NewListingCache(redisClient)
		log.Info().Msg("redis connected successfully")
	}

	// 4. Initialize JWT signing and the catalog
	utils.InitJWT(cfg.JWTSecret)

	store := catalog.Default()
	if drifts := store.VerifyDerived(); len(drifts) > 0 {
		for _, d := range drifts {
			log.Warn().
				Str("product_id", d.ProductID).
				Str("field", d.Field).
				Int("stored", d.Stored).
				Int("derived", d.Derived).
				Msg("Seed cache differs from derived pricing")
		}
	}
	log.Info().Int("products", store.Len()).Msg("catalog loaded")

	// 5. Initialize repositories
	profileRepo := repository.NewProfileRepository(db)
	statsRepo := repository.NewUserStatsRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// 6. Initialize SSE hub and services
	hub := sse.NewHub()
	notifier := sse.NewHubNotifier(hub)

	authSvc := service.NewAuthService(profileRepo, statsRepo, cfg.JWTSecret)
	profileSvc := service.NewProfileService(profileRepo, statsRepo)
	productSvc := service.NewProductService(store, listingCache)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, statsRepo, store)
	alertSvc := service.NewAlertService(favoriteRepo, statsRepo, store, notifier)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:   handler.NewHealthHandler(db, redisClient, store),
		Product:  handler.NewProductHandler(productSvc, profileSvc),
		Auth:     handler.NewAuthHandler(authSvc),
		Profile:  handler.NewProfileHandler(profileSvc),
		Favorite: handler.NewFavoriteHandler(favoriteSvc),
		SSE:      handler.NewSSEHandler(hub),
	}

	// 8. Initialize middleware
	appKeyMw := middleware.NewAPIKeyMiddleware(cfg.AppAPIKeys)
	jwtMw := middleware.NewJWTMiddleware()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, appKeyMw, jwtMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewAlertWorker(alertSvc, cfg.Worker.AlertInterval).Start(ctx)
	go worker.NewIntegrityWorker(store, cfg.Worker.IntegrityInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health   *handler.HealthHandler
	Product  *handler.ProductHandler
	Auth     *handler.AuthHandler
	Profile  *handler.ProfileHandler
	Favorite *handler.FavoriteHandler
	SSE      *handler.SSEHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, appKeyMiddleware *middleware.APIKeyMiddleware, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Catalog routes (protected with app key)
	catalogGroup := router.Group("/v1/catalog")
	catalogGroup.Use(appKeyMiddleware.Handle())
	{
		catalogGroup.GET("/products", handlers.Product.GetProducts)
		catalogGroup.GET("/products/:id", handlers.Product.GetProduct)
		catalogGroup.GET("/products/:id/pricing", handlers.Product.GetPricing)
		catalogGroup.GET("/categories", handlers.Product.GetCategories)
		catalogGroup.GET("/categories/:category/platforms", handlers.Product.GetCategoryPlatforms)
		catalogGroup.GET("/deals", handlers.Product.GetDeals)
	}

	// Auth routes (protected with app key)
	auth := router.Group("/v1/auth")
	auth.Use(appKeyMiddleware.Handle())
	{
		auth.POST("/signup", handlers.Auth.SignUp)
		auth.POST("/login", handlers.Auth.Login)
		auth.POST("/reset-password", handlers.Auth.RequestReset)
		auth.POST("/reset-password/confirm", handlers.Auth.ConfirmReset)
	}

	// User routes (protected with session JWT)
	me := router.Group("/v1/me")
	// SSE before JWT middleware: EventSource cannot send Authorization
	// headers, so the stream validates its token query param itself.
	me.GET("/alerts/stream", handlers.SSE.Stream)
	me.Use(jwtMiddleware.Handle())
	{
		me.GET("", handlers.Profile.GetMe)
		me.PUT("", handlers.Profile.UpdateMe)
		me.GET("/stats", handlers.Profile.GetStats)

		me.GET("/favorites", handlers.Favorite.List)
		me.POST("/favorites", handlers.Favorite.Add)
		me.DELETE("/favorites/:productId", handlers.Favorite.Remove)
		me.PUT("/favorites/:productId/alert", handlers.Favorite.SetAlert)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
