package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/openhire/jobboard/internal/auth"
	"github.com/openhire/jobboard/internal/cache"
	"github.com/openhire/jobboard/internal/config"
	"github.com/openhire/jobboard/internal/database"
	"github.com/openhire/jobboard/internal/handlers"
	"github.com/openhire/jobboard/internal/logger"
	"github.com/openhire/jobboard/internal/search"
	"github.com/openhire/jobboard/internal/services"
	"github.com/openhire/jobboard/internal/storage"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	// 2. Database Connection
	db, err := database.Connect(cfg.PostgresDSN, zl)
	if err != nil {
		zl.Fatal("failed to connect database", zap.Error(err))
	}

	// 3. Redis Facet Cache (optional: facets fall back to the database)
	facetCache, err := cache.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, zl)
	if err != nil {
		zl.Warn("redis unavailable, facet caching disabled", zap.Error(err))
		facetCache = nil
	}

	// 4. Initialize Core Services (Dependencies)
	searchStore := storage.NewSearchStore(db, zl)
	enrichmentStore := storage.NewEnrichmentStore(db, zl)
	searchService := search.NewService(searchStore, enrichmentStore, zl)

	jobService := services.NewJobService(db, searchStore, enrichmentStore, zl)
	facetService := services.NewFacetService(db, facetCache, cfg.FacetCacheTTL, zl)
	savedJobService := services.NewSavedJobService(db, zl)
	applicationService := services.NewApplicationService(db, services.NewLogNotifier(zl), zl)

	var cvService *services.CVService
	if cfg.GeminiAPIKey != "" {
		cvService, err = services.NewCVService(cfg.GeminiAPIKey, cfg.GeminiModel, zl)
		if err != nil {
			zl.Warn("failed to init resume parser, endpoint disabled", zap.Error(err))
		}
	} else {
		zl.Info("GEMINI_API_KEY not set, resume parsing disabled")
	}

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(searchService, jobService, facetService, zl)
	postingHandler := handlers.NewPostingHandler(jobService, zl)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobService)
	facetHandler := handlers.NewFacetHandler(facetService)
	cvHandler := handlers.NewCVHandler(cvService)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(auth.Middleware(auth.NewTokenStore(db), zl))

	// 7. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Job Search & Detail
		api.GET("/jobs", jobHandler.List)
		api.GET("/jobs/:id", jobHandler.Show)

		// Posting Lifecycle (employer)
		api.POST("/employers/jobs", postingHandler.Create)
		api.PUT("/employers/jobs/:id", postingHandler.Update)
		api.POST("/employers/jobs/:id/publish", postingHandler.Publish)
		api.POST("/employers/jobs/:id/close", postingHandler.Close)

		// Applications & Saved Jobs (seeker)
		api.POST("/jobs/:id/apply", applicationHandler.Apply)
		api.POST("/jobs/:id/save", savedJobHandler.Save)
		api.DELETE("/jobs/:id/save", savedJobHandler.Unsave)

		// Facets
		api.GET("/categories", facetHandler.Categories)
		api.GET("/benefits", facetHandler.Benefits)
		api.GET("/employers", facetHandler.Employers)

		// Resume Parsing
		api.POST("/cv/parse", cvHandler.Parse)
	}

	zl.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		zl.Fatal("server failed to start", zap.Error(err))
	}
}
