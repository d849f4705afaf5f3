package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/swapline/swapline-api/apps/api/handlers"
	awsclient "github.com/swapline/swapline-api/libs/go/client/aws"
	"github.com/swapline/swapline-api/libs/go/client/pricefeed"
	"github.com/swapline/swapline-api/libs/go/helpers"
	"github.com/swapline/swapline-api/libs/go/logger"
	"github.com/swapline/swapline-api/libs/go/middleware"
	"github.com/swapline/swapline-api/libs/go/services"
)

// Handler definitions
var (
	healthHandler *handlers.HealthHandler
	priceHandler  *handlers.PriceHandler
	swapHandler   *handlers.SwapHandler

	// Services
	commonServices *handlers.CommonServices
	priceService   *services.PriceService
	formService    *services.SwapFormService

	// pollCancel stops the price polling loop on shutdown.
	pollCancel context.CancelFunc
)

func InitializeHandlers() {
	// Load environment variables from .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	// --- Price Feed API Key ---
	// The feed works without a key at reduced rate limits, so a missing
	// key is a warning rather than a fatal error.
	var feedAPIKey string
	if stage == helpers.StageProd || stage == helpers.StageDev {
		secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
		}

		feedAPIKey, err = secretsClient.GetSecretString(ctx, "PRICE_FEED_API_KEY_ARN", "PRICE_FEED_API_KEY")
		if err != nil {
			logger.Warn("Price feed API key not configured, requests will be unauthenticated", zap.Error(err))
		}
	} else {
		feedAPIKey = os.Getenv("PRICE_FEED_API_KEY")
		if feedAPIKey == "" {
			logger.Warn("PRICE_FEED_API_KEY not set, requests will be unauthenticated")
		}
	}

	// --- Price Feed Client ---
	var feedOptions []pricefeed.Option
	if feedURL := os.Getenv("PRICE_FEED_URL"); feedURL != "" {
		feedOptions = append(feedOptions, pricefeed.WithBaseURL(feedURL))
	}
	feedClient := pricefeed.NewClient(feedAPIKey, feedOptions...)

	// --- Services ---
	priceService = services.NewPriceService(feedClient)
	formService = services.NewSwapFormService(
		priceService,
		services.NewConversionService(),
		services.NewSwapExecutorService(),
	)

	// The form rederives its dependent amount whenever the table changes.
	priceService.AddListener(formService.RateChanged)

	var pollCtx context.Context
	pollCtx, pollCancel = context.WithCancel(ctx)
	priceService.StartPolling(pollCtx)

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		PriceService:    priceService,
		SwapFormService: formService,
	})

	// --- Handlers ---
	healthHandler = handlers.NewHealthHandler()
	priceHandler = handlers.NewPriceHandler(commonServices, priceService)
	swapHandler = handlers.NewSwapHandler(commonServices, formService)
}

// Shutdown stops background work started by InitializeHandlers.
func Shutdown() {
	if pollCancel != nil {
		pollCancel()
	}
	logger.Info("Server is shutting down...")
	logger.Sync()
}

func InitializeRoutes(router *gin.Engine) {
	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add correlation ID middleware for request tracing
	router.Use(middleware.CorrelationIDMiddleware())

	// Apply rate limiting middleware globally
	router.Use(middleware.DefaultRateLimiter.Middleware())

	// Request logging
	router.Use(middleware.RequestLoggingMiddleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/prices", priceHandler.GetPrices)
		v1.POST("/prices/refresh", priceHandler.RefreshPrices)

		swap := v1.Group("/swap")
		{
			swap.GET("", swapHandler.GetSwapState)
			swap.POST("/amount", swapHandler.ChangeAmount)
			swap.POST("/token", swapHandler.ChangeToken)
			swap.POST("/direction", swapHandler.SwapDirection)
			swap.POST("/submit", swapHandler.SubmitSwap)
		}
	}
}

func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-API-Key", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
		"X-Correlation-ID",
	}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
