package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"horizonbot/internal/config"
	"horizonbot/internal/handler"
	"horizonbot/internal/logger"
	"horizonbot/internal/repository"
	"horizonbot/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Color:  cfg.Logging.Color,
	})
	appLogger.Info("HorizonBot property assistant",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Open the catalog
	store, closeStore, err := repository.Open(cfg)
	if err != nil {
		appLogger.Error("Failed to open catalog", "backend", cfg.Catalog.Backend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	appLogger.Info("✅ Catalog ready", "backend", cfg.Catalog.Backend)

	// Initialize services
	catalog := repository.NewCachedCatalog(store, cfg.Catalog.LocationCacheTTL)
	extractor := service.NewExtractor(catalog, appLogger)
	chatService := service.NewChatService(catalog, extractor, appLogger, service.WithLimits(service.ChatLimits{
		MaxListings:     cfg.Chat.MaxListings,
		SellResidential: cfg.Chat.SellResidential,
		SellCommercial:  cfg.Chat.SellCommercial,
		Amenities:       cfg.Chat.Amenities,
		NearbyPlaces:    cfg.Chat.NearbyPlaces,
		LocationTypes:   cfg.Chat.LocationTypes,
	}))
	listingService := service.NewListingService(store, cfg.Chat.PageSize)
	submissionService := service.NewSubmissionService(store)

	appLogger.Info("✅ Services initialized")

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatService)
	listingHandler := handler.NewListingHandler(listingService)
	inquiryHandler := handler.NewInquiryHandler(listingService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitList(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = splitList(cfg.Server.AllowedMethods)
	corsConfig.AllowHeaders = splitList(cfg.Server.AllowedHeaders)
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "horizonbot",
			"catalog":    cfg.Catalog.Backend,
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	handler.RegisterRoutes(router, chatHandler, listingHandler, inquiryHandler, submissionHandler)

	// Serve the chat widget.
	// Implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, cfg.Server.StaticDir, appLogger)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	appLogger.Info("🚀 Starting server", "addr", addr)
	appLogger.Info("🌐 Chat widget", "url", fmt.Sprintf("http://localhost:%d", cfg.Server.Port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server shutdown failed", "error", err)
	}
	appLogger.Info("✅ Server stopped")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
