package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/moodtrackr/backend/internal/config"
	"github.com/moodtrackr/backend/internal/handlers"
	"github.com/moodtrackr/backend/internal/logger"
	"github.com/moodtrackr/backend/internal/middleware"
	"github.com/moodtrackr/backend/internal/repository"
	"github.com/moodtrackr/backend/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Initialize structured logging
	logCfg := logger.DefaultConfig()
	if cfg.Server.Env != "production" {
		logCfg.Format = "text"
		logCfg.Level = logger.LevelDebug
	}
	logger.SetDefault(logger.NewSlogLogger(logCfg))

	log := logger.Default()
	log.Info("starting moodstats API server",
		logger.String("env", cfg.Server.Env),
		logger.String("port", cfg.Server.Port),
	)

	// Connect to MongoDB
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URL))
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping mongodb: %w", err)
	}
	log.Info("connected to mongodb", logger.String("database", cfg.Mongo.Database))

	db := client.Database(cfg.Mongo.Database)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	// Initialize services
	entriesService := service.NewEntriesService(userRepo, entryRepo)
	statsService := service.NewStatsService(entriesService)

	// Initialize handlers
	entriesHandler := handlers.NewEntriesHandler(entriesService)
	statsHandler := handlers.NewStatsHandler(statsService)
	healthHandler := handlers.NewHealthHandler(client, cfg.Server.Env)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", healthHandler.Health)

	// Raw entries feed consumed by the stats frontend
	router.GET("/entries", entriesHandler.GetEntries)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		stats := v1.Group("/stats")
		stats.Use(middleware.RateLimitStats())
		{
			stats.GET("/physical", statsHandler.GetPhysical)
			stats.GET("/stress", statsHandler.GetStress)
			stats.GET("/emotions", statsHandler.GetEmotions)
			stats.GET("/sleep", statsHandler.GetSleep)

			stats.GET("/symptoms/:name", statsHandler.GetSymptomDetails)
			stats.GET("/triggers/:name", statsHandler.GetTriggerDetails)
			stats.GET("/emotions/:name", statsHandler.GetEmotionDetails)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Serve in the background so we can watch for shutdown signals
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("shutting down", logger.String("signal", sig.String()))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Warn("mongodb disconnect failed", logger.Err(err))
	}

	log.Info("server stopped")
	return nil
}
