package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightmate-service/internal/infrastructure/auth"
	"flightmate-service/internal/infrastructure/config"
	"flightmate-service/internal/infrastructure/oauth"
	"flightmate-service/internal/infrastructure/persistence"
	"flightmate-service/internal/infrastructure/router"
	appRepo "flightmate-service/internal/interface/repository"
	"flightmate-service/internal/interface/rest"
	"flightmate-service/internal/usecase"
	"flightmate-service/pkg/logger"
	"flightmate-service/pkg/metrics"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting FlightMate Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI, &appRepo.Users{}, &appRepo.Flights{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up MongoDB connection for the notification log
	log.Info("Connecting to MongoDB")
	mongoClient, mongoDB, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Set up repositories
	userRepository := appRepo.NewGormUserRepository(gormDB)
	flightRepository := appRepo.NewGormFlightRepository(gormDB)
	notificationLog := appRepo.NewMongoNotificationLogRepository(mongoDB)
	slackRepository := appRepo.NewSlackRepository(cfg.SlackBotToken, log)

	// Set up metrics and usecases
	appMetrics := metrics.NewMetrics("flightmate")
	notifier := usecase.NewNotifier(flightRepository, notificationLog, slackRepository, log, appMetrics)
	flightService := usecase.NewFlightService(flightRepository, notifier, log, appMetrics)
	matchService := usecase.NewMatchService(flightRepository, log, appMetrics)

	// Set up Slack OAuth and session tokens
	slackOAuth := oauth.NewSlackOAuth(cfg.SlackClientID, cfg.SlackClientSecret, cfg.SlackRedirectURL, log)
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpireMinutes)*time.Minute)

	// Set up HTTP handlers and router
	handlers := router.Handlers{
		Auth:   rest.NewAuthHandler(slackOAuth, slackRepository, userRepository, tokenManager, log),
		User:   rest.NewUserHandler(userRepository, log),
		Flight: rest.NewFlightHandler(flightService, log),
		Match:  rest.NewMatchHandler(matchService, log),
	}
	e := router.New(handlers, tokenManager, userRepository)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("FlightMate Service stopped")
}
