package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	httpapi "rentadesk-backend/internal/api/http"
	"rentadesk-backend/internal/config"
	"rentadesk-backend/internal/logger"
	"rentadesk-backend/internal/repository/postgres"
	"rentadesk-backend/internal/security"
	"rentadesk-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rentadesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)
	actorResolver := security.NewActorResolver()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.CarRepository,
		store.CustomerRepository,
		store.CheckoutRepository,
		store.CheckinRepository,
		actorResolver,
		emailSvc,
		int32(cfg.Billing.DailyKmAllowance),
	)
	carSvc := service.NewCarService(store.CarRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	partSvc := service.NewPartService(store.PartRepository)

	// Initialize HTTP handlers and router
	router := httpapi.NewRouter(httpapi.Handlers{
		Reservation: httpapi.NewReservationHandler(reservationSvc),
		Car:         httpapi.NewCarHandler(carSvc),
		Customer:    httpapi.NewCustomerHandler(customerSvc),
		Part:        httpapi.NewPartHandler(partSvc),
	}, tokenManager)

	serve(cfg.GetServerAddress(), router)
}

func serve(addr string, router *mux.Router) {
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
