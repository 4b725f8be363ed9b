package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/handlers"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/middleware"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/monitor"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/service"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/internal/session"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/logger"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/redis"
	"github.com/galmaraz/Sistema-de-Gesti-n-ISP/pkg/upstream"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info("Starting ISP Management Console v1.0.0...")

	// Console operator accounts
	operators, err := session.OperatorsFromEnv()
	if err != nil {
		log.Fatal("Failed to load console operators", "error", err)
	}
	sessions := session.NewManager(operators, os.Getenv("UPSTREAM_API_TOKEN"))

	// Upstream ISP API client
	upstreamURL := os.Getenv("UPSTREAM_API_URL")
	if upstreamURL == "" {
		upstreamURL = "http://localhost:4000"
	}
	apiClient := upstream.New(upstreamURL, log, sessions)
	log.Info("Upstream API configured", "url", upstreamURL)

	// Redis is optional: rate limiting and snapshot caching degrade
	// gracefully without it
	redisClient, err := redis.Connect()
	if err != nil {
		log.Warn("Redis unavailable, continuing without rate limiting and snapshot cache", "error", err.Error())
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info("Redis connected successfully")
	}

	// Domain service and connection monitor
	svc := service.New(apiClient, log)

	pollInterval := 30 * time.Second
	if raw := os.Getenv("MONITOR_POLL_INTERVAL"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			pollInterval = parsed
		}
	}
	mon := monitor.New(svc, log, redisClient, pollInterval)
	if err := mon.Start(); err != nil {
		log.Fatal("Failed to start connection monitor", "error", err)
	}
	defer mon.Stop()

	// Initialize handlers
	h := handlers.New(svc, sessions, mon, log)

	// Create router
	r := mux.NewRouter()

	// ============== PUBLIC ROUTES (No Auth) ==============
	r.HandleFunc("/api/health", h.HealthCheck).Methods("GET")

	loginLimiter := middleware.NewRateLimiter(redisClient, 10, time.Minute)
	r.Handle("/api/auth/login", loginLimiter.Middleware(http.HandlerFunc(h.Login))).Methods("POST")

	// ============== PROTECTED ROUTES (JWT Auth) ==============
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.AuthMiddleware)

	// Auth
	api.HandleFunc("/auth/logout", h.Logout).Methods("POST")
	api.HandleFunc("/auth/refresh", h.RefreshToken).Methods("POST")

	// Dashboard + monitoring
	api.HandleFunc("/dashboard/stats", h.GetDashboardStats).Methods("GET")
	api.HandleFunc("/alerts", h.GetAlerts).Methods("GET")
	api.HandleFunc("/alerts", h.CreateAlert).Methods("POST")
	api.HandleFunc("/alerts/{id}/read", h.MarkAlertRead).Methods("PUT")
	api.HandleFunc("/monitoring/connections", h.GetMonitoringSnapshot).Methods("GET")
	api.Handle("/monitoring/start", middleware.RequireRole("admin", "technician")(http.HandlerFunc(h.StartMonitoring))).Methods("POST")
	api.Handle("/monitoring/stop", middleware.RequireRole("admin", "technician")(http.HandlerFunc(h.StopMonitoring))).Methods("POST")

	// Clients
	api.HandleFunc("/clients", h.GetClients).Methods("GET")
	api.HandleFunc("/clients", h.CreateClient).Methods("POST")
	api.HandleFunc("/clients/{id}", h.GetClient).Methods("GET")
	api.HandleFunc("/clients/{id}", h.UpdateClient).Methods("PUT")
	api.HandleFunc("/clients/{id}", h.DeleteClient).Methods("DELETE")

	// Plans
	api.HandleFunc("/plans", h.GetPlans).Methods("GET")
	api.HandleFunc("/plans", h.CreatePlan).Methods("POST")
	api.HandleFunc("/plans/{id}", h.GetPlan).Methods("GET")
	api.HandleFunc("/plans/{id}", h.UpdatePlan).Methods("PUT")
	api.HandleFunc("/plans/{id}", h.DeletePlan).Methods("DELETE")

	// Routers
	api.HandleFunc("/routers", h.GetRouters).Methods("GET")
	api.HandleFunc("/routers", h.CreateRouter).Methods("POST")
	api.HandleFunc("/routers/{id}", h.GetRouter).Methods("GET")
	api.HandleFunc("/routers/{id}", h.UpdateRouter).Methods("PUT")
	api.HandleFunc("/routers/{id}", h.DeleteRouter).Methods("DELETE")
	api.HandleFunc("/routers/{id}/test", h.TestRouterConnection).Methods("POST")
	api.HandleFunc("/routers/{id}/stats", h.GetRouterStats).Methods("GET")

	// Contracts
	api.HandleFunc("/contracts", h.GetContracts).Methods("GET")
	api.HandleFunc("/contracts", h.CreateContract).Methods("POST")
	api.HandleFunc("/contracts/{id}", h.GetContract).Methods("GET")
	api.HandleFunc("/contracts/{id}", h.UpdateContract).Methods("PUT")
	api.HandleFunc("/contracts/{id}", h.DeleteContract).Methods("DELETE")
	api.HandleFunc("/contracts/{id}/suspend", h.SuspendContract).Methods("POST")
	api.HandleFunc("/contracts/{id}/reactivate", h.ReactivateContract).Methods("POST")
	api.HandleFunc("/contracts/{id}/change-plan", h.ChangeContractPlan).Methods("POST")

	// CORS configuration
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Create server
	srv := &http.Server{
		Handler:      c.Handler(r),
		Addr:         ":" + port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info("Console starting", "port", port)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
