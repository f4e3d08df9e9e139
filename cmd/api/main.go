package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/pawfectstay/booking-service/internal/adapters/handler"
	"github.com/pawfectstay/booking-service/internal/adapters/middleware"
	"github.com/pawfectstay/booking-service/internal/adapters/repository"
	"github.com/pawfectstay/booking-service/internal/config"
	"github.com/pawfectstay/booking-service/internal/core/services"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	petRepo := repository.NewPetRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, login throttling disabled: %v", err)
	} else {
		log.Println("Authenticated with Redis successfully")
	}

	tokenService := services.NewJWTTokenService(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, tokenService, cfg.AdminUsername, cfg.AdminPasswordHash, redisClient)
	registrationService := services.NewRegistrationService(userRepo)
	petService := services.NewPetService(petRepo)
	reservationService := services.NewReservationService(reservationRepo, cfg.AllowRetransition)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	metricsMiddleware := middleware.NewMetricsMiddleware(prometheus.DefaultRegisterer)

	authHandler := handler.NewAuthHandler(authService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	petHandler := handler.NewPetHandler(petService)
	reservationHandler := handler.NewReservationHandler(reservationService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	mux := http.NewServeMux()

	// Health endpoints (OpenShift compatible)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /health/ready", healthHandler.Ready)
	mux.HandleFunc("GET /health/live", healthHandler.Live)

	mux.Handle("GET /metrics", promhttp.Handler())

	// Public endpoints
	mux.HandleFunc("POST /register", registrationHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /admin/login", authHandler.AdminLogin)

	// Pet endpoints: any authenticated caller, ownership enforced in the
	// service layer
	mux.HandleFunc("POST /dogs", authMiddleware.RequireUser(petHandler.Create))
	mux.HandleFunc("GET /dogs", authMiddleware.RequireUser(petHandler.List))
	mux.HandleFunc("GET /dogs/{id}", authMiddleware.RequireUser(petHandler.Get))
	mux.HandleFunc("PUT /dogs/{id}", authMiddleware.RequireUser(petHandler.Update))
	mux.HandleFunc("DELETE /dogs/{id}", authMiddleware.RequireUser(petHandler.Delete))

	// Reservation endpoints
	mux.HandleFunc("POST /reservations", authMiddleware.RequireUser(reservationHandler.Create))
	mux.HandleFunc("GET /reservations/user", authMiddleware.RequireUser(reservationHandler.ListOwn))
	mux.HandleFunc("GET /admin/reservations", authMiddleware.RequireAdmin(reservationHandler.ListAll))
	mux.HandleFunc("PUT /admin/reservations/{id}", authMiddleware.RequireAdmin(reservationHandler.UpdateStatus))
	mux.HandleFunc("DELETE /admin/reservations/{id}", authMiddleware.RequireAdmin(reservationHandler.Delete))

	root := middleware.CORSMiddleware(cfg.AllowedOrigins)(metricsMiddleware.Instrument(mux))

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, root); err != nil {
		log.Fatalf("Could not start server: %s\n", err)
	}
}
