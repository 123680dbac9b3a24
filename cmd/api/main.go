package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/tripai/tripai-go/internal/config"
	"github.com/tripai/tripai-go/internal/genai"
	"github.com/tripai/tripai-go/internal/handler"
	"github.com/tripai/tripai-go/internal/middleware"
	"github.com/tripai/tripai-go/internal/repository"
	"github.com/tripai/tripai-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready")

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	provider := genai.NewClient(cfg.GeminiAPIKey)
	generatorService := service.NewGeneratorService(provider)

	tripRepo := repository.NewTripRepository(db)
	tripService := service.NewTripService(tripRepo)
	tripHandler := handler.NewTripHandler(generatorService, tripService)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.AuthRateRPS, cfg.AuthRateBurst))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		// Generation is a blocking provider round-trip; it gets its own
		// tighter limit and never touches the store.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.GenerateRateRPS, cfg.GenerateRateBurst))
			r.Post("/api/v1/trips/generate", tripHandler.HandleGenerate)
		})

		r.Post("/api/v1/trips", tripHandler.HandleSaveTrip)
		r.Get("/api/v1/trips", tripHandler.HandleListTrips)
		r.Get("/api/v1/trips/{trip_id}", tripHandler.HandleGetTrip)
		r.Delete("/api/v1/trips/{trip_id}", tripHandler.HandleDeleteTrip)
		r.Patch("/api/v1/trips/{trip_id}/activate", tripHandler.HandleActivateTrip)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second, // generation round-trips can be slow
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
