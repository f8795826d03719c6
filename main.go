// Command messagely-go is a small messaging-service backend: user
// registration/authentication and message exchange between users, exposed
// over HTTP with JSON payloads and JWT session tokens, backed by PostgreSQL.
//
// @title Messagely API
// @version 1.0
// @description User registration, login, and message exchange.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/messagely-go/apperror"
	"github.com/user/messagely-go/auth"
	"github.com/user/messagely-go/config"
	"github.com/user/messagely-go/db"
	_ "github.com/user/messagely-go/docs" // generated Swagger docs
	"github.com/user/messagely-go/messages"
	"github.com/user/messagely-go/users"
)

func main() {
	// .env is a development convenience; in production the variables are set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./db/migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Manual dependency injection: services get the pool and config, handlers
	// get the services.
	authService := auth.NewAuthService(pool, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	userService := users.NewUserService(pool)
	userHandlers := users.NewUserHandlers(userService)

	messageService := messages.NewMessageService(pool)
	messageHandlers := messages.NewMessageHandler(messageService)

	r := chi.NewRouter()

	// Global middleware. Chi requires all middleware to be registered before
	// any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that formats errors through the apperror system.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Identify runs on every route: it attaches the caller's identity when a
	// valid token is present and never rejects by itself.
	r.Use(auth.Identify(cfg.Auth))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Auth routes: open to everyone.
	r.Post("/login", authHandlers.HandleLogin())
	r.Post("/register", authHandlers.HandleRegister())

	// User routes: the list requires login; everything under a specific
	// username requires that same user.
	r.Route("/users", func(r chi.Router) {
		r.Use(auth.RequireLoggedIn)
		r.Get("/", userHandlers.HandleListUsers())

		r.Route("/{username}", func(r chi.Router) {
			r.Use(auth.RequireSameUser)
			r.Get("/", userHandlers.HandleGetUser())
			r.Get("/to", userHandlers.HandleMessagesTo())
			r.Get("/from", userHandlers.HandleMessagesFrom())
		})
	})

	// Message routes: login required; party checks happen per message.
	r.Route("/messages", func(r chi.Router) {
		r.Use(auth.RequireLoggedIn)
		messageHandlers.RegisterRoutes(r)
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}

// writeError is a local helper for the panic recovery middleware.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"Failed to encode error response"}`, http.StatusInternalServerError)
	}
}
