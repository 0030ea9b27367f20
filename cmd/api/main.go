//	@title			Filebox API
//	@version		1.0
//	@description	Authenticated file-storage API: session tokens, hierarchical files and folders, per-file visibility, image post-processing.
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						X-Token
//	@description				Opaque session token returned by GET /connect

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/filebox/service/internal/account"
	"github.com/filebox/service/internal/auth"
	"github.com/filebox/service/internal/config"
	"github.com/filebox/service/internal/db"
	"github.com/filebox/service/internal/file"
	appMiddleware "github.com/filebox/service/internal/middleware"
	"github.com/filebox/service/internal/queue"
	"github.com/filebox/service/internal/session"
	"github.com/filebox/service/internal/status"
	"github.com/filebox/service/internal/storage"

	_ "github.com/filebox/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("redis connection failed: %v", err)
	}
	log.Println("connected to redis")

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("content storage init failed: %v", err)
	}

	sessions := session.NewRedisStore(redisClient, session.DefaultTTL)
	jobs := queue.NewRedisDispatcher(redisClient, queue.ThumbnailQueue)

	// Wire dependencies: repository → service → handler
	accountRepo := account.NewPostgresRepository(pool)
	accountSvc := account.NewService(accountRepo)
	accountHandler := account.NewHandler(accountSvc)

	authSvc := auth.NewService(accountSvc, sessions)
	authHandler := auth.NewHandler(authSvc)

	fileRepo := file.NewPostgresRepository(pool)
	fileSvc := file.NewService(fileRepo, store, jobs)
	fileHandler := file.NewHandler(fileSvc)

	statusHandler := status.NewHandler(sessions, pool, accountSvc, fileSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Token", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/status", statusHandler.Status)
	r.Get("/stats", statusHandler.Stats)

	r.Post("/users", accountHandler.Register)
	r.Get("/connect", authHandler.Connect)

	// Every operation below passes through the access gateway first.
	r.Group(func(r chi.Router) {
		r.Use(appMiddleware.RequireAuth(sessions))
		r.Get("/disconnect", authHandler.Disconnect)
		r.Get("/users/me", accountHandler.Me)
		r.Post("/files", fileHandler.Upload)
		r.Get("/files", fileHandler.List)
		r.Get("/files/{id}", fileHandler.Show)
		r.Put("/files/{id}/publish", fileHandler.Publish)
		r.Put("/files/{id}/unpublish", fileHandler.Unpublish)
		r.Get("/files/{id}/data", fileHandler.Data)
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}

// newStorage selects the content storage driver from configuration.
func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageDriver == "disk" {
		return storage.NewDiskStorage(cfg.FolderPath)
	}
	return storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageUseSSL,
	)
}
