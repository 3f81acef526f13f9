package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cinesocial/pkg/config"
	"cinesocial/pkg/database"
	"cinesocial/pkg/jwt"
	"cinesocial/pkg/logger"
	"cinesocial/pkg/middleware"
	"cinesocial/pkg/queue"
	socialHTTP "cinesocial/services/social/internal/controller/http"
	"cinesocial/services/social/internal/entity"
	"cinesocial/services/social/internal/repo/persistent"
	"cinesocial/services/social/internal/store"
	"cinesocial/services/social/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Run serves the admin and ops API over st until SIGINT or SIGTERM. db,
// redisClient and publisher are optional; without db snapshots are disabled,
// without redis rate limiting stays in-process.
func Run(cfg *config.Config, log *logger.Logger, st *store.Store, db *gorm.DB, redisClient *redis.Client, publisher queue.Publisher) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	var snapshotRepo persistent.SnapshotRepository
	if db != nil {
		if err := persistent.Migrate(db); err != nil {
			log.Error("Failed to migrate snapshot tables: %v", err)
			panic(err)
		}
		snapshotRepo = persistent.NewSnapshotRepository(db)
	}
	if publisher == nil {
		publisher = queue.NopPublisher{}
	}

	// Initialize use cases
	adminUseCase := usecase.NewAdminUseCase(st, publisher, log)
	maintenanceUseCase := usecase.NewMaintenanceUseCase(st, snapshotRepo, publisher, log)
	statsUseCase := usecase.NewStatsUseCase(st, cfg.StatsCacheTTL)

	if snapshotRepo != nil && cfg.SnapshotOnStart {
		restored, err := maintenanceUseCase.RestoreLatest(context.Background())
		if err != nil {
			log.Error("Failed to restore snapshot: %v", err)
			panic(err)
		}
		if !restored {
			log.Info("No snapshot found, starting with an empty store")
		}
	}

	// Initialize HTTP handlers
	adminHandler := socialHTTP.NewAdminHandler(adminUseCase, maintenanceUseCase, log)
	opsHandler := socialHTTP.NewOpsHandler(statsUseCase, log)
	if err := opsHandler.RegisterMetrics(prometheus.DefaultRegisterer); err != nil {
		log.Warn("Failed to register store metrics: %v", err)
	}

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Metrics())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api/v1")
	opsHandler.RegisterRoutes(r, api)

	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleModerator))
	if redisClient != nil {
		admin.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))
	} else {
		admin.Use(middleware.LocalRateLimit(cfg.RateLimitPerMinute, time.Minute))
	}
	adminHandler.RegisterRoutes(admin)

	// Background jobs
	jobsCtx, stopJobs := context.WithCancel(context.Background())
	go maintenanceUseCase.RunStorySweeper(jobsCtx, cfg.StorySweepInterval)
	go maintenanceUseCase.RunAutosave(jobsCtx, cfg.SnapshotInterval)

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Social service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down social service...")
	stopJobs()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Final snapshot once no request can mutate the store
	if snapshotRepo != nil {
		if err := maintenanceUseCase.SaveSnapshot(ctx); err != nil {
			log.Error("Failed to save final snapshot: %v", err)
		}
	}

	if err := publisher.Close(); err != nil {
		log.Error("Error closing event publisher: %v", err)
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close database connection
	if db != nil {
		if err := database.Close(db); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	log.Info("Social service exited")
	log.Sync()
}
