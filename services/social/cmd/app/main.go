package main

import (
	"cinesocial/pkg/cache"
	"cinesocial/pkg/config"
	"cinesocial/pkg/database"
	"cinesocial/pkg/logger"
	"cinesocial/pkg/queue"
	socialApp "cinesocial/services/social/internal/app"
	"cinesocial/services/social/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Validate JWT_SECRET; the admin API is useless without it
	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	log := logger.NewWithConfig(cfg.LogLevel, cfg.LogFormat)

	db, err := database.Open(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	if db == nil {
		log.Warn("DB_DRIVER=none, snapshots are disabled")
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (falling back to in-process rate limiting)", err)
		redisClient = nil
	}

	publisher := newPublisher(cfg, log, redisClient)

	st := store.New(store.WithStoryTTL(cfg.StoryTTL))

	socialApp.Run(cfg, log, st, db, redisClient, publisher)
}

// newPublisher picks the admin event backend. The service keeps running
// without a broker; events are then dropped.
func newPublisher(cfg *config.Config, log *logger.Logger, redisClient *redis.Client) queue.Publisher {
	switch cfg.EventsBackend {
	case "rabbitmq":
		client, err := queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v (continuing without events)", err)
			return queue.NopPublisher{}
		}
		return client
	case "redis":
		if redisClient == nil {
			log.Warn("EVENTS_BACKEND=redis but redis is unavailable, events are dropped")
			return queue.NopPublisher{}
		}
		return queue.NewRedisPublisher(redisClient, log)
	case "none":
		return queue.NopPublisher{}
	default:
		log.Warn("Unknown EVENTS_BACKEND %q, events are dropped", cfg.EventsBackend)
		return queue.NopPublisher{}
	}
}
