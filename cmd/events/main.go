package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cinesocial/pkg/cache"
	"cinesocial/pkg/config"
	"cinesocial/pkg/logger"
	"cinesocial/pkg/queue"
)

// events tails the admin event stream and prints one JSON object per line.
func main() {
	backend := flag.String("backend", "", "rabbitmq or redis (defaults to EVENTS_BACKEND)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if *backend == "" {
		*backend = cfg.EventsBackend
	}

	log := logger.NewWithConfig(cfg.LogLevel, "console")
	defer log.Sync()

	var sub queue.Subscriber
	switch *backend {
	case "rabbitmq":
		client, err := queue.NewRabbitMQClient(cfg, log)
		if err != nil {
			log.Error("Failed to connect to RabbitMQ: %v", err)
			os.Exit(1)
		}
		defer client.Close()
		if n, err := client.QueueLength(); err == nil {
			log.Info("%d events waiting in %s", n, queue.AdminEventsQueueName)
		}
		sub = client
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Error("Failed to connect to redis: %v", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		sub = queue.NewRedisPublisher(redisClient, log)
	default:
		log.Error("Nothing to tail for backend %q", *backend)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	enc := json.NewEncoder(os.Stdout)
	err = sub.Subscribe(ctx, func(e queue.Event) error {
		return enc.Encode(e)
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
