package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/airbooking-console/config"
	"github.com/Domenick1991/airbooking-console/internal/kafka"
	"github.com/Domenick1991/airbooking-console/internal/notify"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Kafka.Enabled() {
		log.Fatalf("kafka brokers are not configured in %s", cfgPath)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EventsTopic)
	defer consumer.Close()

	notifier := notify.NewNotifier(os.Stdout)

	log.Printf("consuming %s as %s", cfg.Kafka.EventsTopic, cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, notifier.Send); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("consumer stopped: %v", err)
	}
	log.Printf("shutting down")
}
