package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"voice-bridge/internal/bootstrap"
	"voice-bridge/internal/config"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"
	"voice-bridge/internal/workers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting billing reconciler...")

	brokers := strings.Split(cfg.Kafka.Brokers, ",")

	// Initialize store
	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	// Initialize billing. Reconciliation failures are republished by the
	// processor, so the producer and the consumer share a topic.
	clients, err := bootstrap.NewClients(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize clients: %v", err)
	}
	defer clients.Kafka.Close()
	billingProc := bootstrap.NewBillingProcessor(cfg, &dataStore, clients, logger)

	consumerConfig := workers.DefaultConsumerConfig(brokers, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topic)
	consumerConfig.NumWorkers = cfg.WorkerPool.ReconcilerWorkers
	consumer := workers.NewConsumer(consumerConfig, billingProc, logger)

	logger.Info(ctx, fmt.Sprintf(`Billing reconciler configuration:
  - Workers: %d
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		consumerConfig.NumWorkers, brokers, cfg.Kafka.Topic, cfg.Kafka.ConsumerGroup))

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error(ctx, "billing consumer stopped with error", err)
			cancel()
		}
	}()

	// Wait for shutdown signal or consumer failure
	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, stopping reconciler...")
	case <-ctx.Done():
	}
	cancel()

	consumer.Stop()
	logger.Info(ctx, "Billing reconciler stopped")
}
