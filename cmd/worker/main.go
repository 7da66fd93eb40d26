package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"voice-bridge/internal/bootstrap"
	"voice-bridge/internal/config"
	"voice-bridge/internal/jobs"
	"voice-bridge/internal/jobs/workers"
	"voice-bridge/internal/observability"
	"voice-bridge/internal/store"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting billing job worker server...")

	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	// Initialize store
	dataStore, err := store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	// Initialize billing
	clients, err := bootstrap.NewClients(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize clients: %v", err)
	}
	defer clients.Kafka.Close()
	billingProc := bootstrap.NewBillingProcessor(cfg, &dataStore, clients, logger)

	// Initialize workers
	billingWorker := workers.NewBillingWorker(billingProc, logger)

	// Create Asynq server with queue configuration
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 4,
			Queues: map[string]int{
				jobs.QueueHigh:    3, // Recharge sweeps keep calls from being declined
				jobs.QueueDefault: 1,
			},
			// Error handler
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			// Retry configuration
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	// Create task handler (mux)
	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypePhoneNumberFee, billingWorker.ProcessPhoneNumberFeeTask)
	mux.HandleFunc(jobs.TypeAutoRechargeSweep, billingWorker.ProcessAutoRechargeSweepTask)

	// Setup periodic billing tasks
	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Logger: &asynqLogger{logger: logger},
		},
	)

	feeTask, err := jobs.NewPhoneNumberFeeTask(jobs.PhoneNumberFeeJobPayload{})
	if err != nil {
		log.Fatalf("Failed to build phone number fee task: %v", err)
	}
	if _, err := scheduler.Register(jobs.PhoneNumberFeeSchedule, feeTask); err != nil {
		logger.Error(ctx, "failed to register monthly phone number fee task", err)
	}
	if _, err := scheduler.Register(jobs.AutoRechargeSweepSchedule, jobs.NewAutoRechargeSweepTask()); err != nil {
		logger.Error(ctx, "failed to register auto-recharge sweep task", err)
	}

	// Start the scheduler
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", redisOpt.Addr))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	// Graceful shutdown
	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
