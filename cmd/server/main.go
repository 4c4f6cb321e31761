package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alcyxob/trainer-backoffice/internal/ai"
	"alcyxob/trainer-backoffice/internal/api"
	"alcyxob/trainer-backoffice/internal/billing"
	"alcyxob/trainer-backoffice/internal/config"
	"alcyxob/trainer-backoffice/internal/logger"
	"alcyxob/trainer-backoffice/internal/metrics"
	"alcyxob/trainer-backoffice/internal/repository/memory"
	"alcyxob/trainer-backoffice/internal/seed"
	"alcyxob/trainer-backoffice/internal/service"
	"alcyxob/trainer-backoffice/internal/storage"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:          "trainer-backoffice",
	Short:        "Back-office API for a personal trainer",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Load and validate the configuration, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configuration OK")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "directory holding config.yaml and .env")
	rootCmd.AddCommand(checkConfigCmd)
}

// @title Trainer Back-Office API
// @version 1.0
// @description Exercise catalog, workout library, clients, billing and AI workout drafts for a personal trainer.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// --- Configuration ---
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log := logger.New(logger.SetupParams{
		Level:    cfg.Logging.Level,
		JSON:     cfg.Logging.JSON,
		FileName: cfg.Logging.File,
	})
	defer func() { _ = log.Sync() }()
	log.Info("starting trainer back-office", zap.String("address", cfg.Server.Address))

	// --- Data ---
	data, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}
	store, err := memory.NewStore(data.Exercises, data.Workouts, data.Clients)
	if err != nil {
		return fmt.Errorf("build store: %w", err)
	}
	log.Info("seed data loaded",
		zap.Int("exercises", len(data.Exercises)),
		zap.Int("workouts", len(data.Workouts)),
		zap.Int("clients", len(data.Clients)),
	)

	// --- Storage ---
	var images storage.ImageStorage
	if cfg.S3.BucketName != "" {
		images, err = storage.NewS3Storage(ctx, cfg.S3, log)
		if err != nil {
			return fmt.Errorf("init s3 storage: %w", err)
		}
	} else {
		log.Info("s3 bucket not configured, exercise images use placeholders")
	}

	// --- AI gateway ---
	var gateway ai.Gateway = ai.Disabled{}
	if cfg.AI.APIKey != "" {
		gateway = ai.NewOpenAIGateway(ai.Options{
			APIKey:      cfg.AI.APIKey,
			BaseURL:     cfg.AI.BaseURL,
			Model:       cfg.AI.Model,
			MaxTokens:   cfg.AI.MaxTokens,
			Temperature: cfg.AI.Temperature,
		}, log)
	} else {
		log.Warn("ai api key not configured, plan generation is disabled")
	}

	// --- Metrics ---
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsManager := metrics.NewManager("trainer", "backoffice", reg)

	// --- Services ---
	loc := cfg.Billing.Location()
	clock := service.SystemClock(loc)
	defaults := service.ClientDefaults{
		PaymentDay: cfg.Billing.DefaultPaymentDay,
		Weight:     cfg.Billing.DefaultWeight,
	}
	svc := api.Services{
		Exercises: service.NewExerciseService(store.Exercises(), images, log),
		Workouts:  service.NewWorkoutService(store.Workouts(), store.Clients(), log),
		Clients:   service.NewClientService(store.Clients(), defaults, clock, log),
		Trainer:   service.NewTrainerService(store.Clients(), store.Workouts(), store.Exercises(), defaults, clock, log),
		Billing: service.NewBillingService(
			store.Clients(), billing.NewEngine(cfg.Billing.CardBrands, loc), clock, metricsManager, log,
		),
		Dashboard: service.NewDashboardService(store.Clients(), store.Workouts(), store.Exercises()),
		Advisor:   service.NewAdvisorService(gateway, store.Workouts(), metricsManager, log),
	}

	// --- HTTP ---
	gin.SetMode(cfg.Server.Mode)
	router := api.NewRouter(svc, metricsManager, reg, log)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal to gracefully shut down the server
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		return fmt.Errorf("listen: %w", err)
	case <-sigCtx.Done():
	}
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}
