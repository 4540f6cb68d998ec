package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mergington-activities/src/config"
	"mergington-activities/src/database"
	"mergington-activities/src/jobs"
	"mergington-activities/src/logger"
	"mergington-activities/src/metrics"
	"mergington-activities/src/routes"
	"mergington-activities/src/services/activities"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, foundEnv, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if !foundEnv {
		log.Warn("⚠️ No .env file found")
	}

	registry, err := activities.NewSeededRegistry(cfg.ActivitiesFile)
	if err != nil {
		return fmt.Errorf("load activities: %w", err)
	}
	log.Info("✅ Activities loaded", zap.Int("count", len(registry.List())), zap.String("source", sourceName(cfg.ActivitiesFile)))

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(promReg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cleanup closers
	defer cleanup.run()

	notifier, redisClient, err := startNotifications(ctx, cfg, log, &cleanup)
	if err != nil {
		return err
	}

	app := routes.NewApp(routes.Dependencies{
		Registry:       registry,
		Notifier:       notifier,
		Metrics:        m,
		Gatherer:       promReg,
		Redis:          redisClient,
		Log:            log,
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	listenErr := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("port", cfg.Port))
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err = <-listenErr:
	case <-ctx.Done():
		log.Info("Shutting down")
		err = app.ShutdownWithTimeout(cfg.ShutdownTimeout)
	}
	return err
}

// closers runs registered cleanups in reverse order of registration.
type closers []func()

func (c *closers) add(f func()) { *c = append(*c, f) }

func (c closers) run() {
	for i := len(c) - 1; i >= 0; i-- {
		c[i]()
	}
}

// startNotifications wires the asynq producer and worker when Redis is
// configured and reachable. Each client is added to cleanup as soon as it
// exists, so an error part way through still releases what was opened.
func startNotifications(ctx context.Context, cfg config.Config, log *zap.Logger, cleanup *closers) (jobs.Notifier, *redis.Client, error) {
	if !cfg.NotificationsEnabled() {
		log.Info("REDIS_URI not set, notifications disabled")
		return jobs.NopNotifier{}, nil, nil
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.RedisURI)
	if err != nil {
		log.Warn("⚠️ Redis not available. Notifications disabled.", zap.Error(err))
		return jobs.NopNotifier{}, nil, nil
	}
	cleanup.add(func() { _ = redisClient.Close() })

	asynqClient := database.NewAsynqClient(cfg.RedisURI)
	cleanup.add(func() { _ = asynqClient.Close() })

	worker := database.NewAsynqServer(cfg.RedisURI, jobs.NotificationQueue, 2, jobs.NewAsynqLogger(log))
	if err := worker.Start(jobs.NewServeMux(log)); err != nil {
		return nil, nil, fmt.Errorf("start notification worker: %w", err)
	}
	cleanup.add(worker.Shutdown)
	log.Info("✅ Notification worker started")

	return jobs.NewAsynqNotifier(asynqClient), redisClient, nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
