package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vessel-monitor/internal/config"
	"github.com/vessel-monitor/internal/domain/repository"
	"github.com/vessel-monitor/internal/infrastructure/alerting"
	"github.com/vessel-monitor/internal/infrastructure/coastguard"
	"github.com/vessel-monitor/internal/ledger"
	"github.com/vessel-monitor/internal/monitor"
	"github.com/vessel-monitor/internal/pkg/logger"
	"github.com/vessel-monitor/internal/pkg/metrics"
	"github.com/vessel-monitor/internal/registry"
	"github.com/vessel-monitor/internal/repository/memory"
	"github.com/vessel-monitor/internal/repository/postgres"
	redisrepo "github.com/vessel-monitor/internal/repository/redis"
	"github.com/vessel-monitor/internal/worker"
	"github.com/vessel-monitor/internal/worker/tracking"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Vessel Monitoring Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int64("batch_size", cfg.Worker.BatchSize),
		zap.Duration("stream_read_timeout", cfg.Worker.StreamReadTimeout))

	// 3. Connect to PostgreSQL (violation ledger). Without DB_HOST the
	// ledger lives in memory and is lost on restart.
	var ledgerRepo repository.LedgerRepository
	var db *postgres.DB
	if cfg.Database.Host != "" {
		db, err = postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		ledgerRepo = postgres.NewLedgerRepository(db)
	} else {
		ledgerRepo = memory.NewLedgerRepository()
		log.Warn("DB_HOST not set, violation ledger is in-memory")
	}

	// 4. Connect to Redis. The worker exists to consume streams, so Redis
	// is mandatory here.
	redisClient, err := redisrepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Load the zone registry
	zones, err := loadZones(cfg, log)
	if err != nil {
		log.Fatal("Failed to load zone registry", zap.Error(err))
	}

	// 6. Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		go serveMetrics(cfg.Metrics.Addr, log)
	}

	// 7. Initialize repositories
	streamRepo := redisrepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)
	kvRepo := redisrepo.NewKVRepository(redisClient)
	locationRepo := redisrepo.NewLocationRepository(redisClient)

	// 8. Initialize the alert pipeline
	ledgerSvc := ledger.NewService(ledgerRepo, log, m, ledger.Options{})
	sinks := alerting.NewStreamSinkFactory(streamRepo, log)

	var reporter repository.RegulatoryReporter
	if cfg.Reporting.Enabled {
		reporter = coastguard.NewClient(&cfg.Reporting, log)
		log.Info("Coast guard reporting enabled", zap.String("base_url", cfg.Reporting.BaseURL))
	}

	// 9. Session manager
	manager := monitor.NewManager(monitor.ManagerOptions{
		PollInterval:   cfg.Monitor.PollInterval,
		HistoryLimit:   cfg.Monitor.HistoryLimit,
		DebounceWindow: cfg.Monitor.DebounceWindow,
		MaxSessions:    cfg.Monitor.MaxSessions,
		IdleTimeout:    cfg.Monitor.SessionIdleTimeout,
		AccuracyM:      cfg.Monitor.AccuracyCeilingM,
		Zones:          zones,
		Ledger:         ledgerSvc,
		Sinks:          sinks,
		Reporter:       reporter,
		Location:       locationRepo,
		KV:             kvRepo,
		Logger:         log,
		Metrics:        m,
	})

	// 10. Initialize workers. The control group is instance-scoped so every
	// worker sees every command; only the session owner acts on one.
	hostname, _ := os.Hostname()
	controlGroup := fmt.Sprintf("monitor-control-%s-%d", hostname, os.Getpid())

	positionWorker := tracking.NewPositionWorker(
		streamRepo,
		manager,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.BatchSize,
		log,
		m,
	)
	controlWorker := tracking.NewControlWorker(
		streamRepo,
		manager,
		controlGroup,
		log,
	)

	// 11. Create worker manager and register workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(positionWorker)
	workerManager.Register(controlWorker)

	// 12. Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager.Start(ctx)

	// Start workers
	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	// Stop worker manager first so no new fixes land in sessions
	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	manager.Shutdown(shutdownCtx)

	cancel()

	log.Info("Worker shutdown complete")
}

// loadZones builds a registry handle from ZONES_PATH, falling back to the
// built-in Indian coastal set.
func loadZones(cfg *config.Config, log *zap.Logger) (*registry.Handle, error) {
	var configs []registry.ZoneConfig
	var err error
	if cfg.Zones.Path != "" {
		configs, err = registry.LoadFile(cfg.Zones.Path)
		if err != nil {
			return nil, err
		}
	} else {
		configs = registry.DefaultZones()
		log.Info("ZONES_PATH not set, using the built-in zone set")
	}

	loc, err := time.LoadLocation(cfg.Zones.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid zones timezone %q: %w", cfg.Zones.Timezone, err)
	}

	reg, err := registry.Load(configs, loc)
	if err != nil {
		return nil, err
	}

	log.Info("Zone registry loaded",
		zap.Int("zones", reg.Len()),
		zap.String("timezone", cfg.Zones.Timezone),
	)
	return registry.NewHandle(reg), nil
}

func serveMetrics(addr string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	log.Info("Metrics listener started", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("Metrics listener failed", zap.Error(err))
	}
}
