package main

// @title Vessel Boundary Monitor API
// @version 1.0.0
// @description Maritime boundary monitoring and violation alerting for fishing vessels. Ingests position fixes, evaluates them against geofenced zones (territorial waters, EEZ limits, restricted areas, seasonal bans) and raises graded alerts before and after a boundary is crossed.
// @description
// @description Main capabilities:
// @description - Position ingestion, pushed per fix, batched, or via Redis Streams
// @description - Per-vessel monitoring sessions with history and debounced alerting
// @description - Ad-hoc point checks against the zone registry
// @description - A queryable violation ledger with acknowledge/resolve lifecycle
// @description - Automatic reporting of emergency violations to the coast guard

// @contact.name API Support
// @contact.email support@vessel-monitor.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

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

	_ "github.com/vessel-monitor/docs/swagger"
	"github.com/vessel-monitor/internal/config"
	httpDelivery "github.com/vessel-monitor/internal/delivery/http"
	"github.com/vessel-monitor/internal/delivery/http/handler"
	"github.com/vessel-monitor/internal/detector"
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
	"github.com/vessel-monitor/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Vessel Boundary Monitor API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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
		log.Info("PostgreSQL connected")
	} else {
		ledgerRepo = memory.NewLedgerRepository()
		log.Warn("DB_HOST not set, violation ledger is in-memory")
	}

	// 4. Connect to Redis. Without REDIS_HOST the monitor runs standalone:
	// no stream routing, no checkpoints, no last-position store.
	var redisClient *redisrepo.Redis
	var streamRepo repository.StreamRepository
	var kvRepo repository.KVRepository
	var locationRepo repository.LocationRepository
	if cfg.Redis.Host != "" {
		redisClient, err = redisrepo.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		streamRepo = redisrepo.NewStreamRepository(redisClient.Client(), log, cfg.Worker.StreamReadTimeout)
		kvRepo = redisrepo.NewKVRepository(redisClient)
		locationRepo = redisrepo.NewLocationRepository(redisClient)
	} else {
		log.Warn("REDIS_HOST not set, running without streams and checkpoints")
	}

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if db != nil {
		if err := db.Health(ctx); err != nil {
			log.Fatal("PostgreSQL health check failed", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}
	log.Info("All connections healthy")

	// 6. Load the zone registry
	reg, err := loadZones(cfg, log)
	if err != nil {
		log.Fatal("Failed to load zone registry", zap.Error(err))
	}
	zones := registry.NewHandle(reg)

	// 7. Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
		go serveMetrics(cfg.Metrics.Addr, log)
	}

	// 8. Initialize the alert pipeline
	ledgerSvc := ledger.NewService(ledgerRepo, log, m, ledger.Options{})

	var sinks repository.SinkFactory
	if streamRepo != nil {
		sinks = alerting.NewStreamSinkFactory(streamRepo, log)
	} else {
		sinks = alerting.NewLogSinkFactory(log)
	}

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

	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()
	manager.Start(rootCtx)

	log.Info("Session manager started",
		zap.Int("max_sessions", cfg.Monitor.MaxSessions),
		zap.Duration("poll_interval", cfg.Monitor.PollInterval),
	)

	// 10. Initialize Use Cases
	positionUC := usecase.NewPositionUseCase(manager, locationRepo, streamRepo, log, m)
	zoneUC := usecase.NewZoneUseCase(zones, detector.New(log, m), log)
	violationUC := usecase.NewViolationUseCase(ledgerSvc, manager, streamRepo, log)
	sessionUC := usecase.NewSessionUseCase(manager, streamRepo, log)

	// 11. Initialize HTTP Handlers
	positionHandler := handler.NewPositionHandler(positionUC, log)
	zoneHandler := handler.NewZoneHandler(zoneUC, log)
	violationHandler := handler.NewViolationHandler(violationUC, log)
	sessionHandler := handler.NewSessionHandler(sessionUC, log)

	// 12. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		positionHandler,
		zoneHandler,
		violationHandler,
		sessionHandler,
	)

	// 13. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 14. SIGHUP swaps the zone registry without a restart
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)
	go func() {
		for range reload {
			fresh, err := loadZones(cfg, log)
			if err != nil {
				log.Error("Zone reload rejected, keeping current set", zap.Error(err))
				continue
			}
			zones.Swap(fresh)
			log.Info("Zone registry reloaded", zap.Int("zones", fresh.Len()))
		}
	}()

	// 15. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Stop sessions after the server so in-flight requests still see them.
	manager.Shutdown(shutdownCtx)

	log.Info("Server stopped successfully")
}

// loadZones builds a registry from ZONES_PATH, falling back to the
// built-in Indian coastal set.
func loadZones(cfg *config.Config, log *zap.Logger) (*registry.Registry, error) {
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
	return reg, nil
}

func serveMetrics(addr string, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	log.Info("Metrics listener started", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error("Metrics listener failed", zap.Error(err))
	}
}
