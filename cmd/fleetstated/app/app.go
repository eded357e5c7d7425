package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/edgefleet/fleetstate/pkg/aggregator"
	"github.com/edgefleet/fleetstate/pkg/config"
	"github.com/edgefleet/fleetstate/pkg/db"
	"github.com/edgefleet/fleetstate/pkg/ingest"
	"github.com/edgefleet/fleetstate/pkg/logger"
	"github.com/edgefleet/fleetstate/pkg/metricstore"
	"github.com/edgefleet/fleetstate/pkg/models"
	"github.com/edgefleet/fleetstate/pkg/reaper"
	"github.com/edgefleet/fleetstate/pkg/registry"
)

const shutdownTimeout = 10 * time.Second

// Run boots the fleet state daemon: storage, heartbeat ingest, the stale
// device reaper, and the dashboard HTTP surface. Blocks until SIGINT or
// SIGTERM.
func Run(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootLog, err := logger.New(nil)
	if err != nil {
		return err
	}

	var cfg models.CoreServiceConfig
	if err := config.NewConfig(bootLog).LoadAndValidate(ctx, configPath, &cfg); err != nil {
		return err
	}

	mainLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}

	store, err := openStore(ctx, &cfg, mainLogger)
	if err != nil {
		return err
	}
	defer store.Close()

	reg := registry.NewDeviceRegistry(store, mainLogger,
		time.Duration(cfg.LivenessWindow), time.Duration(cfg.StorageTimeout))

	recorder := openRecorder(&cfg, mainLogger)
	defer recorder.Close()

	ingestor := ingest.NewIngestor(reg, recorder, mainLogger, time.Duration(cfg.MaxClockSkew))

	cache := openCache(&cfg)
	defer func() {
		if err := cache.Close(); err != nil {
			mainLogger.Warn().Err(err).Msg("Error closing snapshot cache")
		}
	}()

	agg := aggregator.NewAggregator(reg, cache, mainLogger)
	reg.SetCacheInvalidator(agg)

	sweeper := reaper.NewReaper(reg, mainLogger, time.Duration(cfg.ReapInterval))
	go sweeper.Start(ctx)

	if cfg.NATS != nil && cfg.NATS.URL != "" {
		nc, err := nats.Connect(cfg.NATS.URL, nats.Name("fleetstated"))
		if err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		defer nc.Close()

		js, err := jetstream.New(nc)
		if err != nil {
			return fmt.Errorf("failed to create JetStream context: %w", err)
		}

		if err := ingest.EnsureStream(ctx, js, cfg.NATS); err != nil {
			return err
		}

		consumer, err := ingest.NewConsumer(ctx, js, ingestor, cfg.NATS, mainLogger)
		if err != nil {
			return err
		}

		go consumer.ProcessMessages(ctx)
	} else {
		mainLogger.Warn().Msg("NATS not configured, heartbeat ingest disabled")
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           newRouter(reg, ingestor, agg, mainLogger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		mainLogger.Info().Str("listen_addr", cfg.ListenAddr).Msg("Starting HTTP server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	mainLogger.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// openStore selects Postgres when a database host is configured, the
// in-memory store otherwise.
func openStore(ctx context.Context, cfg *models.CoreServiceConfig, log logger.Logger) (db.Service, error) {
	if cfg.Database != nil && cfg.Database.Host != "" {
		pg, err := db.New(ctx, cfg.Database, log)
		if err != nil {
			return nil, err
		}

		log.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.Database).Msg("Using Postgres storage")

		return pg, nil
	}

	log.Warn().Msg("No database configured, using in-memory storage")

	return db.NewMemoryStore(), nil
}

func openRecorder(cfg *models.CoreServiceConfig, log logger.Logger) metricstore.Recorder {
	if cfg.Influx == nil || cfg.Influx.URL == "" {
		return metricstore.NopRecorder{}
	}

	log.Info().Str("url", cfg.Influx.URL).Str("bucket", cfg.Influx.Bucket).Msg("Recording device metrics to InfluxDB")

	return metricstore.NewInfluxRecorder(cfg.Influx, log)
}

func openCache(cfg *models.CoreServiceConfig) aggregator.SnapshotCache {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return aggregator.NopCache{}
	}

	return aggregator.NewRedisCache(cfg.Redis)
}
