// Command apiserver runs the court-data resolution HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/application/resolution"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/messaging/kafka"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/prometheus"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/session"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/storage/minio"
	apihttp "github.com/nandeeshlaxetti-prog/courtdata/internal/interfaces/http"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/provider"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "apiserver:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Session store: redis when configured, otherwise process memory.
	var sessions session.Store
	if cfg.Redis.Addr != "" {
		sessions, err = session.NewRedisStore(ctx, cfg.Redis)
		if err != nil {
			return err
		}
	} else {
		sessions = session.NewMemoryStore(cfg.Redis.SessionTTL)
	}
	defer sessions.Close()

	events := kafka.NewNopPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		events = kafka.NewProducer(cfg.Kafka, logger)
	}
	defer events.Close()

	archive := minio.NewNopArchive()
	if cfg.Archive.Endpoint != "" {
		archive, err = minio.NewArchive(ctx, cfg.Archive, logger)
		if err != nil {
			return err
		}
	}

	metrics := prometheus.NewMetrics()
	factory := provider.NewFactory(provider.Deps{
		Cfg:      cfg.Providers,
		Detector: provider.NewCaptchaDetector(),
		Probe:    provider.NewAlwaysAvailableProbe(),
		Sessions: sessions,
		Logger:   logger,
	})

	orchestrator, err := resolution.New(cfg.Providers, factory, sessions, archive, metrics, events, logger)
	if err != nil {
		return err
	}

	if configPath != "" {
		// In-flight resolutions keep the configuration they started
		// with; a change takes effect on restart.
		config.Watch(configPath, func(_ *config.Config) {
			logger.Warn("configuration file changed on disk, restart to apply")
		})
	}

	router := apihttp.NewRouter(cfg, orchestrator, metrics, logger)
	server := apihttp.NewServer(cfg.Server, router, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start() }()

	logger.Info("apiserver started",
		logging.Int("port", cfg.Server.Port),
		logging.String("mode", cfg.Providers.Mode))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	return server.Shutdown(context.Background())
}
