// Package cli implements courtctl, the operator command line. Commands
// build the same resolution stack the API server uses and talk to the
// configured sources directly, which makes courtctl useful for verifying
// configuration before a deployment.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nandeeshlaxetti-prog/courtdata/internal/application/resolution"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/config"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/messaging/kafka"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/logging"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/monitoring/prometheus"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/session"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/infrastructure/storage/minio"
	"github.com/nandeeshlaxetti-prog/courtdata/internal/provider"
)

var configPath string

// NewRootCommand assembles the courtctl command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "courtctl",
		Short:         "Resolve Indian court case data from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")

	root.AddCommand(
		newLookupCommand(),
		newSearchCommand(),
		newImportCommand(),
		newProbeCommand(),
	)
	return root
}

// Execute runs courtctl and exits non-zero on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// buildOrchestrator loads configuration and wires a minimal resolution
// stack for one-shot commands: quiet logging, no kafka, no archive.
func buildOrchestrator(_ context.Context) (*resolution.Orchestrator, error) {
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(logging.Config{Level: "error", Format: "console"})
	if err != nil {
		return nil, err
	}

	sessions := session.NewMemoryStore(cfg.Redis.SessionTTL)
	factory := provider.NewFactory(provider.Deps{
		Cfg:      cfg.Providers,
		Detector: provider.NewCaptchaDetector(),
		Probe:    provider.NewAlwaysAvailableProbe(),
		Sessions: sessions,
		Logger:   logger,
	})

	return resolution.New(cfg.Providers, factory, sessions,
		minio.NewNopArchive(), prometheus.NewMetrics(), kafka.NewNopPublisher(), logger)
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
