// Package config defines all configuration structures for the court-data
// resolution service. No I/O or parsing logic lives here, only plain data
// types and validation; loading is in loader.go.
package config

import (
	"fmt"
	"time"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `mapstructure:"format"` // "json" | "console"
}

// RedisConfig holds the optional redis backing for the CAPTCHA session
// store. An empty Addr selects the in-memory store.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
	SessionTTL   time.Duration `mapstructure:"session_ttl"`
}

// KafkaConfig holds the resolution-event publisher parameters. An empty
// broker list disables publishing.
type KafkaConfig struct {
	Brokers      []string      `mapstructure:"brokers"`
	BatchTimeout time.Duration `mapstructure:"batch_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// ArchiveConfig holds the optional MinIO/S3 order-PDF archive parameters.
// An empty Endpoint disables archival; downloads then pass through.
type ArchiveConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	Bucket        string        `mapstructure:"bucket"`
	UseSSL        bool          `mapstructure:"use_ssl"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// VendorConfig describes one paid third-party API (Kleopatra, Surepass,
// Legalkart, ...). Vendors are tried in declaration order during the
// third-party cascade.
type VendorConfig struct {
	Name    string        `mapstructure:"name"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ECourtsConfig describes the official government source: a primary and a
// secondary endpoint tried in that order.
type ECourtsConfig struct {
	EndpointA string        `mapstructure:"endpoint_a"`
	EndpointB string        `mapstructure:"endpoint_b"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// PortalsConfig describes the scraped court portals used in manual mode
// and as the official-mode fallback.
type PortalsConfig struct {
	DistrictBaseURL  string        `mapstructure:"district_base_url"`
	HighCourtBaseURL string        `mapstructure:"high_court_base_url"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// JudgmentsConfig describes the judgments-archive source.
type JudgmentsConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// ProvidersConfig aggregates every upstream source plus the resolution
// mode that selects between them.
type ProvidersConfig struct {
	// Mode is "official", "manual" or "third_party".
	Mode         string          `mapstructure:"mode"`
	ECourts      ECourtsConfig   `mapstructure:"ecourts"`
	Portals      PortalsConfig   `mapstructure:"portals"`
	Vendors      []VendorConfig  `mapstructure:"vendors"`
	Judgments    JudgmentsConfig `mapstructure:"judgments"`
	ProbeTimeout time.Duration   `mapstructure:"probe_timeout"`
}

// Config is the root configuration structure for the service.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error
// as fatal and refuse to start.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|console", c.Log.Format)
	}

	switch c.Providers.Mode {
	case "official", "manual", "third_party":
	default:
		return fmt.Errorf("config: providers.mode %q is invalid; expected official|manual|third_party", c.Providers.Mode)
	}

	seen := map[string]bool{}
	for i, v := range c.Providers.Vendors {
		if v.Name == "" {
			return fmt.Errorf("config: providers.vendors[%d].name is required", i)
		}
		if seen[v.Name] {
			return fmt.Errorf("config: providers.vendors has duplicate name %q", v.Name)
		}
		seen[v.Name] = true
		if v.BaseURL == "" {
			return fmt.Errorf("config: providers.vendors[%d].base_url is required", i)
		}
	}

	if c.Archive.Endpoint != "" && c.Archive.Bucket == "" {
		return fmt.Errorf("config: archive.bucket is required when archive.endpoint is set")
	}

	return nil
}
