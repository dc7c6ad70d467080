package config

import "time"

// Default timeouts. Paid and government API calls get the long timeout;
// connectivity probes the short one. A timed-out call is treated like a
// network failure and triggers the next cascade step.
const (
	DefaultUpstreamTimeout = 30 * time.Second
	DefaultProbeTimeout    = 5 * time.Second
)

// ApplyDefaults fills in platform defaults for any unset field. It never
// overrides a value the operator supplied.
func ApplyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}

	if c.Redis.DialTimeout == 0 {
		c.Redis.DialTimeout = 5 * time.Second
	}
	if c.Redis.ReadTimeout == 0 {
		c.Redis.ReadTimeout = 3 * time.Second
	}
	if c.Redis.WriteTimeout == 0 {
		c.Redis.WriteTimeout = 3 * time.Second
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "courtdata"
	}
	if c.Redis.SessionTTL == 0 {
		c.Redis.SessionTTL = 15 * time.Minute
	}

	if c.Kafka.BatchTimeout == 0 {
		c.Kafka.BatchTimeout = time.Second
	}
	if c.Kafka.WriteTimeout == 0 {
		c.Kafka.WriteTimeout = 10 * time.Second
	}

	if c.Archive.PresignExpiry == 0 {
		c.Archive.PresignExpiry = time.Hour
	}

	if c.Providers.Mode == "" {
		c.Providers.Mode = "official"
	}
	if c.Providers.ECourts.Timeout == 0 {
		c.Providers.ECourts.Timeout = DefaultUpstreamTimeout
	}
	if c.Providers.Portals.Timeout == 0 {
		c.Providers.Portals.Timeout = DefaultUpstreamTimeout
	}
	if c.Providers.Judgments.Timeout == 0 {
		c.Providers.Judgments.Timeout = DefaultUpstreamTimeout
	}
	if c.Providers.ProbeTimeout == 0 {
		c.Providers.ProbeTimeout = DefaultProbeTimeout
	}
	for i := range c.Providers.Vendors {
		if c.Providers.Vendors[i].Timeout == 0 {
			c.Providers.Vendors[i].Timeout = DefaultUpstreamTimeout
		}
	}
}

// NewDefaultConfig returns a Config populated entirely from defaults.
// Used by entrypoints when no config file is present.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
