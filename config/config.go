// Package config loads environment variables and provides a typed Config used across the service.
// It applies sensible defaults so the binary can run locally with minimal setup.
// For the ingest daemon's required settings, use ValidateIngestReady.
package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// IRC
	IRCAddr  string   // host:port of the chat edge (TLS)
	Nick     string   // login for the connection; anonymous justinfan works read-only
	Channels []string // channels to join, without the '#'

	// HTTP
	ListenAddr string // /metrics and /healthz listener

	// Archive
	DBDsn             string        // Postgres sink; empty disables it
	NDJSONDir         string        // gzip NDJSON sink directory; empty disables it
	ArchiveMaxBatch   int           // rows per Postgres batch flush
	ArchiveFlushEvery time.Duration // max age of a pending batch
	ArchiveQueueSize  int           // bounded queue between decoder and sink
}

// Load reads environment variables and applies defaults. It doesn't fail when
// no channels are configured; use ValidateIngestReady() when you require the
// chat reader. Missing optional variables disable features (e.g. sinks).
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.IRCAddr = os.Getenv("IRC_ADDR")
	if cfg.IRCAddr == "" {
		cfg.IRCAddr = "irc.chat.twitch.tv:6697"
	}

	cfg.Nick = os.Getenv("TWITCH_NICK")
	if cfg.Nick == "" {
		// anonymous read-only login; the numeric suffix avoids nick clashes
		cfg.Nick = fmt.Sprintf("justinfan%d", 10000+rand.Intn(90000))
	}

	if v := os.Getenv("TWITCH_CHANNELS"); v != "" {
		for _, ch := range strings.Split(v, ",") {
			ch = strings.TrimPrefix(strings.TrimSpace(ch), "#")
			if ch != "" {
				cfg.Channels = append(cfg.Channels, strings.ToLower(ch))
			}
		}
	}

	cfg.ListenAddr = os.Getenv("LISTEN_ADDR")
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	cfg.DBDsn = os.Getenv("DB_DSN")
	cfg.NDJSONDir = os.Getenv("NDJSON_DIR")

	cfg.ArchiveMaxBatch = 200
	if v := os.Getenv("ARCHIVE_MAX_BATCH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid ARCHIVE_MAX_BATCH: %q", v)
		}
		cfg.ArchiveMaxBatch = n
	}

	cfg.ArchiveFlushEvery = 2 * time.Second
	if v := os.Getenv("ARCHIVE_FLUSH_EVERY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid ARCHIVE_FLUSH_EVERY: %q", v)
		}
		cfg.ArchiveFlushEvery = d
	}

	cfg.ArchiveQueueSize = 4096
	if v := os.Getenv("ARCHIVE_QUEUE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid ARCHIVE_QUEUE_SIZE: %q", v)
		}
		cfg.ArchiveQueueSize = n
	}

	return cfg, nil
}

// ValidateIngestReady checks required fields for the chat reader path.
func (c *Config) ValidateIngestReady() error {
	if len(c.Channels) == 0 {
		return fmt.Errorf("missing env: require TWITCH_CHANNELS (comma-separated channel list)")
	}
	return nil
}
