// Package config loads process configuration from the environment.
// A .env file in the working directory is read first for local development;
// variables already set in the environment win.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	Server     Server           `envPrefix:"CASEBOOK_"`
	Auth       AuthConfig       `envPrefix:"JWT_"`
	Log        LogConfig        `envPrefix:"LOG_"`
	Database   DatabaseConfig   `envPrefix:"DATABASE_"`
	Redis      RedisConfig      `envPrefix:"REDIS_"`
	Kafka      KafkaConfig      `envPrefix:"KAFKA_"`
	Reputation ReputationConfig `envPrefix:"REPUTATION_"`
	Bootstrap  BootstrapConfig  `envPrefix:"BOOTSTRAP_ADMIN_"`
	RateLimit  RateLimitConfig  `envPrefix:"RATELIMIT_"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// Storage selects "postgres" or "memory".
	Storage string `env:"STORAGE" envDefault:"memory"`
}

type AuthConfig struct {
	SigningKey string        `env:"SIGNING_KEY" envDefault:"dev-secret-key-change-in-production"`
	Issuer     string        `env:"ISSUER" envDefault:"casebook"`
	Audience   string        `env:"AUDIENCE" envDefault:"casebook-api"`
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"json"`
}

type DatabaseConfig struct {
	URL             string        `env:"URL"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME" envDefault:"5m"`
}

// RedisConfig backs the reputation leaderboard. An empty URL disables it.
type RedisConfig struct {
	URL          string        `env:"URL"`
	PoolSize     int           `env:"POOL_SIZE" envDefault:"10"`
	MinIdleConns int           `env:"MIN_IDLE_CONNS" envDefault:"2"`
	DialTimeout  time.Duration `env:"DIAL_TIMEOUT" envDefault:"5s"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"3s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"3s"`
}

// KafkaConfig backs the outbox relay. No brokers disables the relay.
type KafkaConfig struct {
	Brokers      []string      `env:"BROKERS" envSeparator:","`
	Topic        string        `env:"TOPIC" envDefault:"casebook.events"`
	Partitions   int32         `env:"PARTITIONS" envDefault:"3"`
	Replication  int16         `env:"REPLICATION" envDefault:"1"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1s"`
	BatchSize    int           `env:"BATCH_SIZE" envDefault:"100"`
}

type ReputationConfig struct {
	// CatalogFile overrides the embedded badge seed catalog.
	CatalogFile    string `env:"CATALOG_FILE"`
	LeaderboardKey string `env:"LEADERBOARD_KEY" envDefault:"casebook:leaderboard"`
}

// BootstrapConfig seeds the first ADMIN account at startup. ADMIN cannot
// self-register; an empty username skips seeding.
type BootstrapConfig struct {
	Username string `env:"USERNAME"`
	Email    string `env:"EMAIL" envDefault:"admin@casebook.local"`
	Password string `env:"PASSWORD"`
}

// RateLimitConfig bounds traffic to /auth and every state-changing request
// per client IP. Buckets live in Redis when it is configured and in memory
// otherwise; the breaker thresholds decide when Redis is treated as down.
type RateLimitConfig struct {
	Disabled          bool          `env:"DISABLED" envDefault:"false"`
	AuthRequests      int           `env:"AUTH_REQUESTS" envDefault:"10"`
	AuthWindow        time.Duration `env:"AUTH_WINDOW" envDefault:"1m"`
	WriteRequests     int           `env:"WRITE_REQUESTS" envDefault:"120"`
	WriteWindow       time.Duration `env:"WRITE_WINDOW" envDefault:"1m"`
	BreakerFailures   int           `env:"BREAKER_FAILURES" envDefault:"5"`
	BreakerRecoveries int           `env:"BREAKER_RECOVERIES" envDefault:"3"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the environment without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Server.Storage != "memory" && cfg.Server.Storage != "postgres" {
		return Config{}, fmt.Errorf("CASEBOOK_STORAGE must be memory or postgres, got %q", cfg.Server.Storage)
	}
	if cfg.Server.Storage == "postgres" && cfg.Database.URL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required when CASEBOOK_STORAGE=postgres")
	}
	if cfg.Bootstrap.Username != "" && len(cfg.Bootstrap.Password) < 8 {
		return Config{}, fmt.Errorf("BOOTSTRAP_ADMIN_PASSWORD must be at least 8 characters")
	}
	if !cfg.RateLimit.Disabled && (cfg.RateLimit.AuthRequests < 1 || cfg.RateLimit.AuthWindow <= 0) {
		return Config{}, fmt.Errorf("RATELIMIT_AUTH_REQUESTS and RATELIMIT_AUTH_WINDOW must be positive")
	}
	if !cfg.RateLimit.Disabled && (cfg.RateLimit.WriteRequests < 1 || cfg.RateLimit.WriteWindow <= 0) {
		return Config{}, fmt.Errorf("RATELIMIT_WRITE_REQUESTS and RATELIMIT_WRITE_WINDOW must be positive")
	}
	return cfg, nil
}

// KafkaEnabled reports whether the outbox relay should run.
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0
}
