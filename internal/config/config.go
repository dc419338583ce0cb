package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress            string
	DatabaseURI           string
	CatalogServiceAddress string
	CASURL                string
	RedisAddr             string
	RedisPassword         string
	RedisDB               int
	KafkaBrokers          []string
	KafkaTopic            string
	SessionSecret         string
	TokenStrategy         string
	SessionTTL            time.Duration
	AdminTokenHash        string
	RequestTimeout        time.Duration
	ShutdownTimeout       time.Duration
	EventWorkers          int
	EventBuffer           int
	LogLevel              string
}

const (
	TokenStrategyHMAC = "hmac"
	TokenStrategyJWT  = "jwt"
)

const (
	defaultEnvFile         = ".env"
	defaultRunAddress      = ":8080"
	defaultCASURL          = "https://fed.princeton.edu/cas/"
	defaultRedisAddr       = "localhost:6379"
	defaultKafkaTopic      = "tigercart.orders"
	defaultSessionSecret   = "change-me-in-production"
	defaultTokenStrategy   = TokenStrategyHMAC
	defaultSessionTTL      = 24 * time.Hour
	defaultRequestTimeout  = 5 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultEventWorkers    = 2
	defaultEventBuffer     = 128
	defaultLogLevel        = "info"
)

// Load parses configuration from an optional .env file, environment variables and flags.
func Load() (*Config, error) {
	if err := loadDotEnv(defaultEnvFile); err != nil {
		return nil, err
	}
	return load(os.Args[1:], os.LookupEnv)
}

// loadDotEnv exports variables from path without overriding the environment.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:            getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:           getString(lookup, "DATABASE_URI", ""),
		CatalogServiceAddress: getString(lookup, "CATALOG_SERVICE_ADDRESS", ""),
		CASURL:                getString(lookup, "CAS_URL", defaultCASURL),
		RedisAddr:             getString(lookup, "REDIS_ADDR", defaultRedisAddr),
		RedisPassword:         getString(lookup, "REDIS_PASSWORD", ""),
		RedisDB:               getInt(lookup, "REDIS_DB", 0),
		KafkaTopic:            getString(lookup, "KAFKA_TOPIC", defaultKafkaTopic),
		SessionSecret:         getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		TokenStrategy:         getString(lookup, "TOKEN_STRATEGY", defaultTokenStrategy),
		SessionTTL:            getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		AdminTokenHash:        getString(lookup, "ADMIN_TOKEN_HASH", ""),
		RequestTimeout:        getDuration(lookup, "REQUEST_TIMEOUT", defaultRequestTimeout),
		ShutdownTimeout:       getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		EventWorkers:          getInt(lookup, "EVENT_WORKERS", defaultEventWorkers),
		EventBuffer:           getInt(lookup, "EVENT_BUFFER", defaultEventBuffer),
		LogLevel:              getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("tigercart", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		brokers            = getString(lookup, "KAFKA_BROKERS", "")
		sessionTTLStr      = cfg.SessionTTL.String()
		requestTimeoutStr  = cfg.RequestTimeout.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.CatalogServiceAddress, "c", cfg.CatalogServiceAddress, "Catalog data service base URL")
	fs.StringVar(&cfg.CASURL, "cas", cfg.CASURL, "CAS server base URL")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for carts")
	fs.StringVar(&brokers, "kafka", brokers, "Comma separated Kafka brokers, empty disables publishing")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&cfg.TokenStrategy, "token-strategy", cfg.TokenStrategy, "Session token format: hmac or jwt")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session token lifetime")
	fs.StringVar(&requestTimeoutStr, "request-timeout", requestTimeoutStr, "Timeout for outbound catalog and CAS calls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.EventWorkers, "event-workers", cfg.EventWorkers, "Number of concurrent event publishers")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.RequestTimeout, err = time.ParseDuration(requestTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = strings.TrimSpace(string(content))
	}

	cfg.KafkaBrokers = splitList(brokers)

	if cfg.EventWorkers <= 0 {
		cfg.EventWorkers = defaultEventWorkers
	}

	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = defaultEventBuffer
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if !strings.HasSuffix(cfg.CASURL, "/") {
		cfg.CASURL += "/"
	}

	switch cfg.TokenStrategy {
	case TokenStrategyHMAC, TokenStrategyJWT:
	default:
		return nil, fmt.Errorf("unknown token strategy %q", cfg.TokenStrategy)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.CatalogServiceAddress == "" {
		return nil, fmt.Errorf("catalog service address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
