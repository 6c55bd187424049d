package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	// BackendRedis stores documents in Redis.
	BackendRedis = "redis"
	// BackendMemory keeps documents in process memory (dev/test only).
	BackendMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile    string        // path to the catalog.yaml video seed file
	ReloadInterval time.Duration // interval to reload the catalog (default: 24h)

	StoreBackend string // "redis" | "memory"

	// Redis (required when StoreBackend is "redis")
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("YV_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("YV_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("YV_LOG_LEVEL", "info"),
		PrettyLog: mustBool("YV_PRETTY_LOG", true),

		// Video catalog
		CatalogFile:    getenv("YV_CATALOG_FILE", "/app/catalog.yaml"),
		ReloadInterval: mustDuration("YV_RELOAD_CATALOG_INTERVAL", 24*time.Hour),

		// Document store
		StoreBackend: getenv("YV_STORE_BACKEND", BackendRedis),
	}

	switch cfg.StoreBackend {
	case BackendMemory:
		// No connection settings needed.
	case BackendRedis:
		cfg.RedisAddr = requireEnv("YV_REDIS_ADDR")
		cfg.RedisUser = getenv("YV_REDIS_USERNAME", "default")
		cfg.RedisPasswordRequired = mustBool("YV_REDIS_PASSWORD_REQUIRED", true)
		cfg.RedisPassword = getenv("YV_REDIS_PASSWORD", "")
		cfg.RedisDB = getenvInt("YV_REDIS_DB", 0)
		cfg.RedisDT = mustDuration("YV_REDIS_DIAL_TIMEOUT", 5*time.Second)
		cfg.RedisRT = mustDuration("YV_REDIS_READ_TIMEOUT", 3*time.Second)
		cfg.RedisWT = mustDuration("YV_REDIS_WRITE_TIMEOUT", 3*time.Second)
		cfg.RedisMaxWait = mustDuration("YV_REDIS_MAX_WAIT", 10*time.Second)
		cfg.RedisPingTimeout = mustDuration("YV_REDIS_PING_TIMEOUT", 5*time.Second)
		cfg.RedisPoolSize = getenvInt("YV_REDIS_POOL_SIZE", 10)
		cfg.RedisConnectTimeout = mustDuration("YV_REDIS_CONNECT_TIMEOUT", 30*time.Second)
		cfg.RedisRetryInterval = mustDuration("YV_REDIS_RETRY_INTERVAL", 2*time.Second)
		cfg.RedisWarnThreshold = getenvInt("YV_REDIS_WARN_THRESHOLD", 3)

		if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
			panic("❌ FATAL: YV_REDIS_PASSWORD is required when YV_REDIS_PASSWORD_REQUIRED=true")
		}
	default:
		panic(fmt.Sprintf("❌ FATAL: Invalid YV_STORE_BACKEND %q (want %q or %q)",
			cfg.StoreBackend, BackendRedis, BackendMemory))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		if cfg.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
