package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const (
	DefaultHost        = "127.0.0.1"
	DefaultPort        = 5000
	DefaultDatabaseURL = "student_results.db"
	DefaultCacheTTL    = 30 * time.Second
)

type Config struct {
	Host         string
	Port         int
	Debug        bool
	DatabaseURL  string
	DatabaseType string
	RedisAddr    string
	CacheTTL     time.Duration
}

// Addr returns the listen address built from Host and Port
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// LoadEnv loads variables from the given .env files (or ".env" when none
// are given). A missing file is not an error; variables already present
// in the environment are never overwritten.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		slog.Debug("no .env file loaded, using process environment", "error", err)
	}
}

// envFirst returns the first non-empty value among keys
func envFirst(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

// ParseFlags parses CLI flags, falling back to environment variables and
// then to defaults. HOST, PORT and DEBUG also accept the FLASK_ prefixed
// names used by older deployments.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var debug string
	var cacheTTL string

	fs := flag.NewFlagSet("results-dashboard", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.StringVar(&cfg.Host, "host", "", "Listen host")
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&debug, "debug", "", "Enable debug logging (true/false)")

	// Storage
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Cache
	fs.StringVar(&cfg.RedisAddr, "redis", "", "Redis address for the dashboard cache (empty disables)")
	fs.StringVar(&cacheTTL, "cache-ttl", "", "Dashboard cache TTL, e.g. 30s")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Host == "" {
		cfg.Host = envFirst("HOST", "FLASK_HOST")
		if cfg.Host == "" {
			cfg.Host = DefaultHost
		}
	}

	if cfg.Port == 0 {
		if portStr := envFirst("PORT", "FLASK_PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, fmt.Errorf("invalid port env variable %q", portStr)
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if debug == "" {
		debug = envFirst("DEBUG", "FLASK_DEBUG")
	}
	cfg.Debug = strings.EqualFold(strings.TrimSpace(debug), "true")

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultDatabaseURL
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}

	if cacheTTL == "" {
		cacheTTL = os.Getenv("CACHE_TTL")
	}
	cfg.CacheTTL = DefaultCacheTTL
	if cacheTTL != "" {
		ttl, err := time.ParseDuration(cacheTTL)
		if err != nil {
			return Config{}, errors.New("invalid CACHE_TTL value")
		}
		cfg.CacheTTL = ttl
	}

	return cfg, nil
}
