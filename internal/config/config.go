package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Wikidata WikidataConfig
	Cache    CacheConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Driver string // "postgres" or "sqlite"

	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	// Path is the sqlite database file when Driver is "sqlite".
	Path string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type WikidataConfig struct {
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
	// RateLimit is the maximum number of queries per second sent to the
	// query service; Burst bounds short spikes.
	RateLimit float64
	Burst     int
}

type CacheConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_USER", "helianthus")
	v.SetDefault("DATABASE_PASSWORD", "helianthus")
	v.SetDefault("DATABASE_NAME", "helianthus")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	v.SetDefault("DATABASE_PATH", "helianthus.db")
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)
	v.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("WIKIDATA_ENDPOINT", "https://query.wikidata.org/sparql")
	v.SetDefault("WIKIDATA_USER_AGENT", "HelianthusIngest/1.0 (https://github.com)")
	v.SetDefault("WIKIDATA_TIMEOUT", "60s")
	v.SetDefault("WIKIDATA_RATE_LIMIT", 2.0)
	v.SetDefault("WIKIDATA_BURST", 4)

	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_ADDR", "localhost:6379")
	v.SetDefault("CACHE_PASSWORD", "")
	v.SetDefault("CACHE_DB", 0)
	v.SetDefault("CACHE_TTL", "5m")

	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Driver:          v.GetString("DATABASE_DRIVER"),
			Host:            v.GetString("DATABASE_HOST"),
			Port:            v.GetInt("DATABASE_PORT"),
			User:            v.GetString("DATABASE_USER"),
			Password:        v.GetString("DATABASE_PASSWORD"),
			Name:            v.GetString("DATABASE_NAME"),
			SSLMode:         v.GetString("DATABASE_SSLMODE"),
			Path:            v.GetString("DATABASE_PATH"),
			MaxOpenConns:    v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DATABASE_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		Wikidata: WikidataConfig{
			Endpoint:  v.GetString("WIKIDATA_ENDPOINT"),
			UserAgent: v.GetString("WIKIDATA_USER_AGENT"),
			Timeout:   parseDuration(v.GetString("WIKIDATA_TIMEOUT"), 60*time.Second),
			RateLimit: v.GetFloat64("WIKIDATA_RATE_LIMIT"),
			Burst:     v.GetInt("WIKIDATA_BURST"),
		},
		Cache: CacheConfig{
			Enabled:  v.GetBool("CACHE_ENABLED"),
			Addr:     v.GetString("CACHE_ADDR"),
			Password: v.GetString("CACHE_PASSWORD"),
			DB:       v.GetInt("CACHE_DB"),
			TTL:      parseDuration(v.GetString("CACHE_TTL"), 5*time.Minute),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
