package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// AppConfig holds global application configuration
var AppConfig *Config
var (
	once    sync.Once
	loadErr error
)

type Config struct {
	AppName string `mapstructure:"app_name"`
	Port    string `mapstructure:"port"`
	Env     string `mapstructure:"app_env"`
	Debug   bool   `mapstructure:"debug"`

	Catalog CatalogConfig `mapstructure:"catalog"`
	Session SessionConfig `mapstructure:"session"`
	Log     LogConfig     `mapstructure:"log"`
	Redis   RedisConfig   `mapstructure:"redis"`

	// ToastMS is how long the add/remove acknowledgement stays visible.
	ToastMS int `mapstructure:"toast_ms"`
}

// CatalogConfig points at the remote plant catalog API.
type CatalogConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Timeout in seconds; 0 leaves the transport default (no timeout).
	Timeout              int `mapstructure:"timeout"`
	MaxRequestsPerSecond int `mapstructure:"max_requests_per_second"`
}

// SessionConfig controls where visitor carts live and for how long.
type SessionConfig struct {
	Store  string        `mapstructure:"store"`
	TTL    time.Duration `mapstructure:"ttl"`
	Cookie string        `mapstructure:"cookie"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RedisConfig is read from REDIS_ADDR, REDIS_PASS and REDIS_DB. An empty Addr
// disables redis.
type RedisConfig struct {
	Addr string `mapstructure:"addr"`
	Pass string `mapstructure:"pass"`
	DB   int    `mapstructure:"db"`
}

// LoadAppConfig initializes the global AppConfig variable. When the environment
// holds a malformed value the error is logged and returned, and AppConfig is
// left at Defaults() so callers that choose to continue still have a config.
func LoadAppConfig() error {
	once.Do(func() {
		cfg, err := Load()
		if err != nil {
			loadErr = err
			log.WithError(err).Error("Invalid configuration, no environment overrides applied")
			cfg = Defaults()
		}
		AppConfig = cfg
	})
	return loadErr
}

// Load reads configuration from the environment (after LoadEnv) on top of defaults.
// CATALOG_BASE_URL overrides catalog.base_url and so on.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Catalog.BaseURL = strings.TrimRight(cfg.Catalog.BaseURL, "/")
	return &cfg, nil
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "GreenEarth")
	v.SetDefault("port", "8080")
	v.SetDefault("app_env", "development")
	v.SetDefault("debug", false)
	v.SetDefault("toast_ms", 1800)

	v.SetDefault("catalog.base_url", "https://openapi.programming-hero.com")
	v.SetDefault("catalog.timeout", 0)
	v.SetDefault("catalog.max_requests_per_second", 0)

	v.SetDefault("session.store", "memory")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.cookie", "ge_session")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.pass", "")
	v.SetDefault("redis.db", 0)
}
