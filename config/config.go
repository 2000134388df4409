package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"stayease-backend/utils"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	Port        string           `yaml:"port"`
	Database    DatabaseConfig   `yaml:"database"`
	Session     SessionConfig    `yaml:"session"`
	CORSOrigins string           `yaml:"cors_origins"`
	Logging     LoggingConfig    `yaml:"logging"`
	Cache       CacheConfig      `yaml:"cache"`
	Redis       RedisConfig      `yaml:"redis"`
	SMTP        utils.SMTPConfig `yaml:"smtp"`
	PageSize    int              `yaml:"page_size"`
	SeedDemo    bool             `yaml:"seed_demo"`
}

type DatabaseConfig struct {
	Driver     string `yaml:"driver"`
	URL        string `yaml:"url"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Name       string `yaml:"name"`
	SQLitePath string `yaml:"sqlite_path"`
}

type SessionConfig struct {
	Secret       string        `yaml:"secret"`
	TTL          time.Duration `yaml:"ttl"`
	CookieSecure bool          `yaml:"cookie_secure"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type CacheConfig struct {
	MemcachedHost string        `yaml:"memcached_host"`
	LocalTTL      time.Duration `yaml:"local_ttl"`
	RemoteTTL     time.Duration `yaml:"remote_ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func defaults() Config {
	cfg := Config{
		Port:        "8080",
		Session:     SessionConfig{TTL: 24 * time.Hour},
		CORSOrigins: "http://localhost:3000,http://localhost:5173",
		Logging:     LoggingConfig{Level: "info", Format: "text"},
		Cache:       CacheConfig{LocalTTL: 5 * time.Minute, RemoteTTL: 15 * time.Minute},
		SMTP:        utils.SMTPConfig{Port: 587, FromName: "StayEase"},
		PageSize:    12,
	}
	cfg.Database = DatabaseConfig{
		Driver:     DriverMySQL,
		User:       "root",
		Host:       "127.0.0.1",
		Port:       "3306",
		Name:       "stayease",
		SQLitePath: "stayease.db",
	}
	return cfg
}

// Load builds the configuration from defaults, the YAML file named by
// CONFIG_PATH (with ${VAR} expansion) and finally the environment.
func Load() (*Config, error) {
	cfg := defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_PATH")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		expanded := []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(expanded, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = utils.EnvOrDefault("PORT", cfg.Port)

	db := &cfg.Database
	db.Driver = strings.ToLower(utils.EnvOrDefault("DB_DRIVER", db.Driver))
	db.URL = utils.EnvOrDefault("MYSQL_URL", utils.EnvOrDefault("DATABASE_URL", db.URL))
	db.User = utils.EnvOrDefault("DB_USER", db.User)
	db.Password = utils.EnvOrDefault("DB_PASS", db.Password)
	db.Host = utils.EnvOrDefault("DB_HOST", db.Host)
	db.Port = utils.EnvOrDefault("DB_PORT", db.Port)
	db.Name = utils.EnvOrDefault("DB_NAME", db.Name)
	db.SQLitePath = utils.EnvOrDefault("SQLITE_PATH", db.SQLitePath)

	cfg.Session.Secret = utils.EnvOrDefault("JWT_SECRET", cfg.Session.Secret)
	cfg.Session.TTL = utils.EnvDuration("SESSION_TTL", cfg.Session.TTL)
	cfg.Session.CookieSecure = utils.EnvBool("COOKIE_SECURE", cfg.Session.CookieSecure)

	cfg.CORSOrigins = utils.EnvOrDefault("CORS_ORIGINS", cfg.CORSOrigins)

	cfg.Logging.Level = utils.EnvOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = utils.EnvOrDefault("LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.File = utils.EnvOrDefault("LOG_FILE", cfg.Logging.File)

	cfg.Cache.MemcachedHost = utils.EnvOrDefault("MEMCACHED_HOST", cfg.Cache.MemcachedHost)
	cfg.Cache.LocalTTL = utils.EnvDuration("CACHE_TTL", cfg.Cache.LocalTTL)

	cfg.Redis.Addr = utils.EnvOrDefault("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = utils.EnvOrDefault("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = utils.EnvInt("REDIS_DB", cfg.Redis.DB)

	cfg.SMTP.Host = utils.EnvOrDefault("SMTP_HOST", cfg.SMTP.Host)
	cfg.SMTP.Port = utils.EnvInt("SMTP_PORT", cfg.SMTP.Port)
	cfg.SMTP.Username = utils.EnvOrDefault("SMTP_USERNAME", cfg.SMTP.Username)
	cfg.SMTP.Password = utils.EnvOrDefault("SMTP_PASSWORD", cfg.SMTP.Password)
	cfg.SMTP.FromName = utils.EnvOrDefault("SMTP_FROM_NAME", cfg.SMTP.FromName)

	cfg.PageSize = utils.EnvInt("PAGE_SIZE", cfg.PageSize)
	cfg.SeedDemo = utils.EnvBool("SEED_DEMO", cfg.SeedDemo)
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverMySQL, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("DB_DRIVER %q is not one of mysql, sqlite, memory", c.Database.Driver)
	}
	if strings.TrimSpace(c.Session.Secret) == "" {
		return errors.New("JWT_SECRET environment variable is not set")
	}
	if c.PageSize <= 0 || c.PageSize > 100 {
		return fmt.Errorf("PAGE_SIZE must be between 1 and 100, got %d", c.PageSize)
	}
	return nil
}
