package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	Seed            bool
}

type Config struct {
	Port               string
	DB                 DBConfig
	LogLevel           string
	LogFormat          string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	// a missing .env is fine, the environment may already carry everything
	_ = godotenv.Load()

	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("port", "3000")
	v.SetDefault("db.max_open_conns", 50)
	v.SetDefault("db.max_idle_conns", 25)
	v.SetDefault("db.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("db.seed", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("shutdown_timeout", 10*time.Second)

	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("db.dsn", "DATABASE_URL", "DB_CONNECTION_STRING")
	_ = v.BindEnv("db.max_open_conns", "DB_MAX_OPEN_CONNS")
	_ = v.BindEnv("db.max_idle_conns", "DB_MAX_IDLE_CONNS")
	_ = v.BindEnv("db.conn_max_lifetime", "DB_CONN_MAX_LIFETIME")
	_ = v.BindEnv("db.auto_migrate", "DB_AUTO_MIGRATE")
	_ = v.BindEnv("db.seed", "DB_SEED")
	_ = v.BindEnv("log.level", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "LOG_FORMAT")
	_ = v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")
	_ = v.BindEnv("shutdown_timeout", "SHUTDOWN_TIMEOUT")
	return v
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port: v.GetString("port"),
		DB: DBConfig{
			DSN:             v.GetString("db.dsn"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
			AutoMigrate:     v.GetBool("db.auto_migrate"),
			Seed:            v.GetBool("db.seed"),
		},
		LogLevel:           strings.ToLower(v.GetString("log.level")),
		LogFormat:          strings.ToLower(v.GetString("log.format")),
		CORSAllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
		ShutdownTimeout:    v.GetDuration("shutdown_timeout"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port '%s': must be a number", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	if c.DB.DSN == "" {
		return fmt.Errorf("missing DATABASE_URL (or DB_CONNECTION_STRING) in environment variables")
	}
	if c.DB.MaxOpenConns < 1 {
		return fmt.Errorf("invalid DB_MAX_OPEN_CONNS %d: must be positive", c.DB.MaxOpenConns)
	}
	if c.DB.MaxIdleConns < 0 || c.DB.MaxIdleConns > c.DB.MaxOpenConns {
		return fmt.Errorf("invalid DB_MAX_IDLE_CONNS %d: must be between 0 and %d", c.DB.MaxIdleConns, c.DB.MaxOpenConns)
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid LOG_FORMAT '%s': must be json or console", c.LogFormat)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid SHUTDOWN_TIMEOUT %s: must be positive", c.ShutdownTimeout)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
