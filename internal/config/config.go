package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

var (
	ErrMissingDSN        = errors.New("database dsn is required for the postgres driver")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string   `mapstructure:"env"`
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
	CORS     CORS     `mapstructure:"cors"`
	Metrics  Metrics  `mapstructure:"metrics"`
}

type Server struct {
	Port            int           `mapstructure:"port"`
	Swagger         bool          `mapstructure:"swagger"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Database contains connection and pool settings for the relational store.
type Database struct {
	Driver          string        `mapstructure:"driver"`            // postgres or sqlite
	DSN             string        `mapstructure:"dsn"`               // connection string, DATABASE_URL also accepted
	MaxOpenConns    int           `mapstructure:"max_open_conns"`    // maximum number of open connections in the pool
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`    // maximum number of idle connections kept around
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"` // zero keeps connections forever
	Seed            bool          `mapstructure:"seed"`              // load the fixture when tables are empty
}

type CORS struct {
	AllowOrigins     []string `mapstructure:"allow_origins"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

type Metrics struct {
	Enabled bool `mapstructure:"enabled"`
}

// Addr returns the listen address for the HTTP server.
func (s Server) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Load reads configuration from an optional .env file, an optional
// config/config.yaml and TRIVIA_* environment variables, in increasing priority.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "TRIVIA_ENV", "APP_ENV")
	_ = v.BindEnv("database.dsn", "TRIVIA_DATABASE_DSN", "DATABASE_URL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the database section and fills the sqlite default path.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return ErrMissingDSN
		}
	case DriverSQLite:
		if c.Database.DSN == "" {
			c.Database.DSN = "trivia.db"
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.Database.Driver)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.swagger", true)
	v.SetDefault("server.shutdown_timeout", "10s")

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.seed", false)

	v.SetDefault("cors.allow_origins", []string{"*"})
	v.SetDefault("cors.allow_methods", []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allow_headers", []string{"Content-Type", "Authorization"})
	v.SetDefault("cors.allow_credentials", true)

	v.SetDefault("metrics.enabled", true)
}
