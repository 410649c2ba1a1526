package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Domenick1991/airfleet/internal/logger"
	"github.com/Domenick1991/airfleet/internal/query"
	"github.com/Domenick1991/airfleet/internal/store"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Store      StoreConfig      `yaml:"store"`
	Log        logger.Config    `yaml:"log"`
	Pagination PaginationConfig `yaml:"pagination"`
}

type HTTPConfig struct {
	Address                string `yaml:"address"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
	Swagger                bool   `yaml:"swagger"`
}

func (h HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(h.ShutdownTimeoutSeconds) * time.Second
}

type StoreConfig struct {
	Driver   string         `yaml:"driver"`
	Mongo    MongoConfig    `yaml:"mongo"`
	Postgres DatabaseConfig `yaml:"postgres"`
}

type MongoConfig struct {
	URI                     string `yaml:"uri"`
	Database                string `yaml:"database"`
	ConnectTimeoutSeconds   int    `yaml:"connect_timeout_seconds"`
	OperationTimeoutSeconds int    `yaml:"operation_timeout_seconds"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit"`
}

// StoreOptions translates the store section for store.Open.
func (c *Config) StoreOptions() store.Options {
	return store.Options{
		Driver: c.Store.Driver,
		Mongo: store.MongoConfig{
			URI:              c.Store.Mongo.URI,
			Database:         c.Store.Mongo.Database,
			ConnectTimeout:   time.Duration(c.Store.Mongo.ConnectTimeoutSeconds) * time.Second,
			OperationTimeout: time.Duration(c.Store.Mongo.OperationTimeoutSeconds) * time.Second,
		},
		PostgresDSN: c.Store.Postgres.DSN(),
	}
}

// Validate fills defaults and rejects values the server cannot start with.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.HTTP.ShutdownTimeoutSeconds <= 0 {
		c.HTTP.ShutdownTimeoutSeconds = 5
	}

	if c.Store.Driver == "" {
		c.Store.Driver = store.DriverMongo
	}
	switch c.Store.Driver {
	case store.DriverMongo:
		if c.Store.Mongo.URI == "" {
			return fmt.Errorf("store.mongo.uri is required for the mongo driver")
		}
		if c.Store.Mongo.Database == "" {
			c.Store.Mongo.Database = "airfleet"
		}
	case store.DriverPostgres:
		if c.Store.Postgres.Host == "" || c.Store.Postgres.Name == "" {
			return fmt.Errorf("store.postgres.host and store.postgres.name are required for the postgres driver")
		}
		if c.Store.Postgres.Port == 0 {
			c.Store.Postgres.Port = 5432
		}
		if c.Store.Postgres.SSLMode == "" {
			c.Store.Postgres.SSLMode = "disable"
		}
	case store.DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Store.Mongo.ConnectTimeoutSeconds <= 0 {
		c.Store.Mongo.ConnectTimeoutSeconds = 10
	}
	if c.Store.Mongo.OperationTimeoutSeconds <= 0 {
		c.Store.Mongo.OperationTimeoutSeconds = 5
	}

	switch c.Log.Level {
	case "":
		c.Log.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "":
		c.Log.Format = logger.FormatJSON
	case logger.FormatJSON, logger.FormatConsole:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}

	if c.Pagination.DefaultLimit == 0 {
		c.Pagination.DefaultLimit = query.DefaultLimit
	}
	if c.Pagination.DefaultLimit < 1 || c.Pagination.DefaultLimit > query.MaxLimit {
		return fmt.Errorf("pagination.default_limit must be between 1 and %d", query.MaxLimit)
	}
	return nil
}

// LoadConfig reads the YAML file at path. MONGO_URI, when set, overrides
// store.mongo.uri.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Store.Mongo.URI = uri
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
