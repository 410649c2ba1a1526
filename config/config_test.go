package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	path := writeConfig(t, `
store:
  mongo:
    uri: mongodb://localhost:27017
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout())
	assert.Equal(t, "mongo", cfg.Store.Driver)
	assert.Equal(t, "airfleet", cfg.Store.Mongo.Database)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Pagination.DefaultLimit)

	opts := cfg.StoreOptions()
	assert.Equal(t, 10*time.Second, opts.Mongo.ConnectTimeout)
	assert.Equal(t, 5*time.Second, opts.Mongo.OperationTimeout)
}

func TestLoadConfig_MongoURIFromEnv(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	path := writeConfig(t, `
store:
  driver: mongo
  mongo:
    database: fleet
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Store.Mongo.URI)
	assert.Equal(t, "fleet", cfg.StoreOptions().Mongo.Database)
}

func TestLoadConfig_Postgres(t *testing.T) {
	path := writeConfig(t, `
store:
  driver: postgres
  postgres:
    host: db
    user: fleet
    password: secret
    name: airfleet
log:
  level: debug
  format: console
pagination:
  default_limit: 25
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "host=db port=5432 user=fleet password=secret dbname=airfleet sslmode=disable", cfg.Store.Postgres.DSN())
	assert.Equal(t, cfg.Store.Postgres.DSN(), cfg.StoreOptions().PostgresDSN)
	assert.Equal(t, 25, cfg.Pagination.DefaultLimit)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	tests := map[string]string{
		"missing mongo uri": "store:\n  driver: mongo\n",
		"unknown driver":    "store:\n  driver: cassandra\n",
		"postgres no host":  "store:\n  driver: postgres\n",
		"bad log level":     "store:\n  driver: memory\nlog:\n  level: loud\n",
		"bad log format":    "store:\n  driver: memory\nlog:\n  format: xml\n",
		"limit too large":   "store:\n  driver: memory\npagination:\n  default_limit: 500\n",
		"not yaml":          "store: [",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
