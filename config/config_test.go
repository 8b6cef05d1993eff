package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: bazaar-test
  log:
    level: info
storage:
  driver: mongo
mongo:
  uri: mongodb://localhost:27017
  database: bazaar
geocoding:
  apiKey: file-key
  timeout: 3s
search:
  maxRadiusKm: 100
`

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unit.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("GEOCODING_APIKEY", "env-key")
	t.Setenv("SEARCH_MAXRADIUSKM", "50")

	cfg, err := LoadWithEnv[Config]("unit")
	require.NoError(t, err)

	assert.Equal(t, "bazaar-test", cfg.Env.ServiceName)
	assert.Equal(t, "env-key", cfg.Geocoding.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Geocoding.Timeout)
	assert.InDelta(t, 50.0, cfg.Search.MaxRadiusKm, 0.0001)
	assert.Equal(t, StorageDriverMongo, cfg.Storage.Driver)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Postgres: nil}
	applyDefaults(cfg)

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultGeocodingBaseURL, cfg.Geocoding.BaseURL)
	assert.Equal(t, defaultGeocodingTimeout, cfg.Geocoding.Timeout)
	assert.InDelta(t, float64(defaultRadiusKm), cfg.Search.DefaultRadiusKm, 0)
	assert.InDelta(t, float64(defaultMaxRadiusKm), cfg.Search.MaxRadiusKm, 0)
	assert.Equal(t, defaultPageSize, cfg.Search.DefaultPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Search.MaxPageSize)
	assert.Equal(t, defaultPopularLimit, cfg.Search.PopularLimit)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.NotNil(t, cfg.Geocoding.Breaker)
	assert.NotNil(t, cfg.Geocoding.Cache)
	assert.NotNil(t, cfg.PubSub)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{
			name: "mongo driver with uri",
			mutate: func(cfg *Config) {
				cfg.Storage = &StorageConfig{Driver: StorageDriverMongo}
				cfg.Mongo = &MongoConfig{URI: "mongodb://localhost"}
			},
		},
		{
			name: "mongo driver without uri",
			mutate: func(cfg *Config) {
				cfg.Storage = &StorageConfig{Driver: StorageDriverMongo}
			},
			wantErr: true,
		},
		{
			name: "postgres driver without section",
			mutate: func(cfg *Config) {
				cfg.Storage = &StorageConfig{Driver: StorageDriverPostgres}
			},
			wantErr: true,
		},
		{
			name: "unknown driver",
			mutate: func(cfg *Config) {
				cfg.Storage = &StorageConfig{Driver: "sqlite"}
			},
			wantErr: true,
		},
		{
			name: "default radius above max",
			mutate: func(cfg *Config) {
				cfg.Storage = &StorageConfig{Driver: StorageDriverMongo}
				cfg.Mongo = &MongoConfig{URI: "mongodb://localhost"}
				cfg.Search = &SearchConfig{DefaultRadiusKm: 200, MaxRadiusKm: 100}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			tt.mutate(cfg)
			applyDefaults(cfg)

			err := cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
