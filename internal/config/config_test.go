package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_NAME", "APP_ENV", "PORT", "SHUTDOWN_TIMEOUT",
		"STORE_DRIVER", "MONGO_URI", "MONGO_DATABASE", "DATABASE_URL", "DB_POOL_MAX_CONNS",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_TTL", "FIXTURES_DIR",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5004", cfg.App.HTTPPort)
	assert.Equal(t, "talentboard", cfg.App.AppName)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Store.MongoURI)
	assert.Equal(t, "test", cfg.Store.MongoDatabase)
	assert.False(t, cfg.Cache.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Empty(t, cfg.Fixtures.Dir)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_PortOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", " 8080 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
}

func TestLoad_MissingMongoURIIsNotAnError(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Empty(t, cfg.Store.MongoURI)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/talent")
	t.Setenv("DB_POOL_MAX_CONNS", "8")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/talent", cfg.Store.PostgresURL)
	assert.EqualValues(t, 8, cfg.Store.PoolMaxConns)
	assert.Empty(t, cfg.Store.MongoURI)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"driver":  {"STORE_DRIVER", "couch"},
		"port":    {"PORT", "http"},
		"ttl":     {"REDIS_TTL", "-3"},
		"timeout": {"SHUTDOWN_TIMEOUT", "soon"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("MONGO_URI", "mongodb://localhost:27017")
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, errInvalidEnv))
			assert.Contains(t, err.Error(), kv[0])
		})
	}
}

func TestLoad_CacheEnabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TTL", "120")
	t.Setenv("APP_ENV", "PRODUCTION")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Cache.Enabled())
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.True(t, cfg.IsProduction())
}
