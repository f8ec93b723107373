package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"

	defaultPort          = "5004"
	defaultAppName       = "talentboard"
	defaultEnvironment   = "development"
	defaultMongoDatabase = "test"
	defaultCacheTTL      = 30 * time.Second
	defaultShutdown      = 10 * time.Second
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	Cache    CacheConfig
	Fixtures FixturesConfig
}

type AppConfig struct {
	AppName         string
	Environment     string
	HTTPPort        string
	ShutdownTimeout time.Duration
}

type StoreConfig struct {
	Driver        string
	MongoURI      string
	MongoDatabase string
	PostgresURL   string
	PoolMaxConns  int32
}

type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	TTL           time.Duration
}

type FixturesConfig struct {
	Dir string
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

func Load() (Config, error) {
	cfg := Config{}

	var missing, invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	seconds := func(key string, def time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return time.Duration(v) * time.Second
	}

	cfg.App = AppConfig{
		AppName:         opt("APP_NAME", defaultAppName),
		Environment:     opt("APP_ENV", defaultEnvironment),
		HTTPPort:        opt("PORT", defaultPort),
		ShutdownTimeout: seconds("SHUTDOWN_TIMEOUT", defaultShutdown),
	}
	if _, err := strconv.ParseUint(strings.TrimPrefix(cfg.App.HTTPPort, ":"), 10, 16); err != nil {
		invalid = append(invalid, "PORT")
	}

	cfg.Store = StoreConfig{
		Driver:        strings.ToLower(opt("STORE_DRIVER", DriverMongo)),
		MongoDatabase: opt("MONGO_DATABASE", defaultMongoDatabase),
	}
	switch cfg.Store.Driver {
	case DriverMongo:
		// Optional: without it the store reports a connection error per request.
		cfg.Store.MongoURI = opt("MONGO_URI", "")
	case DriverPostgres:
		cfg.Store.PostgresURL = req("DATABASE_URL")
		if raw := opt("DB_POOL_MAX_CONNS", ""); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 32)
			if err != nil || n < 0 {
				invalid = append(invalid, "DB_POOL_MAX_CONNS")
			}
			cfg.Store.PoolMaxConns = int32(n)
		}
	default:
		invalid = append(invalid, "STORE_DRIVER")
	}

	cfg.Cache = CacheConfig{
		RedisAddr:     opt("REDIS_ADDR", ""),
		RedisPassword: opt("REDIS_PASSWORD", ""),
		TTL:           seconds("REDIS_TTL", defaultCacheTTL),
	}

	cfg.Fixtures = FixturesConfig{Dir: opt("FIXTURES_DIR", "")}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
