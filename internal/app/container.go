package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"talentboard/internal/config"
	"talentboard/internal/database"
	dbpostgres "talentboard/internal/database/postgres"
	"talentboard/internal/domain/freelancer"
	"talentboard/internal/domain/recruiter"
	"talentboard/internal/fixtures"
	"talentboard/internal/infrastructure/cache"
	mongostore "talentboard/internal/infrastructure/persistence/mongo"
	pgstore "talentboard/internal/infrastructure/persistence/postgres"
	"talentboard/internal/usecase"
	"talentboard/internal/validation"

	"go.uber.org/zap"
)

const storePingTimeout = 5 * time.Second

type Container struct {
	Config config.Config
	Logger *zap.Logger
	Store  database.Store
	Cache  *cache.Redis

	Freelancers usecase.FreelancerUsecase
	Recruiters  usecase.RecruiterUsecase
}

// NewContainer opens the store and builds the usecases. An unreachable store
// is logged and tolerated: requests fail individually until it comes back.
func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	set, err := fixtures.Load(cfg.Fixtures.Dir)
	if err != nil {
		return nil, fmt.Errorf("load fixtures: %w", err)
	}

	store, freelancers, recruiters, err := openStore(ctx, cfg.Store, logger)
	if err != nil {
		return nil, err
	}

	var listCache usecase.ListCache
	var redisCache *cache.Redis
	if cfg.Cache.Enabled() {
		redisCache = cache.NewRedis(ctx, cfg.Cache, logger)
		listCache = redisCache
	}

	v := validation.New()
	return &Container{
		Config:      cfg,
		Logger:      logger,
		Store:       store,
		Cache:       redisCache,
		Freelancers: usecase.NewFreelancerUsecase(freelancers, set.Freelancers, v, listCache, logger),
		Recruiters:  usecase.NewRecruiterUsecase(recruiters, set.Recruiters, v, listCache, logger),
	}, nil
}

func openStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (database.Store, freelancer.Repository, recruiter.Repository, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		s, err := mongostore.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		checkConnection(ctx, s, logger)
		return s, s.Freelancers(), s.Recruiters(), nil

	case config.DriverPostgres:
		pool, err := dbpostgres.Open(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		s := pgstore.NewStore(pool)
		if checkConnection(ctx, s, logger) {
			if err := s.Prepare(ctx); err != nil {
				logger.Error("PostgreSQL schema setup failed, retrying on first use", zap.Error(err))
			}
		}
		return s, s.Freelancers(), s.Recruiters(), nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func checkConnection(ctx context.Context, s database.Store, logger *zap.Logger) bool {
	pingCtx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	if err := s.Ping(pingCtx); err != nil {
		logger.Error(s.Name()+" connection error", zap.Error(err))
		return false
	}
	logger.Info("Connected to " + s.Name())
	return true
}

func (c *Container) Close(ctx context.Context) error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.Store != nil {
		if err := c.Store.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	return errors.Join(errs...)
}
