package usecase

import (
	"context"
	"fmt"

	"talentboard/internal/domain/freelancer"
	"talentboard/internal/validation"

	"go.uber.org/zap"
)

type FreelancerUsecase interface {
	ListFreelancers(ctx context.Context) ([]freelancer.Freelancer, error)
	SeedFreelancers(ctx context.Context) ([]freelancer.Freelancer, error)
}

type Freelancer struct {
	repo      freelancer.Repository
	fixtures  []freelancer.Input
	validator *validation.Validator
	cache     listing
	logger    *zap.Logger
}

// NewFreelancerUsecase wires the seed fixtures into the usecase. cache may be nil.
func NewFreelancerUsecase(repo freelancer.Repository, fixtures []freelancer.Input, v *validation.Validator, cache ListCache, logger *zap.Logger) *Freelancer {
	if v == nil {
		v = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Freelancer{
		repo: repo, fixtures: fixtures, validator: v, logger: logger,
		cache: listing{cache: cache, collection: freelancer.Collection, logger: logger},
	}
}

func (u *Freelancer) ListFreelancers(ctx context.Context) ([]freelancer.Freelancer, error) {
	gen, cached := u.cache.generation(ctx)
	if cached {
		var items []freelancer.Freelancer
		if u.cache.get(ctx, gen, &items) {
			return items, nil
		}
	}

	items, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: find freelancers: %w", ErrInternal, err)
	}
	if items == nil {
		items = []freelancer.Freelancer{}
	}

	if cached {
		u.cache.put(ctx, gen, items)
	}
	return items, nil
}

// SeedFreelancers validates every fixture before writing any, then inserts
// them as one batch. Repeated calls insert the same records again.
func (u *Freelancer) SeedFreelancers(ctx context.Context) ([]freelancer.Freelancer, error) {
	items := make([]freelancer.Freelancer, 0, len(u.fixtures))
	for i, in := range u.fixtures {
		if err := u.validator.Struct(i, in); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		items = append(items, in.Freelancer())
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no freelancer fixtures", ErrInvalidInput)
	}

	inserted, err := u.repo.InsertMany(ctx, items)
	// A failed batch may still have written a prefix, so the listing is
	// dropped either way.
	u.cache.invalidate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: insert freelancers: %w", ErrInternal, err)
	}
	return inserted, nil
}
