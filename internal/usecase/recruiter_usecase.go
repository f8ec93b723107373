package usecase

import (
	"context"
	"fmt"

	"talentboard/internal/domain/recruiter"
	"talentboard/internal/validation"

	"go.uber.org/zap"
)

type RecruiterUsecase interface {
	ListRecruiters(ctx context.Context) ([]recruiter.Recruiter, error)
	SeedRecruiters(ctx context.Context) ([]recruiter.Recruiter, error)
}

type Recruiter struct {
	repo      recruiter.Repository
	fixtures  []recruiter.Input
	validator *validation.Validator
	cache     listing
	logger    *zap.Logger
}

func NewRecruiterUsecase(repo recruiter.Repository, fixtures []recruiter.Input, v *validation.Validator, cache ListCache, logger *zap.Logger) *Recruiter {
	if v == nil {
		v = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recruiter{
		repo: repo, fixtures: fixtures, validator: v, logger: logger,
		cache: listing{cache: cache, collection: recruiter.Collection, logger: logger},
	}
}

func (u *Recruiter) ListRecruiters(ctx context.Context) ([]recruiter.Recruiter, error) {
	gen, cached := u.cache.generation(ctx)
	if cached {
		var items []recruiter.Recruiter
		if u.cache.get(ctx, gen, &items) {
			return items, nil
		}
	}

	items, err := u.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: find recruiters: %w", ErrInternal, err)
	}
	if items == nil {
		items = []recruiter.Recruiter{}
	}

	if cached {
		u.cache.put(ctx, gen, items)
	}
	return items, nil
}

func (u *Recruiter) SeedRecruiters(ctx context.Context) ([]recruiter.Recruiter, error) {
	items := make([]recruiter.Recruiter, 0, len(u.fixtures))
	for i, in := range u.fixtures {
		if err := u.validator.Struct(i, in); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		items = append(items, in.Recruiter())
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no recruiter fixtures", ErrInvalidInput)
	}

	inserted, err := u.repo.InsertMany(ctx, items)
	// A failed batch may still have written a prefix, so the listing is
	// dropped either way.
	u.cache.invalidate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: insert recruiters: %w", ErrInternal, err)
	}
	return inserted, nil
}
