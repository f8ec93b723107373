package postgres

import (
	"context"

	"talentboard/internal/database"
	"talentboard/internal/domain/freelancer"
)

type FreelancerRepository struct {
	db      database.DB
	prepare func(context.Context) error
}

var _ freelancer.Repository = (*FreelancerRepository)(nil)

func NewFreelancerRepository(db database.DB) *FreelancerRepository {
	return &FreelancerRepository{db: db}
}

func (r *FreelancerRepository) FindAll(ctx context.Context) ([]freelancer.Freelancer, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	return findDocuments(ctx, r.db, freelancer.Collection, withFreelancerID)
}

func (r *FreelancerRepository) InsertMany(ctx context.Context, items []freelancer.Freelancer) ([]freelancer.Freelancer, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	return insertDocuments(ctx, r.db, freelancer.Collection, items, withFreelancerID)
}

func (r *FreelancerRepository) ready(ctx context.Context) error {
	if r.prepare == nil {
		return nil
	}
	return r.prepare(ctx)
}

func withFreelancerID(f freelancer.Freelancer, id string) freelancer.Freelancer {
	f.ID = id
	return f
}
