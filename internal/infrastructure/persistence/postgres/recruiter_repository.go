package postgres

import (
	"context"

	"talentboard/internal/database"
	"talentboard/internal/domain/recruiter"
)

type RecruiterRepository struct {
	db      database.DB
	prepare func(context.Context) error
}

var _ recruiter.Repository = (*RecruiterRepository)(nil)

func NewRecruiterRepository(db database.DB) *RecruiterRepository {
	return &RecruiterRepository{db: db}
}

func (r *RecruiterRepository) FindAll(ctx context.Context) ([]recruiter.Recruiter, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	return findDocuments(ctx, r.db, recruiter.Collection, withRecruiterID)
}

func (r *RecruiterRepository) InsertMany(ctx context.Context, items []recruiter.Recruiter) ([]recruiter.Recruiter, error) {
	if err := r.ready(ctx); err != nil {
		return nil, err
	}
	return insertDocuments(ctx, r.db, recruiter.Collection, items, withRecruiterID)
}

func (r *RecruiterRepository) ready(ctx context.Context) error {
	if r.prepare == nil {
		return nil
	}
	return r.prepare(ctx)
}

func withRecruiterID(rec recruiter.Recruiter, id string) recruiter.Recruiter {
	rec.ID = id
	return rec
}
