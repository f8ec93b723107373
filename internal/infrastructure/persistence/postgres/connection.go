package postgres

import (
	"context"
	"fmt"
	"sync"

	"talentboard/internal/database"
	"talentboard/internal/domain/freelancer"
	"talentboard/internal/domain/recruiter"
)

// Store keeps each collection in its own table of JSONB documents keyed by a
// generated UUID.
type Store struct {
	db database.DB

	schemaMu    sync.Mutex
	schemaReady bool
}

func NewStore(db database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Name() string { return "PostgreSQL" }

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil db")
	}
	return s.db.Ping(ctx)
}

func (s *Store) Close(_ context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// EnsureSchema creates the collection tables when they are missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil db")
	}
	for _, table := range []string{freelancer.Collection, recruiter.Collection} {
		_, err := s.db.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+table+` (
			id  UUID PRIMARY KEY,
			doc JSONB NOT NULL
		)`)
		if err != nil {
			return fmt.Errorf("ensure table %s: %w", table, err)
		}
	}
	return nil
}

// Prepare runs EnsureSchema until it succeeds once. Repositories built by the
// store call it before every statement, so tables appear as soon as the
// database is reachable.
func (s *Store) Prepare(ctx context.Context) error {
	s.schemaMu.Lock()
	defer s.schemaMu.Unlock()

	if s.schemaReady {
		return nil
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}
	s.schemaReady = true
	return nil
}

func (s *Store) Freelancers() *FreelancerRepository {
	return &FreelancerRepository{db: s.db, prepare: s.Prepare}
}

func (s *Store) Recruiters() *RecruiterRepository {
	return &RecruiterRepository{db: s.db, prepare: s.Prepare}
}
