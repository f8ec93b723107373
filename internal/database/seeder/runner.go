package seeder

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

// Run executes each seeder once, in order, and stops at the first failure.
func (r Runner) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		n, err := s.Run(ctx)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		logger.Info("seeded collection", zap.String("collection", s.Name()), zap.Int("inserted", n))
	}
	return nil
}
