package seeder

import (
	"context"

	"talentboard/internal/domain/freelancer"
	"talentboard/internal/domain/recruiter"
	"talentboard/internal/usecase"
)

type FreelancersSeeder struct {
	UC usecase.FreelancerUsecase
}

func (FreelancersSeeder) Name() string { return freelancer.Collection }

func (s FreelancersSeeder) Run(ctx context.Context) (int, error) {
	items, err := s.UC.SeedFreelancers(ctx)
	return len(items), err
}

type RecruitersSeeder struct {
	UC usecase.RecruiterUsecase
}

func (RecruitersSeeder) Name() string { return recruiter.Collection }

func (s RecruitersSeeder) Run(ctx context.Context) (int, error) {
	items, err := s.UC.SeedRecruiters(ctx)
	return len(items), err
}

// Defaults returns the seeders for the requested collections, or all of them
// when none are named.
func Defaults(f usecase.FreelancerUsecase, r usecase.RecruiterUsecase, only ...string) []Seeder {
	all := []Seeder{FreelancersSeeder{UC: f}, RecruitersSeeder{UC: r}}
	if len(only) == 0 {
		return all
	}

	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}
	out := make([]Seeder, 0, len(all))
	for _, s := range all {
		if want[s.Name()] {
			out = append(out, s)
		}
	}
	return out
}
