package seeder

import (
	"context"
	"errors"
	"testing"

	"talentboard/internal/domain/freelancer"
	"talentboard/internal/domain/recruiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFreelancers struct {
	calls int
	err   error
}

func (s *stubFreelancers) ListFreelancers(context.Context) ([]freelancer.Freelancer, error) {
	return nil, nil
}

func (s *stubFreelancers) SeedFreelancers(context.Context) ([]freelancer.Freelancer, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return make([]freelancer.Freelancer, 5), nil
}

type stubRecruiters struct{ calls int }

func (s *stubRecruiters) ListRecruiters(context.Context) ([]recruiter.Recruiter, error) {
	return nil, nil
}

func (s *stubRecruiters) SeedRecruiters(context.Context) ([]recruiter.Recruiter, error) {
	s.calls++
	return make([]recruiter.Recruiter, 5), nil
}

func TestRunner_RunsAll(t *testing.T) {
	f, r := &stubFreelancers{}, &stubRecruiters{}

	err := Runner{Seeders: Defaults(f, r)}.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, 1, r.calls)
}

func TestRunner_StopsOnFailure(t *testing.T) {
	f, r := &stubFreelancers{err: errors.New("insert failed")}, &stubRecruiters{}

	err := Runner{Seeders: Defaults(f, r)}.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed freelancers")
	assert.Equal(t, 0, r.calls)
}

func TestDefaults_Filter(t *testing.T) {
	f, r := &stubFreelancers{}, &stubRecruiters{}

	seeders := Defaults(f, r, "recruiters")
	require.Len(t, seeders, 1)
	assert.Equal(t, "recruiters", seeders[0].Name())

	assert.Empty(t, Defaults(f, r, "jobs"))
}
