package recruiter

import "context"

const Collection = "recruiters"

type Repository interface {
	FindAll(ctx context.Context) ([]Recruiter, error)
	InsertMany(ctx context.Context, items []Recruiter) ([]Recruiter, error)
}
