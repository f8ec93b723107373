package freelancer

import "context"

const Collection = "freelancers"

type Repository interface {
	FindAll(ctx context.Context) ([]Freelancer, error)
	// InsertMany writes all records in one batch and returns them with
	// their assigned IDs, in input order.
	InsertMany(ctx context.Context, items []Freelancer) ([]Freelancer, error)
}
