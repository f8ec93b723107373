package mongo

import (
	"context"

	"talentboard/internal/domain/freelancer"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type freelancerDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Role          string             `bson:"role"`
	Location      string             `bson:"location"`
	Bio           string             `bson:"bio"`
	Skills        []string           `bson:"skills"`
	Rating        float64            `bson:"rating"`
	TotalEarnings string             `bson:"totalEarnings"`
	HoursWorked   int                `bson:"hoursWorked"`
	Latitude      float64            `bson:"latitude"`
	Longitude     float64            `bson:"longitude"`
}

type FreelancerRepository struct {
	coll func(context.Context) (*mongo.Collection, error)
}

var _ freelancer.Repository = (*FreelancerRepository)(nil)

func NewFreelancerRepository(db *mongo.Database) *FreelancerRepository {
	return &FreelancerRepository{coll: fixedCollection(db, freelancer.Collection)}
}

func (r *FreelancerRepository) FindAll(ctx context.Context) ([]freelancer.Freelancer, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []freelancerDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]freelancer.Freelancer, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *FreelancerRepository) InsertMany(ctx context.Context, items []freelancer.Freelancer) ([]freelancer.Freelancer, error) {
	docs := make([]interface{}, 0, len(items))
	out := make([]freelancer.Freelancer, 0, len(items))
	for _, it := range items {
		d := newFreelancerDocument(it)
		docs = append(docs, d)
		out = append(out, d.toDomain())
	}

	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return out, nil
}

func newFreelancerDocument(f freelancer.Freelancer) freelancerDocument {
	skills := f.Skills
	if skills == nil {
		skills = []string{}
	}
	return freelancerDocument{
		ID:            primitive.NewObjectID(),
		Name:          f.Name,
		Role:          f.Role,
		Location:      f.Location,
		Bio:           f.Bio,
		Skills:        skills,
		Rating:        f.Rating,
		TotalEarnings: f.TotalEarnings,
		HoursWorked:   f.HoursWorked,
		Latitude:      f.Latitude,
		Longitude:     f.Longitude,
	}
}

func (d freelancerDocument) toDomain() freelancer.Freelancer {
	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}
	return freelancer.Freelancer{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Role:          d.Role,
		Location:      d.Location,
		Bio:           d.Bio,
		Skills:        skills,
		Rating:        d.Rating,
		TotalEarnings: d.TotalEarnings,
		HoursWorked:   d.HoursWorked,
		Latitude:      d.Latitude,
		Longitude:     d.Longitude,
	}
}
