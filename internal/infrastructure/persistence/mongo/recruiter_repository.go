package mongo

import (
	"context"

	"talentboard/internal/domain/recruiter"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type recruiterDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone"`
	Company         string             `bson:"company"`
	Location        string             `bson:"location"`
	TotalListings   int                `bson:"totalListings"`
	SuccessfulHires int                `bson:"successfulHires"`
	Experience      string             `bson:"experience"`
	Bio             string             `bson:"bio"`
}

type RecruiterRepository struct {
	coll func(context.Context) (*mongo.Collection, error)
}

var _ recruiter.Repository = (*RecruiterRepository)(nil)

func NewRecruiterRepository(db *mongo.Database) *RecruiterRepository {
	return &RecruiterRepository{coll: fixedCollection(db, recruiter.Collection)}
}

func (r *RecruiterRepository) FindAll(ctx context.Context) ([]recruiter.Recruiter, error) {
	coll, err := r.coll(ctx)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	var docs []recruiterDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]recruiter.Recruiter, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *RecruiterRepository) InsertMany(ctx context.Context, items []recruiter.Recruiter) ([]recruiter.Recruiter, error) {
	docs := make([]interface{}, 0, len(items))
	out := make([]recruiter.Recruiter, 0, len(items))
	for _, it := range items {
		d := recruiterDocument{
			ID:              primitive.NewObjectID(),
			Name:            it.Name,
			Email:           it.Email,
			Phone:           it.Phone,
			Company:         it.Company,
			Location:        it.Location,
			TotalListings:   it.TotalListings,
			SuccessfulHires: it.SuccessfulHires,
			Experience:      it.Experience,
			Bio:             it.Bio,
		}
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

func (d recruiterDocument) toDomain() recruiter.Recruiter {
	return recruiter.Recruiter{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		Company:         d.Company,
		Location:        d.Location,
		TotalListings:   d.TotalListings,
		SuccessfulHires: d.SuccessfulHires,
		Experience:      d.Experience,
		Bio:             d.Bio,
	}
}
