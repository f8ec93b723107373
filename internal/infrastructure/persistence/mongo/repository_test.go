package mongo

import (
	"context"
	"testing"

	"talentboard/internal/domain/freelancer"
	"talentboard/internal/domain/recruiter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFreelancerRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find all empty", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.freelancers", mtest.FirstBatch))

		out, err := NewFreelancerRepository(mt.DB).FindAll(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, out)
		assert.Empty(mt, out)
	})

	mt.Run("find all", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.freelancers", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Sai Vignesh"},
			{Key: "skills", Value: bson.A{"React", "Go"}},
			{Key: "rating", Value: 4.9},
			{Key: "totalEarnings", Value: "₹57,430"},
			{Key: "hoursWorked", Value: int32(58)},
			{Key: "latitude", Value: 16.3067},
			{Key: "longitude", Value: 80.4365},
		}))

		out, err := NewFreelancerRepository(mt.DB).FindAll(context.Background())
		require.NoError(mt, err)
		require.Len(mt, out, 1)
		assert.Equal(mt, id.Hex(), out[0].ID)
		assert.Equal(mt, []string{"React", "Go"}, out[0].Skills)
		assert.Equal(mt, 58, out[0].HoursWorked)
		assert.InDelta(mt, 80.4365, out[0].Longitude, 1e-9)
	})

	mt.Run("insert many", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		in := []freelancer.Freelancer{{Name: "A"}, {Name: "A"}}
		out, err := NewFreelancerRepository(mt.DB).InsertMany(context.Background(), in)
		require.NoError(mt, err)
		require.Len(mt, out, 2)
		assert.Len(mt, out[0].ID, 24)
		assert.NotEqual(mt, out[0].ID, out[1].ID)
		assert.NotNil(mt, out[0].Skills)
	})

	mt.Run("insert many error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    121,
			Name:    "DocumentValidationFailure",
			Message: "Document failed validation",
		}))

		_, err := NewFreelancerRepository(mt.DB).InsertMany(context.Background(), []freelancer.Freelancer{{Name: "A"}})
		require.Error(mt, err)
	})
}

func TestRecruiterRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert then map", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		out, err := NewRecruiterRepository(mt.DB).InsertMany(context.Background(), []recruiter.Recruiter{{
			Name:            "John Doe",
			TotalListings:   18,
			SuccessfulHires: 24,
		}})
		require.NoError(mt, err)
		require.Len(mt, out, 1)
		assert.Equal(mt, 24, out[0].SuccessfulHires)
		_, err = primitive.ObjectIDFromHex(out[0].ID)
		assert.NoError(mt, err)
	})

	mt.Run("find error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 13, Name: "Unauthorized", Message: "denied"}))

		_, err := NewRecruiterRepository(mt.DB).FindAll(context.Background())
		require.Error(mt, err)
	})
}
