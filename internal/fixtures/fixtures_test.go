package fixtures

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	set, err := Load("")
	require.NoError(t, err)

	require.Len(t, set.Freelancers, 5)
	require.Len(t, set.Recruiters, 5)

	first := set.Freelancers[0]
	assert.Equal(t, "Sai Vignesh", first.Name)
	assert.Equal(t, []string{"React", "Node.js", "MongoDB", "Tailwind CSS", "Blockchain"}, first.Skills)
	require.NotNil(t, first.Rating)
	assert.InDelta(t, 4.9, *first.Rating, 1e-9)
	require.NotNil(t, first.HoursWorked)
	assert.Equal(t, 58, *first.HoursWorked)
	assert.Equal(t, "₹57,430", first.TotalEarnings)

	last := set.Freelancers[4]
	assert.Equal(t, "₹1,05,000", last.TotalEarnings)
	require.NotNil(t, last.Longitude)
	assert.InDelta(t, 72.8777, *last.Longitude, 1e-9)

	r := set.Recruiters[1]
	assert.Equal(t, "Priya Sharma", r.Name)
	assert.Equal(t, "+91 98765 43210", r.Phone)
	require.NotNil(t, r.SuccessfulHires)
	assert.Equal(t, 15, *r.SuccessfulHires)
	assert.Equal(t, "5 years", r.Experience)
}

func TestLoadFS_Override(t *testing.T) {
	src := fstest.MapFS{
		"freelancers.yaml": {Data: []byte("- name: Solo\n  skills: [Go]\n  rating: 0\n")},
		"recruiters.yaml":  {Data: []byte("- name: Rec\n  totalListings: 1\n")},
	}

	set, err := LoadFS(src)
	require.NoError(t, err)
	require.Len(t, set.Freelancers, 1)
	assert.Equal(t, "Solo", set.Freelancers[0].Name)
	require.NotNil(t, set.Freelancers[0].Rating)
	assert.Nil(t, set.Freelancers[0].HoursWorked)
	require.Len(t, set.Recruiters, 1)
}

func TestLoadFS_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFS(fstest.MapFS{"freelancers.yaml": {Data: []byte("- name: a\n")}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recruiters.yaml")
	})

	t.Run("empty", func(t *testing.T) {
		_, err := LoadFS(fstest.MapFS{
			"freelancers.yaml": {Data: []byte("[]\n")},
			"recruiters.yaml":  {Data: []byte("- name: a\n")},
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errEmptyFixture))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadFS(fstest.MapFS{
			"freelancers.yaml": {Data: []byte("- name: a\n  salary: 3\n")},
			"recruiters.yaml":  {Data: []byte("- name: a\n")},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode fixture freelancers.yaml")
	})
}
