package freelancer

// Freelancer is a stored freelancer document. ID is assigned by the store.
type Freelancer struct {
	ID            string   `json:"_id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Location      string   `json:"location"`
	Bio           string   `json:"bio"`
	Skills        []string `json:"skills"`
	Rating        float64  `json:"rating"`
	TotalEarnings string   `json:"totalEarnings"`
	HoursWorked   int      `json:"hoursWorked"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
}

// Input is a freelancer record before it is written. Numeric fields are
// pointers so a missing value can be told apart from zero.
type Input struct {
	Name          string   `json:"name" yaml:"name" validate:"required"`
	Role          string   `json:"role" yaml:"role" validate:"required"`
	Location      string   `json:"location" yaml:"location" validate:"required"`
	Bio           string   `json:"bio" yaml:"bio" validate:"required"`
	Skills        []string `json:"skills" yaml:"skills" validate:"required,dive,required"`
	Rating        *float64 `json:"rating" yaml:"rating" validate:"required"`
	TotalEarnings string   `json:"totalEarnings" yaml:"totalEarnings" validate:"required"`
	HoursWorked   *int     `json:"hoursWorked" yaml:"hoursWorked" validate:"required"`
	Latitude      *float64 `json:"latitude" yaml:"latitude" validate:"required"`
	Longitude     *float64 `json:"longitude" yaml:"longitude" validate:"required"`
}

// Freelancer converts a validated input. Nil numeric fields become zero.
func (in Input) Freelancer() Freelancer {
	f := Freelancer{
		Name:          in.Name,
		Role:          in.Role,
		Location:      in.Location,
		Bio:           in.Bio,
		Skills:        make([]string, len(in.Skills)),
		TotalEarnings: in.TotalEarnings,
	}
	copy(f.Skills, in.Skills)
	if in.Rating != nil {
		f.Rating = *in.Rating
	}
	if in.HoursWorked != nil {
		f.HoursWorked = *in.HoursWorked
	}
	if in.Latitude != nil {
		f.Latitude = *in.Latitude
	}
	if in.Longitude != nil {
		f.Longitude = *in.Longitude
	}
	return f
}
