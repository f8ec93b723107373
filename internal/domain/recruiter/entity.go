package recruiter

type Recruiter struct {
	ID              string `json:"_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	TotalListings   int    `json:"totalListings"`
	SuccessfulHires int    `json:"successfulHires"`
	Experience      string `json:"experience"`
	Bio             string `json:"bio"`
}

type Input struct {
	Name            string `json:"name" yaml:"name" validate:"required"`
	Email           string `json:"email" yaml:"email" validate:"required"`
	Phone           string `json:"phone" yaml:"phone" validate:"required"`
	Company         string `json:"company" yaml:"company" validate:"required"`
	Location        string `json:"location" yaml:"location" validate:"required"`
	TotalListings   *int   `json:"totalListings" yaml:"totalListings" validate:"required"`
	SuccessfulHires *int   `json:"successfulHires" yaml:"successfulHires" validate:"required"`
	Experience      string `json:"experience" yaml:"experience" validate:"required"`
	Bio             string `json:"bio" yaml:"bio" validate:"required"`
}

func (in Input) Recruiter() Recruiter {
	r := Recruiter{
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Company:    in.Company,
		Location:   in.Location,
		Experience: in.Experience,
		Bio:        in.Bio,
	}
	if in.TotalListings != nil {
		r.TotalListings = *in.TotalListings
	}
	if in.SuccessfulHires != nil {
		r.SuccessfulHires = *in.SuccessfulHires
	}
	return r
}
