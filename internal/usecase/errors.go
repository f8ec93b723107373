package usecase

import (
	"errors"

	"talentboard/internal/validation"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const (
	KindValidation = "validation"
	KindOperation  = "operation"
)

// Kind names the failure class of an error returned by this package.
func Kind(err error) string {
	var verr *validation.Error
	if errors.Is(err, ErrInvalidInput) || errors.As(err, &verr) {
		return KindValidation
	}
	return KindOperation
}
