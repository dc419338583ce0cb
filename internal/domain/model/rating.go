package model

import domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"

// RatingRole names the side of an order a rating is submitted from.
type RatingRole string

const (
	RoleShopper   RatingRole = "shopper"
	RoleDeliverer RatingRole = "deliverer"
)

const (
	MinRating = 1
	MaxRating = 5
)

// ParseRatingRole validates a role name.
func ParseRatingRole(s string) (RatingRole, error) {
	switch RatingRole(s) {
	case RoleShopper, RoleDeliverer:
		return RatingRole(s), nil
	default:
		return "", domainErrors.ErrInvalidRole
	}
}

// ValidateRating checks the score is within the allowed range.
func ValidateRating(r int) error {
	if r < MinRating || r > MaxRating {
		return domainErrors.ErrInvalidRating
	}
	return nil
}

// RatingStats is the running aggregate for one user and role.
type RatingStats struct {
	Sum   int
	Count int
}

// Average returns sum/count rounded to one decimal, or false when nothing was recorded.
func (s RatingStats) Average() (float64, bool) {
	if s.Count <= 0 {
		return 0, false
	}
	return Round(float64(s.Sum)/float64(s.Count), 1), true
}
