package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// ratingColumnByRater maps the submitted rater_role to the aggregate bumped on
// the rated user. The aggregate carries the rater_role name.
var ratingColumnByRater = map[model.RatingRole]model.RatingRole{
	model.RoleShopper:   model.RoleShopper,
	model.RoleDeliverer: model.RoleDeliverer,
}

// RoleRating is the public view of one rating aggregate.
type RoleRating struct {
	Average float64
	Count   int
	Rated   bool
}

func roleRatingOf(stats model.RatingStats) RoleRating {
	avg, ok := stats.Average()
	return RoleRating{Average: avg, Count: stats.Count, Rated: ok}
}

// RatingSummary holds both aggregates of a user.
type RatingSummary struct {
	UserID    string
	Shopper   RoleRating
	Deliverer RoleRating
}

// RatingUseCase maintains per-user rating aggregates.
type RatingUseCase struct {
	ratings repository.RatingRepository
}

// NewRatingUseCase constructs RatingUseCase.
func NewRatingUseCase(ratings repository.RatingRepository) *RatingUseCase {
	return &RatingUseCase{ratings: ratings}
}

// Record adds a score submitted from raterRole to the rated user's aggregate.
func (u *RatingUseCase) Record(ctx context.Context, raterRole model.RatingRole, ratedUserID string, rating int) error {
	if err := model.ValidateRating(rating); err != nil {
		return err
	}
	target, ok := ratingColumnByRater[raterRole]
	if !ok {
		return domainErrors.ErrInvalidRole
	}
	return u.ratings.Record(ctx, ratedUserID, target, rating)
}

// Average returns the rounded average of a user's aggregate for role.
func (u *RatingUseCase) Average(ctx context.Context, userID string, role model.RatingRole) (RoleRating, error) {
	if _, err := model.ParseRatingRole(string(role)); err != nil {
		return RoleRating{}, err
	}
	stats, err := u.ratings.Stats(ctx, userID, role)
	if err != nil {
		return RoleRating{}, err
	}
	return roleRatingOf(stats), nil
}

// Summary returns both aggregates of a user.
func (u *RatingUseCase) Summary(ctx context.Context, userID string) (*RatingSummary, error) {
	shopper, err := u.Average(ctx, userID, model.RoleShopper)
	if err != nil {
		return nil, err
	}
	deliverer, err := u.Average(ctx, userID, model.RoleDeliverer)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{UserID: userID, Shopper: shopper, Deliverer: deliverer}, nil
}
