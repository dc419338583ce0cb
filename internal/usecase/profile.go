package usecase

import (
	"context"
	"strings"

	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

// Profile aggregates everything shown on the profile page.
type Profile struct {
	User      model.User
	Stats     model.ShopperStats
	Orders    []model.Order
	Favorites []model.Item
	Shopper   RoleRating
	Deliverer RoleRating
}

// ProfileUseCase reads and edits user profiles.
type ProfileUseCase struct {
	users     repository.UserRepository
	orders    repository.OrderRepository
	favorites *FavoriteUseCase
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(users repository.UserRepository, orders repository.OrderRepository, favorites *FavoriteUseCase) *ProfileUseCase {
	return &ProfileUseCase{users: users, orders: orders, favorites: favorites}
}

// Profile loads the user's contact, order history and ratings.
func (u *ProfileUseCase) Profile(ctx context.Context, userID string) (*Profile, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	favorites, err := u.favorites.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:      *usr,
		Stats:     model.StatsOf(orders),
		Orders:    orders,
		Favorites: favorites,
		Shopper:   roleRatingOf(usr.ShopperRating),
		Deliverer: roleRatingOf(usr.DelivererRating),
	}, nil
}

// UpdateContact stores the trimmed venmo handle and phone number.
func (u *ProfileUseCase) UpdateContact(ctx context.Context, userID string, contact model.Contact) (*model.User, error) {
	contact.VenmoHandle = strings.TrimSpace(contact.VenmoHandle)
	contact.PhoneNumber = strings.TrimSpace(contact.PhoneNumber)
	if err := u.users.UpdateContact(ctx, userID, contact); err != nil {
		return nil, err
	}
	return u.users.GetByID(ctx, userID)
}
