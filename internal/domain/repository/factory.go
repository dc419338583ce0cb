package repository

import "context"

// Factory describes access to the relational repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	Ratings() RatingRepository
	Favorites() FavoriteRepository
}

// Transactor runs fn in a transaction; repositories called with the
// context passed to fn take part in it.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
