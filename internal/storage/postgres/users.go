package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

type ratingRepository struct {
	storage *Storage
}

type favoriteRepository struct {
	storage *Storage
}

const userColumns = `user_id, name, venmo_handle, phone_number,
    shopper_rating_sum, shopper_rating_count, deliverer_rating_sum, deliverer_rating_count, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.VenmoHandle, &u.PhoneNumber,
		&u.ShopperRating.Sum, &u.ShopperRating.Count,
		&u.DelivererRating.Sum, &u.DelivererRating.Count, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- UserRepository implementation ---

func (r *userRepository) Ensure(ctx context.Context, id string) (*model.User, error) {
	const query = `INSERT INTO users (user_id, name) VALUES ($1, $1)
                   ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
                   RETURNING ` + userColumns
	return scanUser(r.storage.conn(ctx).QueryRow(ctx, query, id))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id=$1`
	return scanUser(r.storage.conn(ctx).QueryRow(ctx, query, id))
}

func (r *userRepository) UpdateContact(ctx context.Context, id string, contact model.Contact) error {
	const query = `UPDATE users SET venmo_handle=$1, phone_number=$2 WHERE user_id=$3`
	tag, err := r.storage.conn(ctx).Exec(ctx, query, contact.VenmoHandle, contact.PhoneNumber, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

// --- RatingRepository implementation ---

type ratingColumns struct {
	sum   string
	count string
}

var ratingColumnsByRole = map[model.RatingRole]ratingColumns{
	model.RoleShopper:   {sum: "shopper_rating_sum", count: "shopper_rating_count"},
	model.RoleDeliverer: {sum: "deliverer_rating_sum", count: "deliverer_rating_count"},
}

func (r *ratingRepository) Record(ctx context.Context, userID string, role model.RatingRole, rating int) error {
	cols, ok := ratingColumnsByRole[role]
	if !ok {
		return domainErrors.ErrInvalidRole
	}
	query := fmt.Sprintf(`UPDATE users SET %[1]s = %[1]s + $1, %[2]s = %[2]s + 1 WHERE user_id=$2`, cols.sum, cols.count)
	tag, err := r.storage.conn(ctx).Exec(ctx, query, rating, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *ratingRepository) Stats(ctx context.Context, userID string, role model.RatingRole) (model.RatingStats, error) {
	cols, ok := ratingColumnsByRole[role]
	if !ok {
		return model.RatingStats{}, domainErrors.ErrInvalidRole
	}
	query := fmt.Sprintf(`SELECT %s, %s FROM users WHERE user_id=$1`, cols.sum, cols.count)
	var stats model.RatingStats
	if err := r.storage.conn(ctx).QueryRow(ctx, query, userID).Scan(&stats.Sum, &stats.Count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RatingStats{}, domainErrors.ErrUserNotFound
		}
		return model.RatingStats{}, err
	}
	return stats, nil
}

// --- FavoriteRepository implementation ---

func (r *favoriteRepository) Add(ctx context.Context, userID, itemID string) error {
	const query = `INSERT INTO favorites (user_id, item_id) VALUES ($1, $2) ON CONFLICT (user_id, item_id) DO NOTHING`
	_, err := r.storage.conn(ctx).Exec(ctx, query, userID, itemID)
	return err
}

func (r *favoriteRepository) Remove(ctx context.Context, userID, itemID string) error {
	const query = `DELETE FROM favorites WHERE user_id=$1 AND item_id=$2`
	_, err := r.storage.conn(ctx).Exec(ctx, query, userID, itemID)
	return err
}

func (r *favoriteRepository) List(ctx context.Context, userID string) ([]string, error) {
	const query = `SELECT item_id FROM favorites WHERE user_id=$1 ORDER BY created_at, item_id`
	rows, err := r.storage.conn(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
