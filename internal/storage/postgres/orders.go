package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
)

type orderRepository struct {
	storage *Storage
}

const orderColumns = `id, status, user_id, claimed_by, cart, total_items, location, timeline,
    shopper_rated, deliverer_rated, created_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o         model.Order
		claimedBy *string
		cart      []byte
		timeline  []byte
	)
	err := row.Scan(&o.ID, &o.Status, &o.UserID, &claimedBy, &cart, &o.TotalItems, &o.Location, &timeline,
		&o.ShopperRated, &o.DelivererRated, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	if claimedBy != nil {
		o.ClaimedBy = *claimedBy
	}
	if err := json.Unmarshal(cart, &o.Cart); err != nil {
		return nil, fmt.Errorf("decode cart of order %d: %w", o.ID, err)
	}
	if err := json.Unmarshal(timeline, &o.Timeline); err != nil {
		return nil, fmt.Errorf("decode timeline of order %d: %w", o.ID, err)
	}
	return &o, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	const query = `INSERT INTO orders (status, user_id, cart, total_items, location, timeline, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING id`
	cart, err := json.Marshal(order.Cart)
	if err != nil {
		return nil, err
	}
	timeline, err := json.Marshal(order.Timeline)
	if err != nil {
		return nil, err
	}

	created := *order
	err = r.storage.conn(ctx).QueryRow(ctx, query,
		order.Status, order.UserID, cart, order.TotalItems, order.Location, timeline, order.CreatedAt,
	).Scan(&created.ID)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return r.getOne(ctx, query, id)
}

func (r *orderRepository) GetForUpdate(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
	return r.getOne(ctx, query, id)
}

func (r *orderRepository) LatestByUser(ctx context.Context, userID string) (*model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC, id DESC LIMIT 1`
	return r.getOne(ctx, query, userID)
}

func (r *orderRepository) getOne(ctx context.Context, query string, args ...any) (*model.Order, error) {
	order, err := scanOrder(r.storage.conn(ctx).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) Save(ctx context.Context, order *model.Order) error {
	const query = `UPDATE orders
                   SET status=$1, claimed_by=$2, timeline=$3, shopper_rated=$4, deliverer_rated=$5
                   WHERE id=$6`
	timeline, err := json.Marshal(order.Timeline)
	if err != nil {
		return err
	}
	tag, err := r.storage.conn(ctx).Exec(ctx, query,
		order.Status, nullable(order.ClaimedBy), timeline, order.ShopperRated, order.DelivererRated, order.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) Claim(ctx context.Context, id int64, delivererID string) error {
	const claimQuery = `UPDATE orders SET status='CLAIMED', claimed_by=$1 WHERE id=$2 AND status='PLACED'`
	conn := r.storage.conn(ctx)
	tag, err := conn.Exec(ctx, claimQuery, delivererID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	const existsQuery = `SELECT EXISTS(SELECT 1 FROM orders WHERE id=$1)`
	var exists bool
	if err := conn.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domainErrors.ErrOrderNotFound
	}
	return domainErrors.ErrAlreadyClaimed
}

func (r *orderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, userID)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at, id`
	return r.list(ctx, query, status)
}

func (r *orderRepository) ListClaimedBy(ctx context.Context, delivererID string) ([]model.Order, error) {
	const query = `SELECT ` + orderColumns + ` FROM orders WHERE status='CLAIMED' AND claimed_by=$1 ORDER BY created_at, id`
	return r.list(ctx, query, delivererID)
}

func (r *orderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.storage.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.storage.conn(ctx).Exec(ctx, `DELETE FROM orders`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
