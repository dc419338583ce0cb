package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
	"github.com/polkiloo/tigercart/internal/domain/repository"
)

const cartKeyPrefix = "cart:"

// CartStore keeps each shopper's cart in a Redis hash of item id to quantity.
type CartStore struct {
	client goredis.Cmdable
	logger *slog.Logger
}

var _ repository.CartRepository = (*CartStore)(nil)

// NewCartStore builds a cart repository on top of a Redis client.
func NewCartStore(client goredis.Cmdable, logger *slog.Logger) *CartStore {
	return &CartStore{client: client, logger: logger}
}

func cartKey(userID string) string {
	return cartKeyPrefix + userID
}

func (s *CartStore) Get(ctx context.Context, userID string) (model.Cart, error) {
	values, err := s.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	cart := make(model.Cart, len(values))
	for itemID, raw := range values {
		qty, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("cart %s: item %s has quantity %q: %w", userID, itemID, raw, err)
		}
		if qty > 0 {
			cart[itemID] = qty
		}
	}
	return cart, nil
}

func (s *CartStore) Add(ctx context.Context, userID, itemID string, quantity int) (int, error) {
	if quantity <= 0 {
		return 0, domainErrors.ErrInvalidQuantity
	}
	qty, err := s.client.HIncrBy(ctx, cartKey(userID), itemID, int64(quantity)).Result()
	if err != nil {
		return 0, err
	}
	return int(qty), nil
}

func (s *CartStore) SetQuantity(ctx context.Context, userID, itemID string, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return s.client.HSet(ctx, cartKey(userID), itemID, quantity).Err()
}

func (s *CartStore) Decrement(ctx context.Context, userID, itemID string) (int, error) {
	key := cartKey(userID)
	exists, err := s.client.HExists(ctx, key, itemID).Result()
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, domainErrors.ErrNotInCart
	}

	qty, err := s.client.HIncrBy(ctx, key, itemID, -1).Result()
	if err != nil {
		return 0, err
	}
	if qty > 0 {
		return int(qty), nil
	}
	if err := s.client.HDel(ctx, key, itemID).Err(); err != nil {
		return 0, err
	}
	s.logger.Debug("item dropped from cart", slog.String("user_id", userID), slog.String("item_id", itemID))
	return 0, nil
}

func (s *CartStore) Remove(ctx context.Context, userID, itemID string) error {
	return s.client.HDel(ctx, cartKey(userID), itemID).Err()
}

func (s *CartStore) Clear(ctx context.Context, userID string) error {
	return s.client.Del(ctx, cartKey(userID)).Err()
}
