package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/guttosm/quote-service/internal/domain/model"
)

// RedisQuoteStateRepository stores the encoded state blob as a plain Redis
// string without expiry.
type RedisQuoteStateRepository struct {
	client redis.UniversalClient
}

// NewRedisQuoteStateRepository creates a repository on the given client.
func NewRedisQuoteStateRepository(client redis.UniversalClient) *RedisQuoteStateRepository {
	return &RedisQuoteStateRepository{client: client}
}

// Load returns the state stored under key, or nil when the key is missing.
func (r *RedisQuoteStateRepository) Load(ctx context.Context, key string) (*model.QuoteState, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state, err := model.DecodeQuoteState(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	return &state, nil
}

// Save writes the state blob under key.
func (r *RedisQuoteStateRepository) Save(ctx context.Context, key string, state model.QuoteState) error {
	data, err := model.EncodeQuoteState(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, 0).Err()
}

// HealthCheck pings Redis.
func (r *RedisQuoteStateRepository) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
