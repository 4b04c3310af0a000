package revocation

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "carwash:revoked:"

// RedisStore хранилище отозванных токенов в Redis
// Ключ живет ровно до истечения токена
type RedisStore struct {
	client       RedisCmdable
	timeProvider TimeProvider
}

// NewRedisStore создает хранилище поверх клиента Redis
func NewRedisStore(client RedisCmdable, timeProvider TimeProvider) *RedisStore {
	return &RedisStore{
		client:       client,
		timeProvider: timeProvider,
	}
}

// Revoke отзывает токен до момента until
func (s *RedisStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}

	ttl := until.Sub(s.timeProvider.Now())
	if ttl <= 0 {
		// токен уже истек, отзывать нечего
		return nil
	}

	if err := s.client.Set(ctx, keyPrefix+tokenID, 1, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Revoke - set %s: %v", ErrStore, tokenID, err)
	}
	return nil
}

// IsRevoked проверяет, отозван ли токен
func (s *RedisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("%w: IsRevoked - exists %s: %v", ErrStore, tokenID, err)
	}
	return n > 0, nil
}

// NewRedisClient создает клиент Redis
func NewRedisClient(addr, password string, db, poolSize int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("%w: failed to ping Redis: %v", ErrStore, err)
	}
	return nil
}
