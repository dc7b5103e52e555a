package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "gym:revoked:"

// RedisRevocations shares the revocation set across instances and restarts.
// Keys carry the token's remaining lifetime as TTL, so Redis expires them on
// its own and the set never needs manual pruning. Tokens are stored hashed;
// a dump of the revocation keys must not yield usable credentials.
type RedisRevocations struct {
	client *redis.Client
}

func NewRedisRevocations(client *redis.Client) *RedisRevocations {
	return &RedisRevocations{client: client}
}

func (r *RedisRevocations) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, redisKey(token), 1, ttl).Err()
}

func (r *RedisRevocations) Contains(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, redisKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func redisKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return redisKeyPrefix + hex.EncodeToString(sum[:])
}
