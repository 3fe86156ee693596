package registry

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the go-redis client used by Redis.
type RedisClient interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
	SAdd(ctx context.Context, key string, members ...any) *redis.IntCmd
}

// Redis keeps names as members of a Redis set.
type Redis struct {
	client RedisClient
	key    string
}

// NewRedis returns a registry backed by the set stored at key.
func NewRedis(client RedisClient, key string) *Redis {
	return &Redis{client: client, key: key}
}

// Contains reports whether name is a member of the set.
func (r *Redis) Contains(ctx context.Context, name string) (bool, error) {
	ok, err := r.client.SIsMember(ctx, r.key, name).Result()
	if err != nil {
		return false, errors.Join(ErrLookup, err)
	}
	return ok, nil
}

// Add adds names to the set. Names already present are left alone.
func (r *Redis) Add(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return nil
	}
	members := make([]any, len(names))
	for i, n := range names {
		members[i] = n
	}
	if err := r.client.SAdd(ctx, r.key, members...).Err(); err != nil {
		return errors.Join(ErrClaim, err)
	}
	return nil
}
