// Package redis connects to the Redis server that backs the shared name
// registry.
//
//	client, err := redis.Connect(ctx, cfg, log)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	names := registry.NewRedis(client, "strkit:names")
//
// Config is populated from REDIS_* environment variables with
// github.com/caarlos0/env. Errors wrap the go-redis error together with one
// of the package sentinels using errors.Join.
package redis
