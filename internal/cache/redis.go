package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisNewClient builds the underlying client; tests override this variable.
var redisNewClient = func(opt *redis.Options) Cache {
	return redis.NewClient(opt)
}

// NewRedisClient connects and pings a Redis server.
// addr: host:port; password may be empty; db is the database index.
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
