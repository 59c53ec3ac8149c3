package helpers

import "github.com/redis/go-redis/v9"

// NewRedisClient initializes a redis client. Only used for login rate
// limiting; the limiter degrades to a pass-through when redis is not
// configured.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
