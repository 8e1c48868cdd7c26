package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// PingRedis reports whether the server answers within two seconds.
func PingRedis(ctx context.Context, rdb *redis.Client) error {
	c, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return rdb.Ping(c).Err()
}

// SessionKey is the Redis hash holding a user's active session.
func SessionKey(userID string) string {
	return "user:session:" + userID
}

// RedisSessions keeps one session hash per user.
type RedisSessions struct {
	Client *redis.Client
}

// Save merges fields into the user's session hash and resets its TTL.
func (s *RedisSessions) Save(ctx context.Context, userID string, fields map[string]any, ttl time.Duration) error {
	key := SessionKey(userID)
	pipe := s.Client.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns the session hash; an absent session is an empty map.
func (s *RedisSessions) Get(ctx context.Context, userID string) (map[string]string, error) {
	return s.Client.HGetAll(ctx, SessionKey(userID)).Result()
}

func (s *RedisSessions) Delete(ctx context.Context, userID string) error {
	return s.Client.Del(ctx, SessionKey(userID)).Err()
}
