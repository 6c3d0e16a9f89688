// internal/profile/redis.go
package profile

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"movie-chatbot/internal/common/config"
	"movie-chatbot/internal/common/errors"
)

// RedisStore keeps the identity record under a single key, for deployments
// where the bot's working directory is not writable.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(cfg config.RedisConfig, key string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &RedisStore{client: rdb, key: key}
}

// NewRedisStoreWithClient wires an existing client, used by tests.
func NewRedisStoreWithClient(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load() (string, error) {
	ctx, cancel := s.ctx()
	defer cancel()

	name, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.NewProfileReadFailedError(err)
	}
	return name, nil
}

func (s *RedisStore) Save(name string) error {
	ctx, cancel := s.ctx()
	defer cancel()

	if name == "" {
		if err := s.client.Del(ctx, s.key).Err(); err != nil {
			return errors.NewProfileWriteFailedError(err)
		}
		return nil
	}

	if err := s.client.Set(ctx, s.key, name, 0).Err(); err != nil {
		return errors.NewProfileWriteFailedError(err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
