package flash

import (
	"context"
	"fmt"
	"time"

	"parkside-realty/pkg/config"
	"parkside-realty/pkg/logger"
	"parkside-realty/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// Unread notices expire rather than accumulating for browsers that never
// come back.
const noticeTTL = 30 * time.Minute

// RedisStore keeps flash notices in a Redis list per browser key.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects a flash store to the configured Redis instance.
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	_, err := client.Ping(ctx).Result()
	metrics.FlashOperationDuration.WithLabelValues("ping").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	logger.GlobalLogger.Println("Redis connected successfully")
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Push(ctx context.Context, key, message string) error {
	start := time.Now()
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, noticeKey(key), message)
	pipe.Expire(ctx, noticeKey(key), noticeTTL)
	_, err := pipe.Exec(ctx)
	metrics.FlashOperationDuration.WithLabelValues("push").Observe(time.Since(start).Seconds())
	if err != nil {
		logger.GlobalLogger.Errorf("failed to push notice for key %s: %v", key, err)
		return err
	}
	return nil
}

func (s *RedisStore) PopAll(ctx context.Context, key string) ([]string, error) {
	start := time.Now()
	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, noticeKey(key), 0, -1)
	pipe.Del(ctx, noticeKey(key))
	_, err := pipe.Exec(ctx)
	metrics.FlashOperationDuration.WithLabelValues("pop_all").Observe(time.Since(start).Seconds())
	if err != nil {
		logger.GlobalLogger.Errorf("failed to pop notices for key %s: %v", key, err)
		return nil, err
	}
	return rangeCmd.Val(), nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	_, err := s.client.Ping(ctx).Result()
	return err
}

// Close releases the Redis connection pool.
func (s *RedisStore) Close() {
	if err := s.client.Close(); err != nil {
		logger.GlobalLogger.Errorf("error closing Redis: %v", err)
	} else {
		logger.GlobalLogger.Println("Redis connection closed")
	}
}

func noticeKey(key string) string {
	return "flash:" + key
}
