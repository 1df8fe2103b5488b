package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetWithExpiration 设置键值对并设置过期时间
func SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return nil
	}
	return Rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，key 不存在时返回空串
func GetValue(ctx context.Context, key string) (string, error) {
	if Rdb == nil {
		return "", nil
	}
	value, err := Rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// HSetWithExpiration 写入 hash 字段并刷新整个 key 的过期时间
func HSetWithExpiration(ctx context.Context, key, field string, value interface{}, expiration time.Duration) error {
	if Rdb == nil {
		return nil
	}
	pipe := Rdb.TxPipeline()
	pipe.HSet(ctx, key, field, value)
	pipe.Expire(ctx, key, expiration)
	_, err := pipe.Exec(ctx)
	return err
}

// HGet 获取 hash 字段，不存在时返回空串
func HGet(ctx context.Context, key, field string) (string, error) {
	if Rdb == nil {
		return "", nil
	}
	value, err := Rdb.HGet(ctx, key, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// DeleteKey 删除一个或多个键
func DeleteKey(ctx context.Context, keys ...string) error {
	if Rdb == nil || len(keys) == 0 {
		return nil
	}
	return Rdb.Del(ctx, keys...).Err()
}

// UntilNextUTCMidnight 距下一个 UTC 零点的时长
func UntilNextUTCMidnight(now time.Time) time.Duration {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return midnight.Sub(now)
}
