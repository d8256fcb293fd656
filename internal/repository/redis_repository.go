package repository

import (
	"context"
	"encoding/json"
	"errors"

	"oecd_explorer/internal/model"

	"github.com/go-redis/redis/v8"
)

const (
	redisKeyPrefix = "oecd_explorer:"
	redisEventsKey = redisKeyPrefix + "events"
)

// RedisStateRepository 以 Redis 字符串保存各聚合
type RedisStateRepository struct {
	Client *redis.Client
}

func NewRedisStateRepository(client *redis.Client) *RedisStateRepository {
	return &RedisStateRepository{Client: client}
}

func (r *RedisStateRepository) Load(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.Client.Get(ctx, redisKeyPrefix+"state:"+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (r *RedisStateRepository) Save(ctx context.Context, key string, value []byte) error {
	return r.Client.Set(ctx, redisKeyPrefix+"state:"+key, value, 0).Err()
}

func (r *RedisStateRepository) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

// RedisEventLogRepository 使用 Redis 列表，RPUSH 保证追加顺序
type RedisEventLogRepository struct {
	Client *redis.Client
}

func NewRedisEventLogRepository(client *redis.Client) *RedisEventLogRepository {
	return &RedisEventLogRepository{Client: client}
}

func (r *RedisEventLogRepository) Append(ctx context.Context, record model.EventRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.Client.RPush(ctx, redisEventsKey, raw).Err()
}

func (r *RedisEventLogRepository) List(ctx context.Context) ([]model.EventRecord, error) {
	items, err := r.Client.LRange(ctx, redisEventsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]model.EventRecord, 0, len(items))
	for _, item := range items {
		var rec model.EventRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *RedisEventLogRepository) Replace(ctx context.Context, records []model.EventRecord) error {
	values := make([]interface{}, 0, len(records))
	for _, rec := range records {
		raw, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		values = append(values, raw)
	}

	_, err := r.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, redisEventsKey)
		if len(values) > 0 {
			pipe.RPush(ctx, redisEventsKey, values...)
		}
		return nil
	})
	return err
}
