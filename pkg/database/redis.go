package database

import (
	"context"
	"fmt"
	"time"

	"oecd_explorer/internal/config"
	"oecd_explorer/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const redisDialTimeout = 3 * time.Second

// InitRedis 连接状态后端；单用户场景下连接池保持很小
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     2,
		MinIdleConns: 1,
		DialTimeout:  redisDialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisDialTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis %s: %w", addr, err)
	}

	logger.Log.Info("Redis state backend connected", zap.String("addr", addr), zap.Int("db", cfg.DB))
	return rdb, nil
}
