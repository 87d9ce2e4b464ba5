package dependencies

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Xushengqwer/weapp_gateway/config"
)

// InitRedis 初始化 Redis 连接，仅 local 模式需要
func InitRedis(cfg *config.RedisConfig, logger *zap.Logger) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	// 与 MySQL 一样，启动阶段按固定间隔重试 Ping
	maxRetries := 5
	retryInterval := 2 * time.Second
	var err error

	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err = client.Ping(ctx).Result()
		cancel()
		if err == nil {
			break
		}
		logger.Warn("无法连接到 Redis，尝试重试", zap.Int("retry", i+1), zap.Int("maxRetries", maxRetries), zap.Error(err))
		if i < maxRetries-1 {
			time.Sleep(retryInterval)
		}
	}

	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("无法连接到 Redis (%s): %w", addr, err)
	}

	logger.Info("成功连接到 Redis", zap.String("address", addr))
	return client, nil
}
