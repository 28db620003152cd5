package repository

import (
	"context"
	"fmt"
	"identity-service/internal/constant"
	"time"

	"github.com/redis/go-redis/v9"
)

type TokenBlacklistRepository interface {
	Add(ctx context.Context, token string, tokenType constant.TokenType, duration time.Duration) error
	IsBlacklisted(ctx context.Context, token string, tokenType constant.TokenType) (bool, error)
}

type RedisTokenBlacklist struct {
	client *redis.Client
}

func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client}
}

func (r *RedisTokenBlacklist) Add(ctx context.Context, token string, tokenType constant.TokenType, duration time.Duration) error {
	return r.client.Set(ctx, fmt.Sprintf("blacklist:%s:%s", tokenType, token), "1", duration).Err()
}

func (r *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, token string, tokenType constant.TokenType) (bool, error) {
	result, err := r.client.Get(ctx, fmt.Sprintf("blacklist:%s:%s", tokenType, token)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return result == "1", nil
}
