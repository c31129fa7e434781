package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	apperrors "github.com/yourusername/formbuilder-api/internal/pkg/errors"
)

// RedisKV - хранилище поверх Redis. Каждая коллекция лежит целиком
// в одном строковом ключе, семантика перезаписи та же, что и у
// остальных бэкендов.
type RedisKV struct {
	client redis.UniversalClient
	prefix string
	ctx    context.Context
}

// NewRedisKV создает хранилище поверх существующего клиента Redis
func NewRedisKV(client redis.UniversalClient, prefix string) (*RedisKV, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for RedisKV")
	}
	if prefix == "" {
		prefix = "formbuilder"
	}
	return &RedisKV{
		client: client,
		prefix: prefix,
		ctx:    context.Background(),
	}, nil
}

// Get возвращает значение ключа или ErrNotFound
func (r *RedisKV) Get(key string) ([]byte, error) {
	data, err := r.client.Get(r.ctx, r.fullKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Set перезаписывает значение ключа без TTL
func (r *RedisKV) Set(key string, value []byte) error {
	return r.client.Set(r.ctx, r.fullKey(key), value, 0).Err()
}

// Delete удаляет ключ
func (r *RedisKV) Delete(key string) error {
	return r.client.Del(r.ctx, r.fullKey(key)).Err()
}

func (r *RedisKV) fullKey(key string) string {
	return r.prefix + ":" + key
}
