package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisOfferLock implementa waitlist.OfferLock com SETNX + TTL: o lock
// vive exatamente a janela da oferta, então uma entrada nunca carrega
// duas ofertas não expiradas mesmo com matchers concorrentes.
type RedisOfferLock struct {
	rdb *redis.Client
}

func NewRedisOfferLock(addr string) *RedisOfferLock {
	return &RedisOfferLock{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func offerKey(entryID uint) string {
	return fmt.Sprintf("waitlist:offer:%d", entryID)
}

func (l *RedisOfferLock) Acquire(ctx context.Context, entryID uint, ttl time.Duration) (bool, error) {
	return l.rdb.SetNX(ctx, offerKey(entryID), 1, ttl).Result()
}

func (l *RedisOfferLock) Release(ctx context.Context, entryID uint) error {
	return l.rdb.Del(ctx, offerKey(entryID)).Err()
}

// NoopOfferLock é usado quando REDIS_ADDR não está configurado
// (instância única: a transição de estado no banco já segura a oferta).
type NoopOfferLock struct{}

func (NoopOfferLock) Acquire(ctx context.Context, entryID uint, ttl time.Duration) (bool, error) {
	return true, nil
}

func (NoopOfferLock) Release(ctx context.Context, entryID uint) error {
	return nil
}
