package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, key string) error
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// CompareAndDelete deletes key only when it still holds value.
	CompareAndDelete(ctx context.Context, key string, value string) (bool, error)
	// CompareAndExpire resets the TTL of key only when it still holds value.
	CompareAndExpire(ctx context.Context, key string, value string, exp time.Duration) (bool, error)
}
