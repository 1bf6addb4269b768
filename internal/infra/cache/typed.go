package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// GetOrLoad is GetOrSet with a typed result. In-process caches hand back the stored T;
// Redis hands back decoded JSON, which is converted to T through a JSON round trip.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, ttl time.Duration, loader func() (T, error)) (T, error) {
	var zero T

	value, err := c.GetOrSet(ctx, key, ttl, func() (any, error) {
		return loader()
	})
	if err != nil {
		return zero, err
	}

	return convert[T](value)
}

func convert[T any](value any) (T, error) {
	var result T

	if typed, ok := value.(T); ok {
		return typed, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return result, fmt.Errorf("re-encoding cached value: %w", err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decoding cached value into %T: %w", result, err)
	}

	return result, nil
}
