package cache

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/propchart-api/internal/platform/logging"
)

var remoteCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// loadTimeout bounds a shared load, which outlives the caller that started it.
const loadTimeout = 30 * time.Second

// Fetch returns the cached value for key, loading it at most once across
// concurrent callers. The shared load runs detached from any single caller's
// cancellation; each caller stops waiting when its own ctx is done. Remote
// failures degrade to a plain load.
func Fetch[T any](ctx context.Context, s *Store, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, crerr.New("loader is required")
	}
	if s == nil || key == "" {
		return loader(ctx)
	}

	if v, ok := s.Get(ctx, key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	ch := s.flight.DoChan(key, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		if s.remote != nil {
			payload, found, err := s.remote.Get(ctx, key)
			if err != nil {
				logging.Default().WarnContext(ctx, "remote cache read failed", "key", key, "error", err)
			}
			if found {
				var decoded T
				if err := remoteCodec.Unmarshal(payload, &decoded); err == nil {
					s.Set(ctx, key, decoded)
					return decoded, nil
				}
			}
		}

		loaded, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, loaded)

		if s.remote != nil {
			payload, err := remoteCodec.Marshal(loaded)
			if err != nil {
				return loaded, nil
			}
			if err := s.remote.Set(ctx, key, payload, s.ttl); err != nil {
				logging.Default().WarnContext(ctx, "remote cache write failed", "key", key, "error", err)
			}
		}
		return loaded, nil
	})

	var v any
	var err error
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		v, err = res.Val, res.Err
	}
	if err != nil {
		return zero, err
	}

	typed, ok := v.(T)
	if !ok {
		return zero, crerr.Newf("cache entry %q has unexpected type %T", key, v)
	}
	return typed, nil
}
