package cache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// BuildFunc constructs the value for a key. It is invoked at most once per
// key across all concurrent callers of GetOrBuild.
type BuildFunc[V any] func(ctx context.Context) (V, error)

// Loader is a concurrent map with single-flight value construction.
//
// For a given key, at most one build is in flight at any time; concurrent
// callers for the same key wait for the in-flight build and share its result.
// Distinct keys build fully in parallel. Successful values are stored for the
// lifetime of the Loader and returned on every subsequent lookup without
// re-invoking the builder. Failed builds are not stored; whether a failure is
// remembered is the caller's policy, not the Loader's.
//
// The zero value is not usable; create Loaders with NewLoader.
type Loader[K comparable, V any] struct {
	group singleflight.Group

	mu     sync.RWMutex
	values map[K]V
}

// NewLoader creates an empty Loader.
func NewLoader[K comparable, V any]() *Loader[K, V] {
	return &Loader[K, V]{
		values: make(map[K]V),
	}
}

// Get returns the stored value for key, if a build has completed successfully.
func (l *Loader[K, V]) Get(key K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.values[key]
	return v, ok
}

// Len returns the number of stored values.
func (l *Loader[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.values)
}

// GetOrBuild returns the stored value for key, building it with build on the
// first call. Concurrent callers for the same key coalesce onto a single
// build and all observe its outcome.
//
// The build runs on a context detached from the caller's cancellation: a
// caller abandoning its context while driving a build must not strand the
// other callers waiting on the same key, so the build always runs to a
// terminal outcome once started.
func (l *Loader[K, V]) GetOrBuild(ctx context.Context, key K, build BuildFunc[V]) (V, error) {
	l.mu.RLock()
	v, ok := l.values[key]
	l.mu.RUnlock()
	if ok {
		return v, nil
	}

	out, err, _ := l.group.Do(fmt.Sprintf("%v", key), func() (interface{}, error) {
		// A racing build may have completed between the fast path and
		// acquiring the flight.
		l.mu.RLock()
		v, ok := l.values[key]
		l.mu.RUnlock()
		if ok {
			return v, nil
		}

		built, err := build(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.values[key] = built
		l.mu.Unlock()
		return built, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return out.(V), nil
}
