package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetOrBuildStoresSuccess(t *testing.T) {
	l := NewLoader[uint32, string]()
	var calls atomic.Int32

	build := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "value", nil
	}

	for i := 0; i < 10; i++ {
		v, err := l.GetOrBuild(context.Background(), 7, build)
		require.NoError(t, err)
		require.Equal(t, "value", v)
	}

	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, 1, l.Len())

	v, ok := l.Get(7)
	require.True(t, ok)
	require.Equal(t, "value", v)
}

func TestGetOrBuildCoalescesConcurrentCallers(t *testing.T) {
	l := NewLoader[uint32, int]()
	var calls atomic.Int32

	const callers = 50
	var wg sync.WaitGroup
	results := make([]int, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = l.GetOrBuild(context.Background(), 42, func(ctx context.Context) (int, error) {
				calls.Add(1)
				time.Sleep(50 * time.Millisecond)
				return 1337, nil
			})
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), calls.Load(), "concurrent callers must share one build")
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, 1337, results[i])
	}
}

func TestGetOrBuildDoesNotStoreFailure(t *testing.T) {
	l := NewLoader[string, int]()
	var calls atomic.Int32
	boom := errors.New("boom")

	_, err := l.GetOrBuild(context.Background(), "k", func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 0, boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, l.Len())

	// A later call re-invokes the builder.
	v, err := l.GetOrBuild(context.Background(), "k", func(ctx context.Context) (int, error) {
		calls.Add(1)
		return 5, nil
	})
	require.NoError(t, err)
	require.Equal(t, 5, v)
	require.Equal(t, int32(2), calls.Load())
}

func TestDistinctKeysBuildInParallel(t *testing.T) {
	l := NewLoader[int, int]()

	bothStarted := make(chan struct{})
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(2)
	go func() {
		started.Wait()
		close(bothStarted)
	}()

	var wg sync.WaitGroup
	for _, key := range []int{1, 2} {
		wg.Add(1)
		go func(key int) {
			defer wg.Done()
			_, err := l.GetOrBuild(context.Background(), key, func(ctx context.Context) (int, error) {
				started.Done()
				<-release
				return key, nil
			})
			require.NoError(t, err)
		}(key)
	}

	// Both builds must be in flight at the same time; a cross-key lock
	// would deadlock here.
	select {
	case <-bothStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("builds for distinct keys did not run in parallel")
	}
	close(release)
	wg.Wait()
}

func TestBuildIgnoresCallerCancellation(t *testing.T) {
	l := NewLoader[int, string]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	v, err := l.GetOrBuild(ctx, 1, func(ctx context.Context) (string, error) {
		// The build context is detached from the caller's, so the build
		// completes even though the caller already cancelled.
		require.NoError(t, ctx.Err())
		return "done", nil
	})
	require.NoError(t, err)
	require.Equal(t, "done", v)
}
