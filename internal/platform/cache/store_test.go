package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[[]byte](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) ([]byte, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []byte("<html>charts</html>"), nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "charts:v1", loader)
			if err != nil {
				errCh <- err
				return
			}
			if string(v) != "<html>charts</html>" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, time.March, 11, 20, 0, 0, 0, time.UTC)
	store := NewStore[string](time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	if got, ok := store.Get(context.Background(), "k"); !ok || got != "v" {
		t.Fatalf("expected fresh entry, got %q ok=%v", got, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, len=%d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	store.Set(context.Background(), "charts:v1", "old")
	store.Set(context.Background(), "charts:v2", "new")
	store.Set(context.Background(), "other", "keep")

	store.DeletePrefix(context.Background(), "charts:")

	if store.Len() != 1 {
		t.Fatalf("expected one entry left, got %d", store.Len())
	}
	if _, ok := store.Get(context.Background(), "other"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	boom := errors.New("render failed")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (string, error) {
		return "", boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected render error, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected nothing cached after failure")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
