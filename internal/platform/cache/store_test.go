package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_SharesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
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
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiresEntriesAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	current := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	ctx := context.Background()
	store.Set(ctx, "players:list", 3)
	if _, ok := store.Get(ctx, "players:list"); !ok {
		t.Fatalf("expected fresh entry")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "players:list"); ok {
		t.Fatalf("expected expired entry to be evicted")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d entries", store.Len())
	}
}

func TestLoad_TypedValueAndErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	got, err := Load(ctx, store, "k", func(context.Context) ([]string, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected value: %v", got)
	}

	_, err = Load(ctx, store, "failing", func(context.Context) (int, error) {
		return 0, errUnexpectedValue
	})
	if !errors.Is(err, errUnexpectedValue) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(ctx, "failing"); ok {
		t.Fatalf("failed loads must not be cached")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
