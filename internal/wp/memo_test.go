package wp

import (
	"context"
	"sync"
	"testing"
)

func TestMemo(t *testing.T) {
	t.Run("deduplicates calls within one context", func(t *testing.T) {
		ctx := WithMemo(context.Background())
		calls := 0

		for i := 0; i < 3; i++ {
			v, err := memoized(ctx, "op", "a=1", func() (interface{}, error) {
				calls++
				return "result", nil
			})
			if err != nil {
				t.Fatalf("memoized returned error: %v", err)
			}
			if v != "result" {
				t.Fatalf("memoized returned %v, want result", v)
			}
		}

		if calls != 1 {
			t.Errorf("expected 1 underlying call, got %d", calls)
		}
	})

	t.Run("different parameters are separate entries", func(t *testing.T) {
		ctx := WithMemo(context.Background())
		calls := 0
		fn := func() (interface{}, error) {
			calls++
			return nil, nil
		}

		memoized(ctx, "op", "a=1", fn)
		memoized(ctx, "op", "a=2", fn)
		memoized(ctx, "other", "a=1", fn)

		if calls != 3 {
			t.Errorf("expected 3 underlying calls, got %d", calls)
		}
	})

	t.Run("errors are memoized too", func(t *testing.T) {
		ctx := WithMemo(context.Background())
		calls := 0

		for i := 0; i < 2; i++ {
			_, err := memoized(ctx, "op", "", func() (interface{}, error) {
				calls++
				return nil, ErrNotFound
			})
			if err != ErrNotFound {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		}

		if calls != 1 {
			t.Errorf("expected 1 underlying call, got %d", calls)
		}
	})

	t.Run("no memo in context passes through", func(t *testing.T) {
		ctx := context.Background()
		calls := 0
		fn := func() (interface{}, error) {
			calls++
			return nil, nil
		}

		memoized(ctx, "op", "", fn)
		memoized(ctx, "op", "", fn)

		if calls != 2 {
			t.Errorf("expected 2 underlying calls without a memo, got %d", calls)
		}
	})

	t.Run("separate contexts do not share entries", func(t *testing.T) {
		calls := 0
		fn := func() (interface{}, error) {
			calls++
			return nil, nil
		}

		memoized(WithMemo(context.Background()), "op", "", fn)
		memoized(WithMemo(context.Background()), "op", "", fn)

		if calls != 2 {
			t.Errorf("expected separate requests to re-fetch, got %d calls", calls)
		}
	})

	t.Run("concurrent lookups share one call", func(t *testing.T) {
		ctx := WithMemo(context.Background())
		var mu sync.Mutex
		calls := 0

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				memoized(ctx, "op", "", func() (interface{}, error) {
					mu.Lock()
					calls++
					mu.Unlock()
					return "x", nil
				})
			}()
		}
		wg.Wait()

		if calls != 1 {
			t.Errorf("expected 1 underlying call under concurrency, got %d", calls)
		}
	})
}
