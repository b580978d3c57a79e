package generic

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/keymapper-dev/keymapper/internal/infrastructure/cache"
)

func newStore() *cache.LRU[string, int] {
	return cache.NewLRU[string, int](16)
}

// TestGetComputesOnce verifies that a cached value is reused
func TestGetComputesOnce(t *testing.T) {
	mock := NewMockComputer[string, int]()
	mock.ComputeFunc = func(ctx context.Context, key string) (int, error) {
		return len(key), nil
	}

	memo := NewMemo[string, int](mock, newStore())

	for i := 0; i < 3; i++ {
		val, err := memo.Get(context.Background(), "four")
		if err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
		if val != 4 {
			t.Errorf("Expected 4, got %d", val)
		}
	}

	if count := mock.GetComputeCallCount(); count != 1 {
		t.Errorf("Expected Compute to be called once, got %d", count)
	}
	if memo.Len() != 1 {
		t.Errorf("Expected 1 cached value, got %d", memo.Len())
	}
}

// TestGetErrorNotCached verifies that failures are retried on the next Get
func TestGetErrorNotCached(t *testing.T) {
	expectedErr := errors.New("adapter unavailable")

	mock := NewMockComputer[string, int]()
	mock.ComputeFunc = func(ctx context.Context, key string) (int, error) {
		return 0, expectedErr
	}

	memo := NewMemo[string, int](mock, newStore())

	if _, err := memo.Get(context.Background(), "k"); !errors.Is(err, expectedErr) {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
	if _, err := memo.Get(context.Background(), "k"); !errors.Is(err, expectedErr) {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}

	if count := mock.GetComputeCallCount(); count != 2 {
		t.Errorf("Expected Compute to be called twice, got %d", count)
	}
	if _, ok := memo.Peek("k"); ok {
		t.Error("Expected failed computation not to be cached")
	}
}

// TestInvalidate verifies that invalidation forces recomputation
func TestInvalidate(t *testing.T) {
	calls := 0
	memo := NewMemo[string, int](ComputeFunc[string, int](func(ctx context.Context, key string) (int, error) {
		calls++
		return calls, nil
	}), newStore())

	first, _ := memo.Get(context.Background(), "k")
	memo.Invalidate()
	second, _ := memo.Get(context.Background(), "k")

	if first != 1 || second != 2 {
		t.Errorf("Expected 1 then 2, got %d then %d", first, second)
	}

	memo.Forget("k")
	if _, ok := memo.Peek("k"); ok {
		t.Error("Expected Forget to drop the key")
	}
}

// TestConcurrentGetSharesComputation verifies that concurrent misses collapse
func TestConcurrentGetSharesComputation(t *testing.T) {
	release := make(chan struct{})
	mock := NewMockComputer[string, int]()
	mock.ComputeFunc = func(ctx context.Context, key string) (int, error) {
		<-release
		return 42, nil
	}

	memo := NewMemo[string, int](mock, newStore())

	var wg sync.WaitGroup
	results := make([]int, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = memo.Get(context.Background(), "k")
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, r := range results {
		if r != 42 {
			t.Errorf("result %d: expected 42, got %d", i, r)
		}
	}
	if count := mock.GetComputeCallCount(); count > 2 {
		t.Errorf("Expected computations to be shared, got %d calls", count)
	}
}

// TestInvalidateDuringCompute verifies that a stale result is not stored
func TestInvalidateDuringCompute(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	memo := NewMemo[string, int](nil, newStore())
	memo.computer = ComputeFunc[string, int](func(ctx context.Context, key string) (int, error) {
		close(started)
		<-release
		return 1, nil
	})

	done := make(chan int)
	go func() {
		v, _ := memo.Get(context.Background(), "k")
		done <- v
	}()

	<-started
	memo.Invalidate()
	close(release)

	if v := <-done; v != 1 {
		t.Errorf("Expected in-flight caller to get 1, got %d", v)
	}
	if _, ok := memo.Peek("k"); ok {
		t.Error("Expected stale value not to be cached")
	}
}

// TestInvalidateOn verifies that signals clear the memo
func TestInvalidateOn(t *testing.T) {
	mock := NewMockComputer[string, int]()
	memo := NewMemo[string, int](mock, newStore())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan struct{})
	notified := make(chan struct{}, 1)
	memo.InvalidateOn(ctx, signals, func() { notified <- struct{}{} })

	if _, err := memo.Get(ctx, "k"); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	signals <- struct{}{}

	select {
	case <-notified:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for invalidation")
	}

	if memo.Len() != 0 {
		t.Errorf("Expected empty memo after signal, got %d", memo.Len())
	}
}

// TestStoreBoundsEntries verifies that the store's eviction applies to memoised values
func TestStoreBoundsEntries(t *testing.T) {
	mock := NewMockComputer[string, int]()
	memo := NewMemo[string, int](mock, cache.NewLRU[string, int](2))

	for _, key := range []string{"a", "b", "c"} {
		if _, err := memo.Get(context.Background(), key); err != nil {
			t.Fatalf("Get(%q) failed: %v", key, err)
		}
	}

	if n := memo.Len(); n != 2 {
		t.Errorf("Expected 2 cached values, got %d", n)
	}
	if _, ok := memo.Peek("a"); ok {
		t.Error("Expected least recently used key to be evicted")
	}
}
