package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCache_Get(t *testing.T) {
	t.Run("fresh entry is served without calling fetch", func(t *testing.T) {
		c := New[string](time.Hour)
		ctx := context.Background()

		calls := 0
		fetch := func(ctx context.Context) (string, error) {
			calls++
			return "payload", nil
		}

		for i := 0; i < 3; i++ {
			got, err := c.Get(ctx, "k", fetch)
			if err != nil {
				t.Fatalf("Get() returned unexpected error: %v", err)
			}
			if got != "payload" {
				t.Errorf("Expected %q, got %q", "payload", got)
			}
		}

		if calls != 1 {
			t.Errorf("Expected exactly 1 fetch, got %d", calls)
		}
	})

	t.Run("distinct keys fetch independently", func(t *testing.T) {
		c := New[int](time.Hour)
		ctx := context.Background()

		for i, key := range []string{"a", "b", "c"} {
			want := i
			got, err := c.Get(ctx, key, func(ctx context.Context) (int, error) {
				return want, nil
			})
			if err != nil {
				t.Fatalf("Get(%q) returned unexpected error: %v", key, err)
			}
			if got != want {
				t.Errorf("Get(%q) = %d, want %d", key, got, want)
			}
		}

		if c.Len() != 3 {
			t.Errorf("Expected 3 entries, got %d", c.Len())
		}
	})

	t.Run("failed fetch is not cached and retries immediately", func(t *testing.T) {
		c := New[string](time.Hour)
		ctx := context.Background()

		fetchErr := errors.New("upstream down")
		calls := 0

		_, err := c.Get(ctx, "k", func(ctx context.Context) (string, error) {
			calls++
			return "", fetchErr
		})
		if !errors.Is(err, fetchErr) {
			t.Fatalf("Expected fetch error, got %v", err)
		}
		if c.Len() != 0 {
			t.Errorf("Expected no cached entries after failure, got %d", c.Len())
		}

		// Next call for the same key must issue a fresh fetch.
		got, err := c.Get(ctx, "k", func(ctx context.Context) (string, error) {
			calls++
			return "recovered", nil
		})
		if err != nil {
			t.Fatalf("Get() after failure returned unexpected error: %v", err)
		}
		if got != "recovered" {
			t.Errorf("Expected %q, got %q", "recovered", got)
		}
		if calls != 2 {
			t.Errorf("Expected 2 fetches, got %d", calls)
		}
	})
}

// TestCache_SingleFlight verifies the core concurrency contract: N
// concurrent misses for one key must collapse into exactly one upstream
// fetch, with every caller receiving the shared result.
func TestCache_SingleFlight(t *testing.T) {
	c := New[string](time.Hour)
	ctx := context.Background()

	var fetches int32
	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&fetches, 1)
		time.Sleep(100 * time.Millisecond)
		return "shared", nil
	}

	const callers = 50
	results := make([]string, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.Get(ctx, "quote/AAPL", fetch)
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("Expected exactly 1 upstream fetch, got %d", n)
	}
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("Caller %d got unexpected error: %v", i, errs[i])
		}
		if results[i] != "shared" {
			t.Errorf("Caller %d got %q, want %q", i, results[i], "shared")
		}
	}
}

// TestCache_SingleFlightError verifies that a failed shared fetch is
// propagated to all waiters and leaves nothing behind in the cache.
func TestCache_SingleFlightError(t *testing.T) {
	c := New[string](time.Hour)
	ctx := context.Background()

	fetchErr := errors.New("timeout")
	var fetches int32
	fetch := func(ctx context.Context) (string, error) {
		atomic.AddInt32(&fetches, 1)
		time.Sleep(50 * time.Millisecond)
		return "", fetchErr
	}

	const callers = 10
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Get(ctx, "k", fetch)
		}(i)
	}
	wg.Wait()

	if n := atomic.LoadInt32(&fetches); n != 1 {
		t.Errorf("Expected exactly 1 upstream fetch, got %d", n)
	}
	for i, err := range errs {
		if !errors.Is(err, fetchErr) {
			t.Errorf("Caller %d: expected shared fetch error, got %v", i, err)
		}
	}
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after failed flight, got %d entries", c.Len())
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	const ttl = 24 * time.Hour

	c := New[string](ttl)
	ctx := context.Background()

	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := t0
	c.now = func() time.Time { return now }

	calls := 0
	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	if _, err := c.Get(ctx, "k", fetch); err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("Expected 1 fetch after initial miss, got %d", calls)
	}

	// Just inside the TTL: still a hit.
	now = t0.Add(ttl - time.Millisecond)
	if _, err := c.Get(ctx, "k", fetch); err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected cached value at t0+TTL-1ms, got %d fetches", calls)
	}

	// Just past the TTL: treated as a miss, triggering a fresh fetch.
	now = t0.Add(ttl + time.Millisecond)
	if _, err := c.Get(ctx, "k", fetch); err != nil {
		t.Fatalf("Get() returned unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected fresh fetch at t0+TTL+1ms, got %d fetches", calls)
	}
}

func TestCache_Sweep(t *testing.T) {
	c := New[string](time.Hour)
	ctx := context.Background()

	t0 := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	now := t0
	c.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		if _, err := c.Get(ctx, key, func(ctx context.Context) (string, error) {
			return "v", nil
		}); err != nil {
			t.Fatalf("Get(%q) returned unexpected error: %v", key, err)
		}
	}

	// Nothing expired yet.
	if evicted := c.Sweep(); evicted != 0 {
		t.Errorf("Expected 0 evictions before expiry, got %d", evicted)
	}

	now = t0.Add(2 * time.Hour)
	if evicted := c.Sweep(); evicted != 3 {
		t.Errorf("Expected 3 evictions after expiry, got %d", evicted)
	}
	if c.Len() != 0 {
		t.Errorf("Expected empty cache after sweep, got %d entries", c.Len())
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		params   map[string]string
		want     string
	}{
		{
			name:     "no params",
			endpoint: "yahoo/quote",
			params:   nil,
			want:     "yahoo/quote",
		},
		{
			name:     "params are sorted",
			endpoint: "fmp/income-statement",
			params:   map[string]string{"symbol": "AAPL", "limit": "5", "period": "annual"},
			want:     "fmp/income-statement?limit=5&period=annual&symbol=AAPL",
		},
		{
			name:     "values are escaped",
			endpoint: "av/news",
			params:   map[string]string{"tickers": "BRK.B&X"},
			want:     "av/news?tickers=BRK.B%26X",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.endpoint, tt.params); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestKey_InsertionOrderIndependence ensures equivalent requests collide on
// one cache key regardless of how callers assembled their parameter maps.
func TestKey_InsertionOrderIndependence(t *testing.T) {
	a := Key("ep", map[string]string{"x": "1", "y": "2", "z": "3"})
	b := Key("ep", map[string]string{"z": "3", "x": "1", "y": "2"})
	if a != b {
		t.Errorf("Equivalent requests produced different keys: %q vs %q", a, b)
	}
}
