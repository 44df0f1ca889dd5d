package ratelimiter

import (
	"sync"
	"testing"
	"time"
)

func TestRateLimiter_UnderLimit(t *testing.T) {
	rl := NewRateLimiter(10, time.Minute)

	start := time.Now()
	for i := 0; i < 10; i++ {
		rl.WaitIfNeeded()
	}
	elapsed := time.Since(start)

	if elapsed > 100*time.Millisecond {
		t.Errorf("calls under the limit should not block, took %v", elapsed)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	interval := 200 * time.Millisecond
	rl := NewRateLimiter(2, interval)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	start := time.Now()
	rl.WaitIfNeeded() // 3rd call must wait for the interval to roll over
	elapsed := time.Since(start)

	if elapsed < interval/2 {
		t.Errorf("expected the over-limit call to block, took only %v", elapsed)
	}
}

func TestRateLimiter_ResetsAfterInterval(t *testing.T) {
	interval := 50 * time.Millisecond
	rl := NewRateLimiter(1, interval)

	rl.WaitIfNeeded()
	time.Sleep(interval + 10*time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()
	elapsed := time.Since(start)

	if elapsed > 20*time.Millisecond {
		t.Errorf("call after the interval rolled over should not block, took %v", elapsed)
	}
}

func TestRateLimiter_ConcurrentCallers(t *testing.T) {
	rl := NewRateLimiter(100, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rl.WaitIfNeeded()
		}()
	}
	wg.Wait()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.count != 50 {
		t.Errorf("expected count 50, got %d", rl.count)
	}
}
