package utils

import (
	"testing"
	"time"
)

func newTestLimiter(window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		config:   RateLimitConfig{WindowDuration: window},
	}
}

func TestAllowUpToLimit(t *testing.T) {
	rl := newTestLimiter(time.Minute)

	for i := 0; i < 5; i++ {
		if !rl.Allow("ip:1", 5) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("ip:1", 5) {
		t.Error("request over the limit should be denied")
	}
}

func TestAllowKeysAreIndependent(t *testing.T) {
	rl := newTestLimiter(time.Minute)

	for i := 0; i < 3; i++ {
		rl.Allow("ip:1", 3)
	}
	if rl.Allow("ip:1", 3) {
		t.Error("first key should be exhausted")
	}
	if !rl.Allow("ip:2", 3) {
		t.Error("second key should be unaffected")
	}
}

func TestAllowWindowSlides(t *testing.T) {
	rl := newTestLimiter(10 * time.Millisecond)

	for i := 0; i < 3; i++ {
		rl.Allow("ip:1", 3)
	}
	if rl.Allow("ip:1", 3) {
		t.Error("limit should be hit")
	}

	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("ip:1", 3) {
		t.Error("window should have slid past the old requests")
	}
}
