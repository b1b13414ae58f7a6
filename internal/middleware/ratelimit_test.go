package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_AllowWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !rl.Allow("ip1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("ip1") {
		t.Fatal("fourth request should be rejected")
	}
	if !rl.Allow("ip2") {
		t.Fatal("other keys are independent")
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	now := time.Now()
	rl := NewRateLimiterWithNow(1, time.Minute, func() time.Time { return now })

	if !rl.Allow("ip1") {
		t.Fatal("first request should be allowed")
	}
	if rl.Allow("ip1") {
		t.Fatal("second request should be rejected")
	}

	now = now.Add(2 * time.Minute)
	if !rl.Allow("ip1") {
		t.Fatal("request after window should be allowed")
	}
}
