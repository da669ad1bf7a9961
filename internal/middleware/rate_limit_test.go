package middleware

import (
	"testing"
)

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 5)
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("Expected request %d within burst to be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("Expected request beyond burst to be denied")
	}
}

func TestRateLimiter_SeparateClients(t *testing.T) {
	rl := NewRateLimiterWithConfig(60, 1)
	defer rl.Stop()

	if !rl.Allow("10.0.0.1") {
		t.Error("Expected first client to be allowed")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("Expected second client to have its own budget")
	}
}
