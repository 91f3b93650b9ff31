package gym_test

import (
	"os"
	"testing"
	"time"

	"github.com/ironloft/gymd/pkg/httpx"
)

// TestMain relaxes the rate limits before any server is built. Tests make
// many rapid requests which would otherwise hit the strict production
// limits.
func TestMain(m *testing.M) {
	httpx.StrictLimit = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
	httpx.ModerateLimit = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
	httpx.LenientLimit = httpx.RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}

	os.Exit(m.Run())
}
