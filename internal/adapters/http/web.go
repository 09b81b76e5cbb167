package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"clubdesk/internal/adapters/http/middleware"
	memberStore "clubdesk/internal/adapters/storage/member"
	sportStore "clubdesk/internal/adapters/storage/sport"
	subscriptionStore "clubdesk/internal/adapters/storage/subscription"
)

// Stores holds all storage dependencies.
type Stores struct {
	SportStore        sportStore.Store
	MemberStore       memberStore.Store
	SubscriptionStore subscriptionStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// loadCSRFKey reads the CSRF secret from CLUBDESK_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("CLUBDESK_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("CLUBDESK_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("CLUBDESK_ENV") == "production" {
		log.Fatal("CLUBDESK_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set CLUBDESK_CSRF_KEY for production.")
	return key
}

// NewMux wires HTTP handlers for the app.
// Unhandled paths fall through to the static file server.
func NewMux(staticDir string, s *Stores, latency time.Duration) http.Handler {
	stores = s

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	registerRoutes(mux)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.SimulatedLatency(latency),
	)
}
