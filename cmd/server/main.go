package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	web "clubdesk/internal/adapters/http"
	"clubdesk/internal/adapters/storage"
	memberStore "clubdesk/internal/adapters/storage/member"
	sportStore "clubdesk/internal/adapters/storage/sport"
	subscriptionStore "clubdesk/internal/adapters/storage/subscription"
	"clubdesk/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	// The dataset is in-memory per process run. cache=shared keeps all pool
	// connections on the same in-memory database.
	db, err := sql.Open("sqlite", storage.InMemoryDSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	stores := &web.Stores{
		SportStore:        sportStore.NewSQLiteStore(db),
		MemberStore:       memberStore.NewSQLiteStore(db),
		SubscriptionStore: subscriptionStore.NewSQLiteStore(db),
	}

	// Simulated read latency, matching the feel of a remote backend during
	// development. Zero disables it.
	latency := parseLatency(os.Getenv("CLUBDESK_SEED_LATENCY"))
	orchestrators.SeedLatency = latency

	// Seed the demo catalogue outside production (idempotent).
	if os.Getenv("CLUBDESK_ENV") != "production" {
		seedDeps := orchestrators.SeedFixturesDeps{
			SportStore:        stores.SportStore,
			MemberStore:       stores.MemberStore,
			SubscriptionStore: stores.SubscriptionStore,
		}
		if err := orchestrators.ExecuteSeedFixtures(context.Background(), seedDeps); err != nil {
			log.Fatalf("failed to seed fixtures: %v", err)
		}
		log.Println("Demo fixtures loaded (dev mode)")
	}

	mux := web.NewMux("static", stores, latency)

	addr := envOrDefault("CLUBDESK_ADDR", ":8080")
	log.Printf("Clubdesk %s starting on %s (env=%s)", version, addr, envOrDefault("CLUBDESK_ENV", "development"))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func parseLatency(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("Ignoring invalid CLUBDESK_SEED_LATENCY %q", raw)
		return 0
	}
	return d
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
