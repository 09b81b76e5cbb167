package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// InMemoryDSN opens a shared in-memory database. The dataset lives in
// process memory only and is rebuilt from fixtures on every start.
const InMemoryDSN = "file:clubdesk?mode=memory&cache=shared"

// SQLDB is the subset of *sql.DB the stores depend on.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS sport (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		instructor TEXT NOT NULL DEFAULT '',
		schedule TEXT NOT NULL DEFAULT '',
		capacity INTEGER NOT NULL,
		current_members INTEGER NOT NULL DEFAULT 0,
		price REAL NOT NULL DEFAULT 0,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS member (
		id TEXT PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		join_date TEXT NOT NULL,
		membership_type TEXT NOT NULL,
		status TEXT NOT NULL,
		position INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS subscription (
		id TEXT PRIMARY KEY,
		member_id TEXT NOT NULL,
		sport_id TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NOT NULL,
		status TEXT NOT NULL,
		price REAL NOT NULL DEFAULT 0,
		payment_method TEXT NOT NULL,
		last_payment TEXT NOT NULL,
		position INTEGER NOT NULL,
		FOREIGN KEY (member_id) REFERENCES member(id),
		FOREIGN KEY (sport_id) REFERENCES sport(id)
	);

	CREATE INDEX IF NOT EXISTS idx_subscription_member ON subscription(member_id);
	CREATE INDEX IF NOT EXISTS idx_subscription_sport ON subscription(sport_id);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
