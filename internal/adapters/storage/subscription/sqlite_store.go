package subscription

import (
	"context"
	"database/sql"
	"fmt"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/subscription"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new subscription store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const subscriptionColumns = "id, member_id, sport_id, start_date, end_date, status, price, payment_method, last_payment"

func scanSubscription(scan func(dest ...any) error) (domain.Subscription, error) {
	var entity domain.Subscription
	var startDate, endDate, lastPayment string
	err := scan(
		&entity.ID,
		&entity.MemberID,
		&entity.SportID,
		&startDate,
		&endDate,
		&entity.Status,
		&entity.Price,
		&entity.PaymentMethod,
		&lastPayment,
	)
	if err != nil {
		return domain.Subscription{}, err
	}
	if entity.StartDate, err = storage.ParseDate(startDate); err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to parse start_date: %w", err)
	}
	if entity.EndDate, err = storage.ParseDate(endDate); err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to parse end_date: %w", err)
	}
	if entity.LastPayment, err = storage.ParseDate(lastPayment); err != nil {
		return domain.Subscription{}, fmt.Errorf("failed to parse last_payment: %w", err)
	}
	return entity, nil
}

// GetByID retrieves a Subscription by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Subscription, error) {
	query := "SELECT " + subscriptionColumns + " FROM subscription WHERE id = ?"

	row := s.db.QueryRowContext(ctx, query, id)
	entity, err := scanSubscription(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Subscription{}, fmt.Errorf("subscription not found: %w", err)
	}
	return entity, err
}

// Save persists a Subscription.
// New records are appended to the end of the list; updates keep their position.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Subscription) error {
	query := `INSERT INTO subscription (id, member_id, sport_id, start_date, end_date, status, price, payment_method, last_payment, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM subscription))
		ON CONFLICT(id) DO UPDATE SET
			member_id=excluded.member_id, sport_id=excluded.sport_id,
			start_date=excluded.start_date, end_date=excluded.end_date,
			status=excluded.status, price=excluded.price,
			payment_method=excluded.payment_method, last_payment=excluded.last_payment`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.MemberID,
		entity.SportID,
		storage.FormatDate(entity.StartDate),
		storage.FormatDate(entity.EndDate),
		entity.Status,
		entity.Price,
		entity.PaymentMethod,
		storage.FormatDate(entity.LastPayment),
	)
	return err
}

func (s *SQLiteStore) queryList(ctx context.Context, where string, args ...any) ([]domain.Subscription, error) {
	query := "SELECT " + subscriptionColumns + " FROM subscription" + where + " ORDER BY position ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Subscription
	for rows.Next() {
		entity, err := scanSubscription(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// List retrieves Subscriptions matching the filter, in insertion order.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Subscription, error) {
	if filter.Status != "" {
		return s.queryList(ctx, " WHERE status = ?", filter.Status)
	}
	return s.queryList(ctx, "")
}

// ListByMemberID retrieves all Subscriptions held by a member.
// PRE: memberID is non-empty
// POST: Returns the member's subscriptions in insertion order
func (s *SQLiteStore) ListByMemberID(ctx context.Context, memberID string) ([]domain.Subscription, error) {
	return s.queryList(ctx, " WHERE member_id = ?", memberID)
}

// ListBySportID retrieves all Subscriptions for a sport.
// PRE: sportID is non-empty
// POST: Returns the sport's subscriptions in insertion order
func (s *SQLiteStore) ListBySportID(ctx context.Context, sportID string) ([]domain.Subscription, error) {
	return s.queryList(ctx, " WHERE sport_id = ?", sportID)
}

// Count returns the number of subscriptions matching the filter.
// PRE: filter has valid parameters
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where := ""
	var args []any
	if filter.Status != "" {
		where = " WHERE status = ?"
		args = append(args, filter.Status)
	}
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM subscription"+where, args...).Scan(&count)
	return count, err
}
