package member

import (
	"context"
	"database/sql"
	"fmt"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/member"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new member store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const memberColumns = "id, first_name, last_name, email, phone, join_date, membership_type, status"

func scanMember(scan func(dest ...any) error) (domain.Member, error) {
	var entity domain.Member
	var joinDate string
	err := scan(
		&entity.ID,
		&entity.FirstName,
		&entity.LastName,
		&entity.Email,
		&entity.Phone,
		&joinDate,
		&entity.MembershipType,
		&entity.Status,
	)
	if err != nil {
		return domain.Member{}, err
	}
	entity.JoinDate, err = storage.ParseDate(joinDate)
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to parse join_date: %w", err)
	}
	return entity, nil
}

// GetByID retrieves a Member by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Member, error) {
	query := "SELECT " + memberColumns + " FROM member WHERE id = ?"

	row := s.db.QueryRowContext(ctx, query, id)
	entity, err := scanMember(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Member{}, fmt.Errorf("member not found: %w", err)
	}
	return entity, err
}

// Save persists a Member.
// New records are placed at the head of the list; updates keep their position.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Member) error {
	query := `INSERT INTO member (id, first_name, last_name, email, phone, join_date, membership_type, status, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MIN(position), 0) - 1 FROM member))
		ON CONFLICT(id) DO UPDATE SET
			first_name=excluded.first_name, last_name=excluded.last_name,
			email=excluded.email, phone=excluded.phone,
			join_date=excluded.join_date,
			membership_type=excluded.membership_type, status=excluded.status`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.FirstName,
		entity.LastName,
		entity.Email,
		entity.Phone,
		storage.FormatDate(entity.JoinDate),
		entity.MembershipType,
		entity.Status,
	)
	return err
}

func listWhereClause(filter ListFilter) (string, []any) {
	where := ""
	var args []any
	if filter.Status != "" {
		where = " WHERE status = ?"
		args = append(args, filter.Status)
	}
	return where, args
}

// List retrieves Members matching the filter, newest additions first.
// PRE: filter has valid parameters
// POST: Returns matching entities in display order
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Member, error) {
	where, args := listWhereClause(filter)
	query := "SELECT " + memberColumns + " FROM member" + where + " ORDER BY position ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Member
	for rows.Next() {
		entity, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the number of members matching the filter.
// PRE: filter has valid parameters
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context, filter ListFilter) (int, error) {
	where, args := listWhereClause(filter)
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM member"+where, args...).Scan(&count)
	return count, err
}
