package sport

import (
	"context"
	"database/sql"
	"fmt"

	"clubdesk/internal/adapters/storage"
	domain "clubdesk/internal/domain/sport"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new sport store.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const sportColumns = "id, name, description, instructor, schedule, capacity, current_members, price"

// GetByID retrieves a Sport by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Sport, error) {
	query := "SELECT " + sportColumns + " FROM sport WHERE id = ?"

	row := s.db.QueryRowContext(ctx, query, id)

	var entity domain.Sport
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Description,
		&entity.Instructor,
		&entity.Schedule,
		&entity.Capacity,
		&entity.CurrentMembers,
		&entity.Price,
	)
	if err == sql.ErrNoRows {
		return domain.Sport{}, fmt.Errorf("sport not found: %w", err)
	}
	return entity, err
}

// Save persists a Sport.
// New records are placed at the head of the list; updates keep their position.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Sport) error {
	query := `INSERT INTO sport (id, name, description, instructor, schedule, capacity, current_members, price, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MIN(position), 0) - 1 FROM sport))
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, description=excluded.description,
			instructor=excluded.instructor, schedule=excluded.schedule,
			capacity=excluded.capacity, current_members=excluded.current_members,
			price=excluded.price`

	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Description,
		entity.Instructor,
		entity.Schedule,
		entity.Capacity,
		entity.CurrentMembers,
		entity.Price,
	)
	return err
}

// List retrieves all Sports, newest additions first.
// POST: Returns entities in display order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Sport, error) {
	query := "SELECT " + sportColumns + " FROM sport ORDER BY position ASC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Sport
	for rows.Next() {
		var entity domain.Sport
		if err := rows.Scan(
			&entity.ID,
			&entity.Name,
			&entity.Description,
			&entity.Instructor,
			&entity.Schedule,
			&entity.Capacity,
			&entity.CurrentMembers,
			&entity.Price,
		); err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the total number of sports.
// POST: Returns count >= 0
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sport").Scan(&count)
	return count, err
}
