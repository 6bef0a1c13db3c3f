package player

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"usra/internal/adapters/storage"
	domain "usra/internal/domain/player"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new PlayerStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const playerColumns = "id, school_id, name, date_of_birth, age, sex, class, learner_id, guardian_contact, photo_ref, created_at"

// Save persists a Player to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{"id", "school_id", "name", "date_of_birth", "age", "sex", "class", "learner_id", "guardian_contact", "photo_ref", "created_at"}
	placeholders := make([]string, len(fields))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	updates := []string{
		"name=excluded.name",
		"date_of_birth=excluded.date_of_birth",
		"age=excluded.age",
		"sex=excluded.sex",
		"class=excluded.class",
		"learner_id=excluded.learner_id",
		"guardian_contact=excluded.guardian_contact",
		"photo_ref=excluded.photo_ref",
	}

	query := fmt.Sprintf(
		"INSERT INTO player (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.SchoolID,
		entity.Name,
		entity.DateOfBirth.Format("2006-01-02"),
		entity.Age,
		entity.Sex,
		entity.Class,
		entity.LearnerID,
		entity.GuardianContact,
		entity.PhotoRef,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListBySchool retrieves all Players registered under the given school,
// oldest registration first.
// PRE: schoolID is non-empty
// POST: Returns matching entities; empty slice when none exist
func (s *SQLiteStore) ListBySchool(ctx context.Context, schoolID string) ([]domain.Player, error) {
	query := "SELECT " + playerColumns + " FROM player WHERE school_id = ? ORDER BY created_at ASC"
	rows, err := s.db.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Player
	for rows.Next() {
		entity, err := scanPlayer(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, nil
}

// scanPlayer extracts a Player from a row scanner function.
func scanPlayer(scan func(dest ...interface{}) error) (domain.Player, error) {
	var entity domain.Player
	var dateOfBirth, createdAt string
	var guardianContact, photoRef sql.NullString
	err := scan(
		&entity.ID,
		&entity.SchoolID,
		&entity.Name,
		&dateOfBirth,
		&entity.Age,
		&entity.Sex,
		&entity.Class,
		&entity.LearnerID,
		&guardianContact,
		&photoRef,
		&createdAt,
	)
	if err != nil {
		return domain.Player{}, err
	}
	entity.DateOfBirth, _ = storage.ParseTime(dateOfBirth)
	entity.GuardianContact = guardianContact.String
	entity.PhotoRef = photoRef.String
	entity.CreatedAt, _ = storage.ParseTime(createdAt)
	return entity, nil
}
