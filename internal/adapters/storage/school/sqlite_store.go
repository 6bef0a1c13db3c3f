package school

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"usra/internal/adapters/storage"
	domain "usra/internal/domain/school"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SchoolStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const schoolColumns = "id, account_id, name, centre_number, email, office_contact, region, district, badge_ref, " +
	"admin_name, admin_nin, admin_contact, admin_email, admin_role, admin_education, photo_ref, status, created_at"

// GetByID retrieves a School by its ID.
// PRE: id is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.School, error) {
	query := "SELECT " + schoolColumns + " FROM school WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanSchool(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.School{}, fmt.Errorf("school %s: %w", id, storage.ErrNotFound)
	}
	return entity, err
}

// GetByAccountID retrieves the School owned by the given account.
// PRE: accountID is non-empty
// POST: Returns the entity or storage.ErrNotFound
func (s *SQLiteStore) GetByAccountID(ctx context.Context, accountID string) (domain.School, error) {
	query := "SELECT " + schoolColumns + " FROM school WHERE account_id = ? ORDER BY created_at ASC LIMIT 1"
	row := s.db.QueryRowContext(ctx, query, accountID)

	entity, err := scanSchool(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.School{}, fmt.Errorf("school for account: %w", storage.ErrNotFound)
	}
	return entity, err
}

// Save persists a School to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.School) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{
		"id", "account_id", "name", "centre_number", "email", "office_contact", "region", "district", "badge_ref",
		"admin_name", "admin_nin", "admin_contact", "admin_email", "admin_role", "admin_education", "photo_ref",
		"status", "created_at",
	}
	placeholders := make([]string, len(fields))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	updates := []string{
		"name=excluded.name",
		"centre_number=excluded.centre_number",
		"email=excluded.email",
		"office_contact=excluded.office_contact",
		"region=excluded.region",
		"district=excluded.district",
		"badge_ref=excluded.badge_ref",
		"admin_name=excluded.admin_name",
		"admin_nin=excluded.admin_nin",
		"admin_contact=excluded.admin_contact",
		"admin_email=excluded.admin_email",
		"admin_role=excluded.admin_role",
		"admin_education=excluded.admin_education",
		"photo_ref=excluded.photo_ref",
		"status=excluded.status",
	}

	query := fmt.Sprintf(
		"INSERT INTO school (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.AccountID,
		entity.Name,
		entity.CentreNumber,
		entity.Email,
		entity.OfficeContact,
		entity.Region,
		entity.District,
		entity.BadgeRef,
		entity.AdminName,
		entity.AdminNIN,
		entity.AdminContact,
		entity.AdminEmail,
		entity.AdminRole,
		entity.AdminEducation,
		entity.PhotoRef,
		entity.Status,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Count returns the total number of registered schools.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM school").Scan(&count)
	return count, err
}

// scanSchool extracts a School from a row scanner function.
func scanSchool(scan func(dest ...interface{}) error) (domain.School, error) {
	var entity domain.School
	var createdAt string
	var centreNumber, email, badgeRef, adminNIN, photoRef sql.NullString
	err := scan(
		&entity.ID,
		&entity.AccountID,
		&entity.Name,
		&centreNumber,
		&email,
		&entity.OfficeContact,
		&entity.Region,
		&entity.District,
		&badgeRef,
		&entity.AdminName,
		&adminNIN,
		&entity.AdminContact,
		&entity.AdminEmail,
		&entity.AdminRole,
		&entity.AdminEducation,
		&photoRef,
		&entity.Status,
		&createdAt,
	)
	if err != nil {
		return domain.School{}, err
	}
	entity.CentreNumber = centreNumber.String
	entity.Email = email.String
	entity.BadgeRef = badgeRef.String
	entity.AdminNIN = adminNIN.String
	entity.PhotoRef = photoRef.String
	entity.CreatedAt, _ = storage.ParseTime(createdAt)
	return entity, nil
}
