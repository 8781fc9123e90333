package schools

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"weighroom-backend/database"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const schoolColumns = `id, login_code, name, password_hash, primary_color, secondary_color`

func (r *PostgresRepository) Create(ctx context.Context, school NewSchool) (School, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return School{}, fmt.Errorf("begin create school transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.GetContext(ctx, &exists, `SELECT COUNT(*) FROM schools WHERE login_code = $1`, school.Code)
	if err != nil {
		return School{}, fmt.Errorf("check school code: %w", err)
	}
	if exists > 0 {
		return School{}, ErrDuplicateCode
	}

	var created School
	err = tx.GetContext(ctx, &created, `
		INSERT INTO schools (name, login_code, password_hash)
		VALUES ($1, $2, $3)
		RETURNING `+schoolColumns,
		school.Name, school.Code, school.PasswordHash)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return School{}, ErrDuplicateCode
		}
		return School{}, fmt.Errorf("insert school: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return School{}, fmt.Errorf("commit create school transaction: %w", err)
	}
	return created, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (School, error) {
	var s School
	err := r.db.GetContext(ctx, &s, `SELECT `+schoolColumns+` FROM schools WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return School{}, ErrNotFound
	}
	if err != nil {
		return School{}, fmt.Errorf("get school %d: %w", id, err)
	}
	return s, nil
}

func (r *PostgresRepository) GetByCode(ctx context.Context, code string) (School, error) {
	var s School
	err := r.db.GetContext(ctx, &s, `SELECT `+schoolColumns+` FROM schools WHERE login_code = $1 LIMIT 1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return School{}, ErrNotFound
	}
	if err != nil {
		return School{}, fmt.Errorf("get school by code: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]School, error) {
	out := make([]School, 0)
	if err := r.db.SelectContext(ctx, &out, `SELECT `+schoolColumns+` FROM schools ORDER BY name ASC, id ASC`); err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return out, nil
}

// UpdateSettings applies the patch with one fixed statement; nil fields keep
// their stored value.
func (r *PostgresRepository) UpdateSettings(ctx context.Context, id int64, patch SettingsPatch) (Settings, error) {
	var s Settings
	err := r.db.GetContext(ctx, &s, `
		UPDATE schools SET
			name = COALESCE($1, name),
			primary_color = COALESCE($2, primary_color),
			secondary_color = COALESCE($3, secondary_color),
			password_hash = COALESCE($4, password_hash)
		WHERE id = $5
		RETURNING id, name, primary_color, secondary_color
	`, patch.Name, patch.PrimaryColor, patch.SecondaryColor, patch.PasswordHash, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Settings{}, ErrNotFound
	}
	if err != nil {
		return Settings{}, fmt.Errorf("update school %d settings: %w", id, err)
	}
	return s, nil
}

// Delete removes the school's weight records, its wrestlers, then the school,
// in one transaction.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete school transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM weights
		WHERE wrestler_id IN (SELECT id FROM wrestlers WHERE school_id = $1)
	`, id); err != nil {
		return fmt.Errorf("delete weights for school %d: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM wrestlers WHERE school_id = $1`, id); err != nil {
		return fmt.Errorf("delete wrestlers for school %d: %w", id, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM schools WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete school %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete school transaction: %w", err)
	}
	return nil
}

var _ Repository = (*PostgresRepository)(nil)
