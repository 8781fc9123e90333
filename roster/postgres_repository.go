package roster

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const wrestlerColumns = `id, school_id, first_name, last_name, weight_class, sex`

func (r *PostgresRepository) Create(ctx context.Context, schoolID int64, w NewWrestler) (Wrestler, error) {
	var created Wrestler
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO wrestlers (school_id, first_name, last_name, weight_class, sex)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+wrestlerColumns,
		schoolID, w.FirstName, w.LastName, w.WeightClass, w.Sex)
	if err != nil {
		return Wrestler{}, fmt.Errorf("insert wrestler: %w", err)
	}
	return created, nil
}

// CreateMany inserts the whole batch or nothing.
func (r *PostgresRepository) CreateMany(ctx context.Context, schoolID int64, ws []NewWrestler) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin roster import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO wrestlers (school_id, first_name, last_name, weight_class, sex)
		VALUES ($1, $2, $3, $4, $5)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare wrestler insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range ws {
		if _, err := stmt.ExecContext(ctx, schoolID, w.FirstName, w.LastName, w.WeightClass, w.Sex); err != nil {
			return 0, fmt.Errorf("insert wrestler %s %s: %w", w.FirstName, w.LastName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit roster import transaction: %w", err)
	}
	return len(ws), nil
}

func (r *PostgresRepository) List(ctx context.Context, schoolID int64) ([]Wrestler, error) {
	out := make([]Wrestler, 0)
	err := r.db.SelectContext(ctx, &out, `
		SELECT `+wrestlerColumns+`
		FROM wrestlers
		WHERE school_id = $1
		ORDER BY last_name, first_name, id
	`, schoolID)
	if err != nil {
		return nil, fmt.Errorf("list wrestlers for school %d: %w", schoolID, err)
	}
	return out, nil
}

// Update applies the patch with a fixed statement; nil fields keep their value.
func (r *PostgresRepository) Update(ctx context.Context, schoolID, id int64, patch WrestlerPatch) (Wrestler, error) {
	var w Wrestler
	err := r.db.GetContext(ctx, &w, `
		UPDATE wrestlers SET
			first_name = COALESCE($1, first_name),
			last_name = COALESCE($2, last_name),
			weight_class = COALESCE($3, weight_class),
			sex = COALESCE($4, sex)
		WHERE id = $5 AND school_id = $6
		RETURNING `+wrestlerColumns,
		patch.FirstName, patch.LastName, patch.WeightClass, patch.Sex, id, schoolID)
	if errors.Is(err, sql.ErrNoRows) {
		return Wrestler{}, ErrNotFound
	}
	if err != nil {
		return Wrestler{}, fmt.Errorf("update wrestler %d: %w", id, err)
	}
	return w, nil
}

// Delete removes the wrestler's weight records and then the wrestler in one
// transaction.
func (r *PostgresRepository) Delete(ctx context.Context, schoolID, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete wrestler transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM weights
		WHERE wrestler_id IN (SELECT id FROM wrestlers WHERE id = $1 AND school_id = $2)
	`, id, schoolID); err != nil {
		return fmt.Errorf("delete weights for wrestler %d: %w", id, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM wrestlers WHERE id = $1 AND school_id = $2`, id, schoolID)
	if err != nil {
		return fmt.Errorf("delete wrestler %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete wrestler transaction: %w", err)
	}
	return nil
}

var _ Repository = (*PostgresRepository)(nil)
