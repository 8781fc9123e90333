package weights

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

type PostgresRepository struct {
	db *sqlx.DB
}

func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, schoolID int64, rec NewRecord) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin add weight transaction: %w", err)
	}
	defer tx.Rollback()

	var wrestlerID int64
	err = tx.GetContext(ctx, &wrestlerID, `
		SELECT id FROM wrestlers
		WHERE school_id = $1 AND first_name = $2 AND last_name = $3
		ORDER BY id
		LIMIT 1
	`, schoolID, rec.FirstName, rec.LastName)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrWrestlerNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("look up wrestler %s %s: %w", rec.FirstName, rec.LastName, err)
	}

	var id int64
	err = tx.GetContext(ctx, &id, `
		INSERT INTO weights (wrestler_id, date, weight, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, wrestlerID, rec.Date.UTC(), rec.Weight, rec.Type)
	if err != nil {
		return 0, fmt.Errorf("insert weight for wrestler %d: %w", wrestlerID, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit add weight transaction: %w", err)
	}
	return id, nil
}

const historySelect = `
	SELECT wt.id, wt.wrestler_id, w.first_name || ' ' || w.last_name AS name,
		wt.date, wt.weight, COALESCE(wt.type, '') AS type
	FROM weights wt
	JOIN wrestlers w ON w.id = wt.wrestler_id
	WHERE w.school_id = $1`

func (r *PostgresRepository) History(ctx context.Context, schoolID int64, nameFilter string) ([]Record, error) {
	out := make([]Record, 0)

	var err error
	if filter := strings.TrimSpace(nameFilter); filter != "" {
		err = r.db.SelectContext(ctx, &out, historySelect+`
			AND LOWER(w.first_name || ' ' || w.last_name) LIKE $2 ESCAPE '\'
			ORDER BY wt.date, wt.id
		`, schoolID, likePattern(filter))
	} else {
		err = r.db.SelectContext(ctx, &out, historySelect+`
			ORDER BY wt.date, wt.id
		`, schoolID)
	}
	if err != nil {
		return nil, fmt.Errorf("list weights for school %d: %w", schoolID, err)
	}
	return out, nil
}

func likePattern(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
	return "%" + s + "%"
}

var _ Repository = (*PostgresRepository)(nil)
