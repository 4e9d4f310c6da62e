package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"vimlearn/internal/ports/output"
)

var _ output.PreferenceStore = (*PreferenceRepository)(nil)

// querier is the part of pgxpool.Pool used by the repository.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PreferenceRepository implements output.PreferenceStore on the
// preferences table.
type PreferenceRepository struct {
	db querier
}

// NewPreferenceRepository creates a PreferenceRepository.
func NewPreferenceRepository(db querier) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

const (
	getPreferenceSQL = `SELECT value FROM preferences WHERE name = $1`
	setPreferenceSQL = `INSERT INTO preferences (name, value, updated_at) VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

func (r *PreferenceRepository) Get(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(ctx, getPreferenceSQL, name).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", name, err)
	}
	return value, true, nil
}

func (r *PreferenceRepository) Set(ctx context.Context, name, value string) error {
	if _, err := r.db.Exec(ctx, setPreferenceSQL, name, value); err != nil {
		return fmt.Errorf("set preference %q: %w", name, err)
	}
	return nil
}
