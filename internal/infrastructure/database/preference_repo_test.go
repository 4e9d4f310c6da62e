package database

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type fakeDB struct {
	rows    map[string]string
	rowErr  error
	execErr error
	execs   [][]any
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if f.rowErr != nil {
		return fakeRow{err: f.rowErr}
	}
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func (f *fakeDB) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, args)
	if f.execErr != nil {
		return pgconn.CommandTag{}, f.execErr
	}
	f.rows[args[0].(string)] = args[1].(string)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestPreferenceRepository_Fake(t *testing.T) {
	ctx := context.Background()
	db := &fakeDB{rows: map[string]string{}}
	repo := NewPreferenceRepository(db)

	_, ok, err := repo.Get(ctx, "vim-learn-locale")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Set(ctx, "vim-learn-locale", "en"))
	v, ok, err := repo.Get(ctx, "vim-learn-locale")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", v)
	assert.Equal(t, [][]any{{"vim-learn-locale", "en"}}, db.execs)
}

func TestPreferenceRepository_Errors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	repo := NewPreferenceRepository(&fakeDB{rows: map[string]string{}, rowErr: boom, execErr: boom})

	_, _, err := repo.Get(ctx, "k")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, repo.Set(ctx, "k", "v"), boom)
}

func TestPreferenceRepository_Postgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	require.NoError(t, RunMigrations(dsn))
	pool, err := NewPool(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	repo := NewPreferenceRepository(pool)
	require.NoError(t, repo.Set(ctx, "test-locale", "uk"))
	require.NoError(t, repo.Set(ctx, "test-locale", "de"))

	v, ok, err := repo.Get(ctx, "test-locale")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "de", v)

	_, err = pool.Exec(ctx, `DELETE FROM preferences WHERE name = $1`, "test-locale")
	require.NoError(t, err)
}
