package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tower-siege/engine"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "results.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndTop(t *testing.T) {
	s := openTemp(t)
	ctx := context.Background()

	results := []engine.Result{
		{Wave: 4, EnemiesKilled: 30, MoneyEarned: 400, TowersBuilt: 5},
		{Wave: 9, EnemiesKilled: 80, MoneyEarned: 1200, TowersBuilt: 11},
		{Wave: 9, EnemiesKilled: 95, MoneyEarned: 1300, TowersBuilt: 12},
		{Wave: 2, EnemiesKilled: 7, MoneyEarned: 60, TowersBuilt: 1},
	}
	for _, r := range results {
		rec, err := s.Save(ctx, r)
		require.NoError(t, err)
		assert.NotZero(t, rec.ID)
		assert.False(t, rec.CreatedAt.IsZero())
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	top, err := s.Top(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, 9, top[0].Wave)
	assert.Equal(t, 95, top[0].EnemiesKilled)
	assert.Equal(t, 9, top[1].Wave)
	assert.Equal(t, 80, top[1].EnemiesKilled)
	assert.Equal(t, 4, top[2].Wave)
}

func TestTop_NonPositive(t *testing.T) {
	s := openTemp(t)
	top, err := s.Top(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.db")
	ctx := context.Background()

	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	_, err = s.Save(ctx, engine.Result{Wave: 12, EnemiesKilled: 140})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	top, err := s.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 12, top[0].Wave)
	assert.Equal(t, 140, top[0].EnemiesKilled)
}

func TestOpen_Memory(t *testing.T) {
	s, err := Open("", zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Save(context.Background(), engine.Result{Wave: 1})
	require.NoError(t, err)

	top, err := s.Top(context.Background(), 5)
	require.NoError(t, err)
	assert.NotEmpty(t, top)
}

func TestSave_CancelledContext(t *testing.T) {
	s := openTemp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, engine.Result{Wave: 3})
	assert.Error(t, err)
}
