package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenearth.GO/core/cache"
	sessionRepo "greenearth.GO/model/repository/session"
)

type failingRepo struct {
	sessionRepo.SessionRepository
}

func (failingRepo) Sweep(context.Context) (int, error) {
	return 0, errors.New("store down")
}

func TestSweepSessions_RemovesExpired(t *testing.T) {
	repo := sessionRepo.NewMemoryRepository(cache.NewCache(), 10*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, "old", []byte(`{}`)))

	time.Sleep(30 * time.Millisecond)
	removed, err := SweepSessions(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Load(ctx, "old")
	assert.ErrorIs(t, err, sessionRepo.ErrNotFound)

	removed, err = SweepSessions(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestSweepSessions_ReportsStoreFailure(t *testing.T) {
	_, err := SweepSessions(context.Background(), failingRepo{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store down")
}
