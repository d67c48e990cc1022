package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelbot/internal/infra"
	"travelbot/pkg/cache"
)

func TestCacheEntryStore_SetGetOverwriteDelete(t *testing.T) {
	ctx := context.Background()
	s := NewCacheEntryStore(infra.NewTestDB(t))

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "session:abc", "token-1", time.Hour))
	v, ok, err := s.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-1", v)

	require.NoError(t, s.Set(ctx, "session:abc", "token-2", 0))
	v, ok, err = s.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-2", v)

	require.NoError(t, s.Delete(ctx, "session:abc"))
	_, ok, err = s.Get(ctx, "session:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Delete(ctx, "session:abc"))
}

func TestCacheEntryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	db := infra.NewTestDB(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := newCacheEntryStore(db, func() time.Time { return now })

	require.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	require.NoError(t, s.Set(ctx, "forever", "v", 0))

	now = now.Add(59 * time.Second)
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	var rows int64
	require.NoError(t, db.Table("cache_entries").Where("cache_key = ?", "k").Count(&rows).Error)
	assert.Zero(t, rows)

	now = now.Add(365 * 24 * time.Hour)
	_, ok, err = s.Get(ctx, "forever")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCacheEntryStore_SurvivesNewInstance(t *testing.T) {
	ctx := context.Background()
	db := infra.NewTestDB(t)

	require.NoError(t, NewCacheEntryStore(db).Set(ctx, "session:sid", "tok", time.Hour))

	v, ok, err := NewCacheEntryStore(db).Get(ctx, "session:sid")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok", v)
}

func TestCacheEntryStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	db := infra.NewTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	s := NewCacheEntryStore(db)
	_, _, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, cache.ErrUnavailable)
	assert.ErrorIs(t, s.Set(ctx, "k", "v", time.Second), cache.ErrUnavailable)
}
