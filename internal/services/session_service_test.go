package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"travelbot/internal/infra"
	"travelbot/internal/repositories"
	"travelbot/pkg/cache"
)

func TestSessionService_GetOrCreate(t *testing.T) {
	svc := NewSessionService(cache.NewMemoryStore(time.Minute), testConfig(), zap.NewNop())
	ctx := context.Background()

	created, err := svc.GetOrCreateSessionToken(ctx, "")
	require.NoError(t, err)
	assert.Len(t, created.ID, 32)
	_, err = uuid.Parse(created.Token)
	assert.NoError(t, err)

	again, err := svc.GetOrCreateSessionToken(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, again)

	token, found, err := svc.LookupSessionToken(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created.Token, token)
}

func TestSessionService_UnknownIDGetsNewToken(t *testing.T) {
	svc := NewSessionService(cache.NewMemoryStore(time.Minute), testConfig(), zap.NewNop())

	session, err := svc.GetOrCreateSessionToken(context.Background(), "expired-sid")
	require.NoError(t, err)
	assert.Equal(t, "expired-sid", session.ID)
	assert.NotEmpty(t, session.Token)
}

func TestSessionService_LookupMissing(t *testing.T) {
	svc := NewSessionService(cache.NewMemoryStore(time.Minute), testConfig(), zap.NewNop())

	_, found, err := svc.LookupSessionToken(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionService_CacheDownStillIssuesToken(t *testing.T) {
	svc := NewSessionService(brokenStore{}, testConfig(), zap.NewNop())

	session, err := svc.GetOrCreateSessionToken(context.Background(), "sid")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}

func TestSessionService_DatabaseStoreSurvivesRestart(t *testing.T) {
	db := infra.NewTestDB(t)
	ctx := context.Background()

	before := NewSessionService(repositories.NewCacheEntryStore(db), testConfig(), zap.NewNop())
	created, err := before.GetOrCreateSessionToken(ctx, "")
	require.NoError(t, err)

	after := NewSessionService(repositories.NewCacheEntryStore(db), testConfig(), zap.NewNop())
	resumed, err := after.GetOrCreateSessionToken(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, resumed)
}
