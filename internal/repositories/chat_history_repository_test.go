package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelbot/internal/infra"
	"travelbot/internal/models/db_models"
)

func TestChatHistoryRepository_OrderingAndCounts(t *testing.T) {
	repo := NewChatHistoryRepository(infra.NewTestDB(t))
	ctx := context.Background()
	accountID := uuid.New()
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	for i, msg := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Create(ctx, &db_models.ChatExchange{
			SessionToken: "s1",
			AccountID:    &accountID,
			UserMessage:  msg,
			BotResponse:  "reply " + msg,
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &db_models.ChatExchange{SessionToken: "s2", UserMessage: "other", BotResponse: "x", Timestamp: base}))

	asc, err := repo.ListBySession(ctx, "s1", 0, 10)
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, "first", asc[0].UserMessage)
	assert.Equal(t, "third", asc[2].UserMessage)

	desc, err := repo.ListByAccount(ctx, accountID, 0, 2)
	require.NoError(t, err)
	require.Len(t, desc, 2)
	assert.Equal(t, "third", desc[0].UserMessage)

	total, err := repo.CountBySession(ctx, "s1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	total, err = repo.CountByAccount(ctx, accountID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}

func TestChatHistoryRepository_DeleteBySession(t *testing.T) {
	repo := NewChatHistoryRepository(infra.NewTestDB(t))
	ctx := context.Background()

	for _, s := range []string{"s1", "s1", "s2"} {
		require.NoError(t, repo.Create(ctx, &db_models.ChatExchange{SessionToken: s, UserMessage: "m", BotResponse: "r", Timestamp: time.Now()}))
	}

	deleted, err := repo.DeleteBySession(ctx, "s1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	deleted, err = repo.DeleteBySession(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, deleted)

	remaining, err := repo.CountBySession(ctx, "s2")
	require.NoError(t, err)
	assert.EqualValues(t, 1, remaining)
}
