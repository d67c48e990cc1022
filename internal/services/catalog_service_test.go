package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"travelbot/pkg/utils"
)

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 20, clampLimit(0))
	assert.Equal(t, 20, clampLimit(-3))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, 50, clampLimit(500))
}

func TestCatalogService_Search(t *testing.T) {
	svc := NewCatalogService(newCatalogFixture(t), zap.NewNop())
	ctx := context.Background()

	destinations, err := svc.SearchDestinations(ctx, "  hoi an ", 0)
	require.NoError(t, err)
	require.Len(t, destinations, 1)

	all, err := svc.SearchDestinations(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Hội An", all[0].Name, "empty query lists top-rated first")

	hotels, err := svc.SearchHotels(ctx, "anantara", destinations[0].ID.String(), 5)
	require.NoError(t, err)
	assert.Len(t, hotels, 1)

	_, err = svc.SearchHotels(ctx, "x", "not-a-uuid", 5)
	assert.ErrorIs(t, err, utils.ErrInvalidRequestInput)

	restaurants, err := svc.SearchRestaurants(ctx, "pho", 5)
	require.NoError(t, err)
	assert.Empty(t, restaurants)

	attractions, err := svc.SearchAttractions(ctx, "", 5)
	require.NoError(t, err)
	assert.Empty(t, attractions)
}

func TestCatalogService_GetDestination(t *testing.T) {
	repo := newCatalogFixture(t)
	svc := NewCatalogService(repo, zap.NewNop())
	ctx := context.Background()

	found, err := svc.SearchDestinations(ctx, "hoi an", 1)
	require.NoError(t, err)
	require.Len(t, found, 1)

	d, err := svc.GetDestination(ctx, found[0].ID.String())
	require.NoError(t, err)
	assert.Len(t, d.Hotels, 1)

	_, err = svc.GetDestination(ctx, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)

	_, err = svc.GetDestination(ctx, "42")
	assert.ErrorIs(t, err, utils.ErrInvalidRequestInput)
}
