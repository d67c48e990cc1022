package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"travelbot/internal/models/db_models"
	"travelbot/internal/repositories"
	"travelbot/pkg/utils"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

type CatalogServiceInterface interface {
	SearchDestinations(ctx context.Context, query string, limit int) ([]db_models.Destination, error)
	SearchHotels(ctx context.Context, query, destinationID string, limit int) ([]db_models.Hotel, error)
	SearchRestaurants(ctx context.Context, query string, limit int) ([]db_models.Restaurant, error)
	SearchAttractions(ctx context.Context, query string, limit int) ([]db_models.Attraction, error)
	GetDestination(ctx context.Context, id string) (*db_models.Destination, error)
}

type CatalogService struct {
	catalogRepo repositories.CatalogRepository
	logger      *zap.Logger
}

func NewCatalogService(catalogRepo repositories.CatalogRepository, logger *zap.Logger) CatalogServiceInterface {
	return &CatalogService{catalogRepo: catalogRepo, logger: logger}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}

func (s *CatalogService) SearchDestinations(ctx context.Context, query string, limit int) ([]db_models.Destination, error) {
	destinations, err := s.catalogRepo.SearchDestinations(ctx, strings.TrimSpace(query), clampLimit(limit))
	if err != nil {
		s.logger.Error("search destinations", zap.String("query", query), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return destinations, nil
}

func (s *CatalogService) SearchHotels(ctx context.Context, query, destinationID string, limit int) ([]db_models.Hotel, error) {
	var destID *uuid.UUID
	if destinationID != "" {
		id, err := uuid.Parse(destinationID)
		if err != nil {
			return nil, utils.ErrInvalidRequestInput
		}
		destID = &id
	}

	hotels, err := s.catalogRepo.SearchHotels(ctx, strings.TrimSpace(query), destID, clampLimit(limit))
	if err != nil {
		s.logger.Error("search hotels", zap.String("query", query), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return hotels, nil
}

func (s *CatalogService) SearchRestaurants(ctx context.Context, query string, limit int) ([]db_models.Restaurant, error) {
	restaurants, err := s.catalogRepo.SearchRestaurants(ctx, strings.TrimSpace(query), clampLimit(limit))
	if err != nil {
		s.logger.Error("search restaurants", zap.String("query", query), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return restaurants, nil
}

func (s *CatalogService) SearchAttractions(ctx context.Context, query string, limit int) ([]db_models.Attraction, error) {
	attractions, err := s.catalogRepo.SearchAttractions(ctx, strings.TrimSpace(query), clampLimit(limit))
	if err != nil {
		s.logger.Error("search attractions", zap.String("query", query), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}

func (s *CatalogService) GetDestination(ctx context.Context, id string) (*db_models.Destination, error) {
	destID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrInvalidRequestInput
	}

	destination, err := s.catalogRepo.GetDestinationWithDetails(ctx, destID)
	if err != nil {
		s.logger.Error("get destination", zap.String("id", id), zap.Error(err))
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}
	return destination, nil
}
