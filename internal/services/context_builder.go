package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"travelbot/internal/config"
	"travelbot/internal/models/db_models"
	"travelbot/internal/repositories"
	"travelbot/pkg/cache"
	"travelbot/pkg/utils"
)

const (
	travelContextKey = "travel_context"

	contextMinRating       = 4.0
	contextDestinationsMax = 10
	contextHotelsMax       = 5
	contextSeparator       = " | "
)

type ContextBuilderInterface interface {
	BuildContext(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

type ContextBuilder struct {
	catalogRepo repositories.CatalogRepository
	store       cache.Store
	ttl         time.Duration
	logger      *zap.Logger
}

func NewContextBuilder(catalogRepo repositories.CatalogRepository, store cache.Store, cfg *config.Config, logger *zap.Logger) ContextBuilderInterface {
	return &ContextBuilder{
		catalogRepo: catalogRepo,
		store:       store,
		ttl:         cfg.CacheTimeout,
		logger:      logger,
	}
}

// BuildContext returns the cached catalog digest, rebuilding it from the
// database on a miss. The digest may be up to ttl old.
func (b *ContextBuilder) BuildContext(ctx context.Context) (string, error) {
	cached, found, err := b.store.Get(ctx, travelContextKey)
	if err != nil {
		b.logger.Warn("context cache read failed", zap.Error(err))
	} else if found {
		return cached, nil
	}

	digest, err := b.compose(ctx)
	if err != nil {
		b.logger.Error("failed to load travel context", zap.Error(err))
		return "", utils.ErrDatabaseError
	}

	if err := b.store.Set(ctx, travelContextKey, digest, b.ttl); err != nil {
		b.logger.Warn("context cache write failed", zap.Error(err))
	}

	return digest, nil
}

func (b *ContextBuilder) Invalidate(ctx context.Context) error {
	return b.store.Delete(ctx, travelContextKey)
}

func (b *ContextBuilder) compose(ctx context.Context) (string, error) {
	destinations, err := b.catalogRepo.TopDestinations(ctx, contextMinRating, contextDestinationsMax)
	if err != nil {
		return "", fmt.Errorf("top destinations: %w", err)
	}

	hotels, err := b.catalogRepo.TopHotels(ctx, contextMinRating, contextHotelsMax)
	if err != nil {
		return "", fmt.Errorf("top hotels: %w", err)
	}

	var clauses []string
	if clause := destinationClause(destinations); clause != "" {
		clauses = append(clauses, clause)
	}
	if clause := hotelClause(hotels); clause != "" {
		clauses = append(clauses, clause)
	}

	return strings.Join(clauses, contextSeparator), nil
}

func destinationClause(destinations []db_models.Destination) string {
	if len(destinations) == 0 {
		return ""
	}
	items := make([]string, len(destinations))
	for i, d := range destinations {
		items[i] = fmt.Sprintf("%s (%s, %s)", d.Name, d.City, d.Country)
	}
	return "Điểm đến phổ biến: " + strings.Join(items, ", ")
}

func hotelClause(hotels []db_models.Hotel) string {
	if len(hotels) == 0 {
		return ""
	}
	items := make([]string, len(hotels))
	for i, h := range hotels {
		place := ""
		if h.Destination != nil {
			place = h.Destination.Name + ", "
		}
		items[i] = fmt.Sprintf("%s (%s%d sao)", h.Name, place, h.StarRating)
	}
	return "Khách sạn nổi bật: " + strings.Join(items, ", ")
}
