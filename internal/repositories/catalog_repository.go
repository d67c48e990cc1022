package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"travelbot/internal/models/db_models"
)

type CatalogRepository interface {
	TopDestinations(ctx context.Context, minRating float64, limit int) ([]db_models.Destination, error)
	TopHotels(ctx context.Context, minRating float64, limit int) ([]db_models.Hotel, error)

	SearchDestinations(ctx context.Context, query string, limit int) ([]db_models.Destination, error)
	SearchHotels(ctx context.Context, query string, destinationID *uuid.UUID, limit int) ([]db_models.Hotel, error)
	SearchRestaurants(ctx context.Context, query string, limit int) ([]db_models.Restaurant, error)
	SearchAttractions(ctx context.Context, query string, limit int) ([]db_models.Attraction, error)

	GetDestinationWithDetails(ctx context.Context, id uuid.UUID) (*db_models.Destination, error)

	CreateDestination(ctx context.Context, d *db_models.Destination) error
	CreateHotel(ctx context.Context, h *db_models.Hotel) error
	CreateRestaurant(ctx context.Context, r *db_models.Restaurant) error
	CreateAttraction(ctx context.Context, a *db_models.Attraction) error
	DeleteDestination(ctx context.Context, id uuid.UUID) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeFilter matches query as a literal, case-insensitive substring of any
// of the given search columns. Columns hold text already lowercased on save.
func likeFilter(q *gorm.DB, query string, cols ...string) *gorm.DB {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	clauses := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		clauses[i] = col + ` LIKE ? ESCAPE '\'`
		args[i] = pattern
	}
	return q.Where(strings.Join(clauses, " OR "), args...)
}

func (r *catalogRepository) TopDestinations(ctx context.Context, minRating float64, limit int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("rating >= ?", minRating).
		Order("rating DESC").
		Limit(limit).
		Find(&destinations).Error
	return destinations, err
}

func (r *catalogRepository) TopHotels(ctx context.Context, minRating float64, limit int) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Destination").
		Where("rating >= ?", minRating).
		Order("rating DESC").
		Limit(limit).
		Find(&hotels).Error
	return hotels, err
}

func (r *catalogRepository) SearchDestinations(ctx context.Context, query string, limit int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	q := r.db.WithContext(ctx).Model(&db_models.Destination{})
	if query != "" {
		q = likeFilter(q, query, "search_text")
	}
	err := q.Order("rating DESC").Limit(limit).Find(&destinations).Error
	return destinations, err
}

func (r *catalogRepository) SearchHotels(ctx context.Context, query string, destinationID *uuid.UUID, limit int) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	q := r.db.WithContext(ctx).
		Model(&db_models.Hotel{}).
		Select("hotels.*").
		Joins("JOIN destinations ON destinations.id = hotels.destination_id").
		Preload("Destination")
	if query != "" {
		q = likeFilter(q, query, "hotels.search_text", "destinations.search_name")
	}
	if destinationID != nil {
		q = q.Where("hotels.destination_id = ?", *destinationID)
	}
	err := q.Order("hotels.rating DESC").Limit(limit).Find(&hotels).Error
	return hotels, err
}

func (r *catalogRepository) SearchRestaurants(ctx context.Context, query string, limit int) ([]db_models.Restaurant, error) {
	var restaurants []db_models.Restaurant
	q := r.db.WithContext(ctx).Model(&db_models.Restaurant{}).Preload("Destination")
	if query != "" {
		q = likeFilter(q, query, "search_text")
	}
	err := q.Order("rating DESC").Limit(limit).Find(&restaurants).Error
	return restaurants, err
}

func (r *catalogRepository) SearchAttractions(ctx context.Context, query string, limit int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	q := r.db.WithContext(ctx).Model(&db_models.Attraction{}).Preload("Destination")
	if query != "" {
		q = likeFilter(q, query, "search_text")
	}
	err := q.Order("rating DESC").Limit(limit).Find(&attractions).Error
	return attractions, err
}

func (r *catalogRepository) GetDestinationWithDetails(ctx context.Context, id uuid.UUID) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Preload("Hotels", func(db *gorm.DB) *gorm.DB { return db.Order("rating DESC") }).
		Preload("Restaurants", func(db *gorm.DB) *gorm.DB { return db.Order("rating DESC") }).
		Preload("Attractions", func(db *gorm.DB) *gorm.DB { return db.Order("rating DESC") }).
		First(&destination, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}

func (r *catalogRepository) CreateDestination(ctx context.Context, d *db_models.Destination) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *catalogRepository) CreateHotel(ctx context.Context, h *db_models.Hotel) error {
	return r.db.WithContext(ctx).Omit("Destination").Create(h).Error
}

func (r *catalogRepository) CreateRestaurant(ctx context.Context, res *db_models.Restaurant) error {
	return r.db.WithContext(ctx).Omit("Destination").Create(res).Error
}

func (r *catalogRepository) CreateAttraction(ctx context.Context, a *db_models.Attraction) error {
	return r.db.WithContext(ctx).Omit("Destination").Create(a).Error
}

func (r *catalogRepository) DeleteDestination(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Destination{}, "id = ?", id).Error
}
