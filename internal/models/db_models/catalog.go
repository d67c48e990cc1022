package db_models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

// searchText is the lowercased form matched by catalog search. SQLite's
// LOWER folds ASCII only, so it is computed in Go on save.
func searchText(fields ...string) string {
	return strings.ToLower(strings.Join(fields, "\n"))
}

type Destination struct {
	BaseModel
	Name            string  `gorm:"size:200;not null" json:"name"`
	Country         string  `gorm:"size:100;not null" json:"country"`
	City            string  `gorm:"size:100;not null" json:"city"`
	Description     string  `gorm:"type:text" json:"description"`
	BestTimeToVisit string  `gorm:"size:200" json:"best_time_to_visit"`
	AverageCost     float64 `gorm:"not null" json:"average_cost"`
	Rating          float64 `gorm:"default:0;index" json:"rating"`

	// SearchName covers name and city; SearchText adds country and description.
	SearchName string `gorm:"type:text" json:"-"`
	SearchText string `gorm:"type:text" json:"-"`

	Hotels      []Hotel      `gorm:"constraint:OnDelete:CASCADE" json:"hotels,omitempty"`
	Restaurants []Restaurant `gorm:"constraint:OnDelete:CASCADE" json:"restaurants,omitempty"`
	Attractions []Attraction `gorm:"constraint:OnDelete:CASCADE" json:"attractions,omitempty"`
}

func (d *Destination) BeforeSave(tx *gorm.DB) error {
	if err := checkRating(d.Rating); err != nil {
		return err
	}
	if d.AverageCost <= 0 {
		return fmt.Errorf("%w: average cost must be positive", ErrInvalidCatalogEntry)
	}
	d.SearchName = searchText(d.Name, d.City)
	d.SearchText = searchText(d.Name, d.City, d.Country, d.Description)
	return nil
}

type Hotel struct {
	BaseModel
	Name          string         `gorm:"size:200;not null" json:"name"`
	DestinationID uuid.UUID      `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination   `json:"destination,omitempty"`
	Address       string         `gorm:"type:text" json:"address"`
	StarRating    int            `gorm:"not null" json:"star_rating"`
	PricePerNight float64        `gorm:"not null" json:"price_per_night"`
	Amenities     pq.StringArray `gorm:"type:text" json:"amenities"`
	Rating        float64        `gorm:"default:0;index" json:"rating"`
	SearchText    string         `gorm:"type:text" json:"-"`
}

func (h *Hotel) BeforeSave(tx *gorm.DB) error {
	if err := checkRating(h.Rating); err != nil {
		return err
	}
	if h.StarRating < 1 || h.StarRating > 5 {
		return fmt.Errorf("%w: star rating must be between 1 and 5", ErrInvalidCatalogEntry)
	}
	if h.PricePerNight <= 0 {
		return fmt.Errorf("%w: price per night must be positive", ErrInvalidCatalogEntry)
	}
	h.SearchText = searchText(h.Name, h.Address)
	return nil
}

var priceRanges = map[string]struct{}{"$": {}, "$$": {}, "$$$": {}, "$$$$": {}}

type Restaurant struct {
	BaseModel
	Name          string       `gorm:"size:200;not null" json:"name"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination `json:"destination,omitempty"`
	CuisineType   string       `gorm:"size:100" json:"cuisine_type"`
	PriceRange    string       `gorm:"size:20;not null" json:"price_range"`
	Specialty     string       `gorm:"type:text" json:"specialty"`
	Rating        float64      `gorm:"default:0;index" json:"rating"`
	SearchText    string       `gorm:"type:text" json:"-"`
}

func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	if err := checkRating(r.Rating); err != nil {
		return err
	}
	if _, ok := priceRanges[r.PriceRange]; !ok {
		return fmt.Errorf("%w: unknown price range %q", ErrInvalidCatalogEntry, r.PriceRange)
	}
	r.SearchText = searchText(r.Name, r.CuisineType, r.Specialty)
	return nil
}

const (
	CategoryHistorical    = "historical"
	CategoryNatural       = "natural"
	CategoryCultural      = "cultural"
	CategoryAdventure     = "adventure"
	CategoryEntertainment = "entertainment"
)

var attractionCategories = map[string]struct{}{
	CategoryHistorical:    {},
	CategoryNatural:       {},
	CategoryCultural:      {},
	CategoryAdventure:     {},
	CategoryEntertainment: {},
}

type Attraction struct {
	BaseModel
	Name          string       `gorm:"size:200;not null" json:"name"`
	DestinationID uuid.UUID    `gorm:"type:uuid;not null;index" json:"destination_id"`
	Destination   *Destination `json:"destination,omitempty"`
	Category      string       `gorm:"size:100;not null" json:"category"`
	Description   string       `gorm:"type:text" json:"description"`
	EntryFee      float64      `gorm:"not null;default:0" json:"entry_fee"`
	OpeningHours  string       `gorm:"size:200" json:"opening_hours"`
	Rating        float64      `gorm:"default:0;index" json:"rating"`
	SearchText    string       `gorm:"type:text" json:"-"`
}

func (a *Attraction) BeforeSave(tx *gorm.DB) error {
	if err := checkRating(a.Rating); err != nil {
		return err
	}
	if _, ok := attractionCategories[a.Category]; !ok {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidCatalogEntry, a.Category)
	}
	if a.EntryFee < 0 {
		return fmt.Errorf("%w: entry fee must not be negative", ErrInvalidCatalogEntry)
	}
	a.SearchText = searchText(a.Name, a.Category, a.Description)
	return nil
}

func checkRating(r float64) error {
	if r < 0 || r > 5 {
		return fmt.Errorf("%w: rating %.1f outside [0,5]", ErrInvalidCatalogEntry, r)
	}
	return nil
}
