// Command seed loads catalog rows from a JSON file into the database and
// drops the cached travel context so the assistant sees them at once.
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"travelbot/internal/config"
	"travelbot/internal/infra"
	"travelbot/internal/models/db_models"
	"travelbot/internal/repositories"
	"travelbot/internal/services"
	"travelbot/pkg/cache"
	"travelbot/pkg/logger"
)

//go:embed catalog.json
var defaultCatalog []byte

func main() {
	file := flag.String("file", "", "catalog JSON file (defaults to the bundled sample)")
	flag.Parse()

	if err := run(*file); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run(file string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	raw := defaultCatalog
	if file != "" {
		if raw, err = os.ReadFile(file); err != nil {
			return err
		}
	}

	destinations, err := parseCatalog(raw)
	if err != nil {
		return err
	}

	db, err := infra.InitDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer infra.CloseDatabase(db, log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seedCatalog(ctx, repositories.NewCatalogRepository(db), destinations); err != nil {
		return err
	}
	log.Info("catalog seeded", zap.Int("destinations", len(destinations)))

	return invalidateContext(ctx, cfg, db, log)
}

func parseCatalog(raw []byte) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	if err := json.Unmarshal(raw, &destinations); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return destinations, nil
}

// seedCatalog inserts each destination followed by its dependents.
func seedCatalog(ctx context.Context, repo repositories.CatalogRepository, destinations []db_models.Destination) error {
	for i := range destinations {
		d := destinations[i]
		hotels, restaurants, attractions := d.Hotels, d.Restaurants, d.Attractions
		d.Hotels, d.Restaurants, d.Attractions = nil, nil, nil

		if err := repo.CreateDestination(ctx, &d); err != nil {
			return fmt.Errorf("destination %q: %w", d.Name, err)
		}
		for j := range hotels {
			hotels[j].DestinationID = d.ID
			if err := repo.CreateHotel(ctx, &hotels[j]); err != nil {
				return fmt.Errorf("hotel %q: %w", hotels[j].Name, err)
			}
		}
		for j := range restaurants {
			restaurants[j].DestinationID = d.ID
			if err := repo.CreateRestaurant(ctx, &restaurants[j]); err != nil {
				return fmt.Errorf("restaurant %q: %w", restaurants[j].Name, err)
			}
		}
		for j := range attractions {
			attractions[j].DestinationID = d.ID
			if err := repo.CreateAttraction(ctx, &attractions[j]); err != nil {
				return fmt.Errorf("attraction %q: %w", attractions[j].Name, err)
			}
		}
	}
	return nil
}

func invalidateContext(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) error {
	if cfg.RedisURL == "" {
		// The in-memory cache belongs to the server process.
		return nil
	}

	client, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		return err
	}
	defer client.Close()

	builder := services.NewContextBuilder(
		repositories.NewCatalogRepository(db),
		cache.NewRedisStore(client, "travelbot:"),
		cfg,
		log,
	)
	return builder.Invalidate(ctx)
}
