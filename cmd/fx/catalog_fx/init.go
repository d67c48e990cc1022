package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelbot/internal/repositories"
	"travelbot/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo,
	services.NewCatalogService,
	services.NewContextBuilder,
)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}
