package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"travelbot/internal/models/request_models"
	"travelbot/internal/models/response_models"
	"travelbot/internal/services"
	"travelbot/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.Logger
}

func NewCatalogController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *CatalogController {
	return &CatalogController{catalogService: catalogService, logger: logger}
}

func (cc *CatalogController) bindQuery(c *gin.Context) (request_models.CatalogSearchQuery, bool) {
	var q request_models.CatalogSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return q, false
	}
	return q, true
}

// SearchDestinations godoc
// @Summary Search destinations by name, city, country or description
// @Tags Catalog
// @Produce json
// @Param q query string false "Search text"
// @Param limit query int false "Max results (default 20, max 50)"
// @Success 200 {object} utils.APIResponse
// @Router /destinations/search [get]
func (cc *CatalogController) SearchDestinations(c *gin.Context) {
	q, ok := cc.bindQuery(c)
	if !ok {
		return
	}

	results, err := cc.catalogService.SearchDestinations(c.Request.Context(), q.Query, q.Limit)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSearchResults(results), "Destinations retrieved successfully")
}

// GetDestination godoc
// @Summary Destination with its hotels, restaurants and attractions
// @Tags Catalog
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /destinations/{id} [get]
func (cc *CatalogController) GetDestination(c *gin.Context) {
	destination, err := cc.catalogService.GetDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, destination, "Destination retrieved successfully")
}

// SearchHotels godoc
// @Summary Search hotels, optionally within one destination
// @Tags Catalog
// @Produce json
// @Param q query string false "Search text"
// @Param destination_id query string false "Destination ID"
// @Success 200 {object} utils.APIResponse
// @Router /hotels/search [get]
func (cc *CatalogController) SearchHotels(c *gin.Context) {
	q, ok := cc.bindQuery(c)
	if !ok {
		return
	}

	results, err := cc.catalogService.SearchHotels(c.Request.Context(), q.Query, q.DestinationID, q.Limit)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSearchResults(results), "Hotels retrieved successfully")
}

// @Router /restaurants/search [get]
func (cc *CatalogController) SearchRestaurants(c *gin.Context) {
	q, ok := cc.bindQuery(c)
	if !ok {
		return
	}

	results, err := cc.catalogService.SearchRestaurants(c.Request.Context(), q.Query, q.Limit)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSearchResults(results), "Restaurants retrieved successfully")
}

// @Router /attractions/search [get]
func (cc *CatalogController) SearchAttractions(c *gin.Context) {
	q, ok := cc.bindQuery(c)
	if !ok {
		return
	}

	results, err := cc.catalogService.SearchAttractions(c.Request.Context(), q.Query, q.Limit)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.NewSearchResults(results), "Attractions retrieved successfully")
}
