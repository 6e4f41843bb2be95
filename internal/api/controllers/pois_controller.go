package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yatra/internal/repositories"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type POIsController struct {
	poiSource services.POISourceInterface
	refRepo   repositories.POIReferenceRepository
}

func NewPOIsController(poiSource services.POISourceInterface, refRepo repositories.POIReferenceRepository) *POIsController {
	return &POIsController{
		poiSource: poiSource,
		refRepo:   refRepo,
	}
}

// SearchPOIs queries the live POI source.
func (p *POIsController) SearchPOIs(c *gin.Context) {
	city := c.DefaultQuery("city", "Udaipur")
	poiType := c.DefaultQuery("type", "all")

	radiusStr := c.DefaultQuery("radius_km", "5")
	radius, err := strconv.ParseFloat(radiusStr, 64)
	if err != nil || radius <= 0 || radius > 50 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid radius_km (must be 0-50)")
		return
	}

	pois, err := p.poiSource.SearchPOIs(c.Request.Context(), city, poiType, radius)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "POIs fetched successfully")
}

// ListReferencePOIs returns the curated reference table.
func (p *POIsController) ListReferencePOIs(c *gin.Context) {
	maxStr := c.DefaultQuery("max", "100")
	max, err := strconv.Atoi(maxStr)
	if err != nil || max < 1 || max > 500 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid max (must be 1-500)")
		return
	}

	records, err := p.refRepo.List(c.Request.Context(), max)
	if err != nil {
		utils.HandleServiceError(c, utils.ErrDatabaseError)
		return
	}

	utils.RespondSuccess(c, records, "Reference POIs fetched successfully")
}
