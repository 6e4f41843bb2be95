package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type ItineraryController struct {
	plannerService  services.PlannerServiceInterface
	recoveryService services.RecoveryServiceInterface
}

func NewItineraryController(
	plannerService services.PlannerServiceInterface,
	recoveryService services.RecoveryServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		plannerService:  plannerService,
		recoveryService: recoveryService,
	}
}

func (i *ItineraryController) BuildItinerary(c *gin.Context) {
	var req request_models.BuildItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary := i.plannerService.BuildItinerary(c.Request.Context(), req.POIs, req.DurationDays, req.Pace, req.DailyHours)
	utils.RespondSuccess(c, itinerary, "Itinerary built")
}

// ParseItinerary recovers a structured itinerary from free text. Embedded
// JSON wins over prose parsing.
func (i *ItineraryController) ParseItinerary(c *gin.Context) {
	var req request_models.ParseItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Text == "" {
		utils.RespondError(c, http.StatusBadRequest, "Text is required")
		return
	}

	itinerary := i.recoveryService.ExtractItinerary(req.Text)
	if itinerary == nil {
		itinerary = i.recoveryService.ParseTextItinerary(req.Text)
	}
	if itinerary == nil {
		utils.HandleServiceError(c, utils.ErrNoItineraryFound)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary parsed")
}
