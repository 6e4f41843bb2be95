package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type TravelController struct {
	travelService services.TravelServiceInterface
}

func NewTravelController(travelService services.TravelServiceInterface) *TravelController {
	return &TravelController{
		travelService: travelService,
	}
}

func (t *TravelController) EstimateTravel(c *gin.Context) {
	var req request_models.TravelEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FromLat < -90 || req.FromLat > 90 || req.ToLat < -90 || req.ToLat > 90 ||
		req.FromLon < -180 || req.FromLon > 180 || req.ToLon < -180 || req.ToLon > 180 {
		utils.RespondError(c, http.StatusBadRequest, "Coordinates out of range")
		return
	}

	estimate := t.travelService.Estimate(req.FromLat, req.FromLon, req.ToLat, req.ToLon, req.Mode)
	utils.RespondSuccess(c, estimate, "Travel estimate computed")
}
