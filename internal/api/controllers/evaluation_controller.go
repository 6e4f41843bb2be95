package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yatra/internal/models/request_models"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

type EvaluationController struct {
	feasibilityService services.FeasibilityServiceInterface
	groundingService   services.GroundingServiceInterface
	editCheckService   services.EditCheckServiceInterface
}

func NewEvaluationController(
	feasibilityService services.FeasibilityServiceInterface,
	groundingService services.GroundingServiceInterface,
	editCheckService services.EditCheckServiceInterface,
) *EvaluationController {
	return &EvaluationController{
		feasibilityService: feasibilityService,
		groundingService:   groundingService,
		editCheckService:   editCheckService,
	}
}

func (e *EvaluationController) EvaluateFeasibility(c *gin.Context) {
	var req request_models.FeasibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	report := e.feasibilityService.Evaluate(req.Days, req.DailyHours, req.Pace)
	utils.RespondSuccess(c, report, "Feasibility evaluated")
}

func (e *EvaluationController) EvaluateGrounding(c *gin.Context) {
	var req request_models.GroundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	report := e.groundingService.Evaluate(c.Request.Context(), req)
	utils.RespondSuccess(c, report, "Grounding evaluated")
}

func (e *EvaluationController) EvaluateEditCorrectness(c *gin.Context) {
	var req request_models.EditCorrectnessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	report := e.editCheckService.Evaluate(req)
	utils.RespondSuccess(c, report, "Edit correctness evaluated")
}
