package request_models

import "yatra/internal/models/response_models"

type FeasibilityRequest struct {
	Days       []response_models.Day `json:"days"`
	DailyHours int                   `json:"daily_hours,omitempty"`
	Pace       string                `json:"pace,omitempty"`
}

type GroundingRequest struct {
	Response  string     `json:"response"`
	Sources   []POIInput `json:"sources,omitempty"`
	KnownPOIs []POIInput `json:"known_pois,omitempty"`
}

type EditCorrectnessRequest struct {
	Original    []response_models.Day `json:"original"`
	Edited      []response_models.Day `json:"edited"`
	KnownPOIs   []POIInput            `json:"known_pois,omitempty"`
	EditMessage string                `json:"edit_message,omitempty"`
}

type AssistantPlanRequest struct {
	Prompt string `json:"prompt"`
}

type ExportItineraryRequest struct {
	Itinerary response_models.Itinerary `json:"itinerary"`
	Email     string                    `json:"email,omitempty"`
	SendEmail bool                      `json:"send_email,omitempty"`
}
