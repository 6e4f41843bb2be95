package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrNoItineraryFound):
		RespondError(c, http.StatusUnprocessableEntity, "No day-wise itinerary detected in the text")
	case errors.Is(err, ErrExportNotConfig):
		RespondError(c, http.StatusServiceUnavailable, "Export webhook not configured")
	case errors.Is(err, ErrExportFailed):
		log.Printf("Export error: %v", err)
		RespondError(c, http.StatusBadGateway, "Export webhook failed")
	case errors.Is(err, ErrPOISourceError):
		log.Printf("POI source error: %v", err)
		RespondError(c, http.StatusBadGateway, "POI source unavailable")
	case errors.Is(err, ErrUnexpectedAI):
		log.Printf("AI error: %v", err)
		RespondError(c, http.StatusBadGateway, "Assistant did not return a usable plan")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
