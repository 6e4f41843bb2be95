package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/services"
	"yatra/pkg/utils"
)

func travelRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewTravelController(services.NewTravelService())
	r.POST("/travel/estimate", ctrl.EstimateTravel)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEstimateTravelEndpoint(t *testing.T) {
	r := travelRouter()
	w := postJSON(t, r, "/travel/estimate", map[string]any{
		"from_lat": 24.5764, "from_lon": 73.6835,
		"to_lat": 24.5937, "to_lon": 73.6406,
		"mode": "auto",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "auto", data["recommended_mode"])
	assert.Greater(t, data["distance_km"].(float64), 1.5)
}

func TestEstimateTravelRejectsBadCoordinates(t *testing.T) {
	r := travelRouter()
	w := postJSON(t, r, "/travel/estimate", map[string]any{
		"from_lat": 124.0, "from_lon": 73.68,
		"to_lat": 24.59, "to_lon": 73.64,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEstimateTravelRejectsMalformedBody(t *testing.T) {
	r := travelRouter()
	req := httptest.NewRequest(http.MethodPost, "/travel/estimate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
