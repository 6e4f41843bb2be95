package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

func exportRequest() request_models.ExportItineraryRequest {
	return request_models.ExportItineraryRequest{
		Itinerary: response_models.Itinerary{
			Days: []response_models.Day{{DayNumber: 1}},
		},
		Email:     "traveler@example.com",
		SendEmail: true,
	}
}

func TestExportItinerarySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "traveler@example.com", payload["email"])
		assert.Equal(t, true, payload["send_email"])

		json.NewEncoder(w).Encode(map[string]any{"email_sent": true, "message": "delivered"})
	}))
	defer srv.Close()

	svc := &ExportService{HTTP: srv.Client(), WebhookURL: srv.URL}
	result, err := svc.ExportItinerary(context.Background(), exportRequest())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.EmailSent)
	assert.Equal(t, "delivered", result.Message)
}

func TestExportItineraryNotConfigured(t *testing.T) {
	svc := NewExportService("")
	_, err := svc.ExportItinerary(context.Background(), exportRequest())
	assert.ErrorIs(t, err, utils.ErrExportNotConfig)
}

func TestExportItineraryValidation(t *testing.T) {
	svc := NewExportService("http://localhost/webhook")

	req := exportRequest()
	req.Itinerary.Days = nil
	_, err := svc.ExportItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	req = exportRequest()
	req.Email = "not-an-email"
	_, err = svc.ExportItinerary(context.Background(), req)
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestExportItineraryWebhookFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := &ExportService{HTTP: srv.Client(), WebhookURL: srv.URL}
	_, err := svc.ExportItinerary(context.Background(), exportRequest())

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrExportFailed))
}

func TestExportItineraryUndecodableAckStillSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	svc := &ExportService{HTTP: srv.Client(), WebhookURL: srv.URL}
	result, err := svc.ExportItinerary(context.Background(), exportRequest())

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.EmailSent)
}
