package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// ExportServiceInterface pushes a finished itinerary to the configured
// n8n webhook, which handles email delivery downstream.
type ExportServiceInterface interface {
	ExportItinerary(ctx context.Context, req request_models.ExportItineraryRequest) (response_models.ExportResult, error)
}

type ExportService struct {
	HTTP       *http.Client
	WebhookURL string
}

func NewExportService(webhookURL string) ExportServiceInterface {
	return &ExportService{
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		WebhookURL: webhookURL,
	}
}

func (e *ExportService) ExportItinerary(ctx context.Context, req request_models.ExportItineraryRequest) (response_models.ExportResult, error) {
	if e.WebhookURL == "" {
		return response_models.ExportResult{}, utils.ErrExportNotConfig
	}
	if len(req.Itinerary.Days) == 0 {
		return response_models.ExportResult{}, utils.ErrInvalidInput
	}
	if req.SendEmail && !strings.Contains(req.Email, "@") {
		return response_models.ExportResult{}, utils.ErrInvalidInput
	}

	payload := map[string]any{
		"itinerary":  req.Itinerary,
		"email":      req.Email,
		"send_email": req.SendEmail,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return response_models.ExportResult{}, fmt.Errorf("%w: %v", utils.ErrExportFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return response_models.ExportResult{}, fmt.Errorf("%w: %v", utils.ErrExportFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.HTTP.Do(httpReq)
	if err != nil {
		log.Printf("export webhook request failed: %v", err)
		return response_models.ExportResult{}, fmt.Errorf("%w: %v", utils.ErrExportFailed, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		log.Printf("export webhook bad status: %s", resp.Status)
		return response_models.ExportResult{}, fmt.Errorf("%w: webhook status %s", utils.ErrExportFailed, resp.Status)
	}

	// The webhook confirms delivery with email_sent; absence means the
	// workflow accepted the payload but did not send mail.
	var ack struct {
		EmailSent bool   `json:"email_sent"`
		Message   string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		log.Printf("export webhook response not decodable: %v", err)
	}

	return response_models.ExportResult{
		Success:   true,
		EmailSent: ack.EmailSent,
		Message:   ack.Message,
	}, nil
}
