package response_models

// AssistantPlan carries the assistant's reply plus any itinerary
// recovered from it. Itinerary is nil for prose-only replies.
type AssistantPlan struct {
	Response  string     `json:"response"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
}

// ExportResult reports the outcome of pushing an itinerary to the export
// webhook.
type ExportResult struct {
	Success   bool   `json:"success"`
	EmailSent bool   `json:"email_sent"`
	Message   string `json:"message,omitempty"`
}
