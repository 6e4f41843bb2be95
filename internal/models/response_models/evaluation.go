package response_models

// EvaluationReport is the common result shape of all three validators.
// Validators never mutate their inputs; quality problems land in Issues
// with a derived Score, never as errors.
type EvaluationReport struct {
	Passed  bool           `json:"passed"`
	Score   float64        `json:"score"`
	Issues  []string       `json:"issues"`
	Details map[string]any `json:"details,omitempty"`
}

// TravelEstimate is the output of the distance/time estimator.
type TravelEstimate struct {
	DistanceKm      float64 `json:"distance_km"`
	WalkTimeMinutes int     `json:"walk_time_minutes"`
	AutoTimeMinutes int     `json:"auto_time_minutes"`
	RecommendedMode string  `json:"recommended_mode"`
	Notes           string  `json:"notes,omitempty"`
}
