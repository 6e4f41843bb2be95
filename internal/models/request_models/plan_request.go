package request_models

// POIInput is a point of interest as supplied by the caller or the POI
// source. Only name/lat/lon are required; the scheduler fills the rest
// from the reference table or defaults.
type POIInput struct {
	Name          string  `json:"name"`
	Type          string  `json:"type,omitempty"`
	Lat           float64 `json:"lat"`
	Lon           float64 `json:"lon"`
	DurationHours float64 `json:"duration_hours,omitempty"`
	Cost          int     `json:"cost,omitempty"`
	BestTime      string  `json:"best_time,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

type BuildItineraryRequest struct {
	POIs         []POIInput `json:"pois"`
	DurationDays int        `json:"duration_days"`
	Pace         string     `json:"pace,omitempty"`
	DailyHours   int        `json:"daily_hours,omitempty"`
}

type ParseItineraryRequest struct {
	Text string `json:"text"`
}

type TravelEstimateRequest struct {
	FromLat float64 `json:"from_lat"`
	FromLon float64 `json:"from_lon"`
	ToLat   float64 `json:"to_lat"`
	ToLon   float64 `json:"to_lon"`
	Mode    string  `json:"mode,omitempty"`
}
