package response_models

// ActivityPOI is the POI subset carried inside a scheduled activity.
type ActivityPOI struct {
	Name          string  `json:"name"`
	Type          string  `json:"type,omitempty"`
	DurationHours float64 `json:"duration_hours"`
	Cost          int     `json:"cost"`
	Lat           float64 `json:"lat,omitempty"`
	Lon           float64 `json:"lon,omitempty"`
}

// Activity is one scheduled visit. Time is a 12-hour clock string
// ("9:30 AM") or empty when the source text carried no explicit time.
type Activity struct {
	Time               string      `json:"time,omitempty"`
	POI                ActivityPOI `json:"poi"`
	TravelTimeFromPrev int         `json:"travel_time_from_previous"`
	Notes              string      `json:"notes,omitempty"`
}

type Day struct {
	DayNumber  int        `json:"day_number"`
	Date       string     `json:"date,omitempty"`
	Activities []Activity `json:"activities"`
	TotalHours float64    `json:"total_hours"`
	Summary    string     `json:"summary,omitempty"`
}

type ItineraryMetadata struct {
	TotalPOIs int      `json:"total_pois"`
	TotalCost int      `json:"total_cost"`
	Pace      string   `json:"pace,omitempty"`
	Warnings  []string `json:"warnings"`
}

type Itinerary struct {
	Days     []Day             `json:"days"`
	Metadata ItineraryMetadata `json:"metadata"`
}
