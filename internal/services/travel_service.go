package services

import (
	"math"

	"yatra/internal/models/response_models"
)

const (
	earthRadiusKm = 6371.0

	walkSpeedKmh = 4.0
	autoSpeedKmh = 20.0

	// Waiting/boarding overhead added to every estimate.
	baseTravelMinutes = 5

	// Above this distance walking is discouraged.
	maxWalkableKm = 1.5
)

type TravelServiceInterface interface {
	Estimate(fromLat, fromLon, toLat, toLon float64, mode string) response_models.TravelEstimate
}

type TravelService struct{}

func NewTravelService() TravelServiceInterface {
	return &TravelService{}
}

// Estimate computes great-circle distance and travel-time heuristics
// between two points. Walking 4 km/h, auto 20 km/h, plus 5 min base time.
// Pure; both walk and auto estimates are always returned.
func (t *TravelService) Estimate(fromLat, fromLon, toLat, toLon float64, mode string) response_models.TravelEstimate {
	dist := haversineKm(fromLat, fromLon, toLat, toLon)

	walkMin := baseTravelMinutes + int(math.Round(60*dist/walkSpeedKmh))
	autoMin := baseTravelMinutes + int(math.Round(60*dist/autoSpeedKmh))

	rec := "walk"
	notes := ""
	if dist > maxWalkableKm {
		rec = "auto"
		notes = "Walking not recommended for >1.5 km in Udaipur heat."
	}

	return response_models.TravelEstimate{
		DistanceKm:      math.Round(dist*100) / 100,
		WalkTimeMinutes: walkMin,
		AutoTimeMinutes: autoMin,
		RecommendedMode: rec,
		Notes:           notes,
	}
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Asin(math.Sqrt(a))
}
