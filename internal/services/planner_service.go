package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
)

const (
	defaultDurationHours = 1.5
	defaultBestTime      = "morning"

	// Inter-stop transitions are clamped so a degenerate haversine
	// estimate never produces a 6-minute or 50-minute hop.
	minStopTravelMin = 15
	maxStopTravelMin = 30

	// The schedule clock starts at 8:00 and nothing may run past 21:00.
	dayStartHour = 8
	dayEndHour   = 21

	maxNotesLen = 200
)

var paceMultipliers = map[string]float64{
	"relaxed":  0.6,
	"moderate": 0.75,
	"packed":   0.9,
}

// All itinerary dates are anchored here; day N is baseDate + N - 1.
var baseDate = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

// schedulePOI is the enriched, deduplicated working form of a POI inside
// the scheduler and clusterer.
type schedulePOI struct {
	Name          string
	Type          string
	BestTime      string
	Notes         string
	Lat           float64
	Lon           float64
	DurationHours float64
	Cost          int
}

type PlannerServiceInterface interface {
	BuildItinerary(ctx context.Context, pois []request_models.POIInput, durationDays int, pace string, dailyHours int) response_models.Itinerary
}

type PlannerService struct {
	refRepo repositories.POIReferenceRepository
	travel  TravelServiceInterface
}

func NewPlannerService(refRepo repositories.POIReferenceRepository, travel TravelServiceInterface) PlannerServiceInterface {
	return &PlannerService{
		refRepo: refRepo,
		travel:  travel,
	}
}

// BuildItinerary packs POIs into day-wise, time-blocked plans. A single
// deterministic forward pass over the clusterer's ordering: no
// backtracking, no optimality guarantee. Quality problems surface as
// metadata warnings, never as errors.
func (p *PlannerService) BuildItinerary(ctx context.Context, pois []request_models.POIInput, durationDays int, pace string, dailyHours int) response_models.Itinerary {
	paceMult, ok := paceMultipliers[strings.ToLower(strings.TrimSpace(pace))]
	if !ok {
		paceMult = paceMultipliers["moderate"]
	}

	if durationDays == 0 {
		durationDays = 2
	}
	daysCap := clampInt(durationDays, 1, 4)

	if dailyHours == 0 {
		dailyHours = 8
	}
	dailyCap := clampFloat(float64(dailyHours), 1.0, 12.0) * paceMult

	unique := p.enrichAndDedupe(ctx, pois)
	if len(unique) == 0 {
		return response_models.Itinerary{
			Days: []response_models.Day{},
			Metadata: response_models.ItineraryMetadata{
				Pace:     pace,
				Warnings: []string{"No places provided."},
			},
		}
	}

	ordered := clusterVisitOrder(unique)

	days := make([]response_models.Day, 0, daysCap)
	used := make(map[string]bool, len(unique))
	totalCost := 0
	warnings := []string{}

	// Floor so no day is left nearly empty while POIs remain.
	minHoursPerDay := math.Max(3.0, dailyCap*0.4)

	for d := 1; d <= daysCap; d++ {
		activities := []response_models.Activity{}
		totalHours := 0.0
		hasFood := false
		var prev *schedulePOI
		startMinutes := 0 // offset from 8:00
		attemptsSinceLastAdd := 0
		maxAttempts := len(ordered) * 2

		for i := range ordered {
			poi := &ordered[i]
			key := strings.ToLower(poi.Name)
			if poi.Name == "" || used[key] {
				attemptsSinceLastAdd++
				if attemptsSinceLastAdd > maxAttempts {
					break
				}
				continue
			}

			travelMin := 0
			if prev != nil {
				travelMin = p.stopTravelMinutes(prev, poi)
			}

			potentialTotal := totalHours + float64(travelMin)/60.0 + poi.DurationHours
			if potentialTotal > dailyCap {
				attemptsSinceLastAdd++
				// Once the scan has stalled below the per-day minimum,
				// small POIs may overrun the cap by up to 10%.
				if attemptsSinceLastAdd > 10 && totalHours < minHoursPerDay && poi.DurationHours < 2.0 {
					if potentialTotal > dailyCap*1.1 {
						continue
					}
				} else {
					continue
				}
			}

			potentialEndMinutes := startMinutes + travelMin + int(math.Round(poi.DurationHours*60))
			if dayStartHour+potentialEndMinutes/60 >= dayEndHour {
				break
			}

			used[key] = true
			totalHours += float64(travelMin)/60.0 + poi.DurationHours
			attemptsSinceLastAdd = 0
			if strings.ToLower(poi.Type) == "food" {
				hasFood = true
			}
			totalCost += poi.Cost

			startMinutes += travelMin
			activities = append(activities, response_models.Activity{
				Time: formatDayClock(startMinutes),
				POI: response_models.ActivityPOI{
					Name:          poi.Name,
					Type:          poi.Type,
					DurationHours: poi.DurationHours,
					Cost:          poi.Cost,
					Lat:           poi.Lat,
					Lon:           poi.Lon,
				},
				TravelTimeFromPrev: travelMin,
				Notes:              truncate(poi.Notes, maxNotesLen),
			})
			prev = poi
			startMinutes += int(math.Round(poi.DurationHours * 60))

			// Stop once close enough to the cap, but only after the
			// minimum has been met.
			if totalHours >= dailyCap-0.2 && totalHours >= minHoursPerDay {
				break
			}
		}

		if !hasFood && len(activities) > 0 {
			warnings = append(warnings, fmt.Sprintf("Day %d: No meal slot; consider adding a restaurant or food place.", d))
		}

		days = append(days, response_models.Day{
			DayNumber:  d,
			Date:       baseDate.AddDate(0, 0, d-1).Format("2006-01-02"),
			Activities: activities,
			TotalHours: math.Round(totalHours*100) / 100,
			Summary:    daySummary(activities),
		})

		if len(activities) > 0 && totalHours < minHoursPerDay {
			warnings = append(warnings, fmt.Sprintf(
				"Day %d is incomplete (%.1fh < %.1fh minimum). More places to visit are needed to fill this day.",
				d, totalHours, minHoursPerDay))
		}

		if len(used) >= len(unique) {
			break
		}
	}

	var emptyDayNums []string
	for _, day := range days {
		if len(day.Activities) == 0 {
			emptyDayNums = append(emptyDayNums, fmt.Sprintf("%d", day.DayNumber))
		}
	}
	if len(emptyDayNums) > 0 {
		warnings = append(warnings, fmt.Sprintf(
			"Days %s are empty. Only %d place(s) provided for %d day(s). More attractions, restaurants, and activities are needed to fill all days.",
			strings.Join(emptyDayNums, ", "), len(used), daysCap))
	}

	if len(used) < daysCap*3 {
		warnings = append(warnings, fmt.Sprintf(
			"Insufficient places: %d used for %d day(s). Recommend at least %d places (attractions, restaurants, museums, etc.) for a full %d-day itinerary. Try searching for more places with different interests (heritage sites, food, nature, culture).",
			len(used), daysCap, daysCap*15, daysCap))
	}

	return response_models.Itinerary{
		Days: days,
		Metadata: response_models.ItineraryMetadata{
			TotalPOIs: len(used),
			TotalCost: totalCost,
			Pace:      pace,
			Warnings:  warnings,
		},
	}
}

// enrichAndDedupe merges reference-table data by name, fills defaults, and
// drops repeated names (first occurrence wins). A reference-table outage is
// logged and treated as no matches.
func (p *PlannerService) enrichAndDedupe(ctx context.Context, pois []request_models.POIInput) []schedulePOI {
	static := map[string]db_models.POIRecord{}
	if records, err := p.refRepo.List(ctx, 999); err != nil {
		log.Printf("POI reference table unavailable, using defaults: %v", err)
	} else {
		for _, r := range records {
			static[strings.ToLower(strings.TrimSpace(r.Name))] = r
		}
	}

	seen := make(map[string]bool, len(pois))
	out := make([]schedulePOI, 0, len(pois))
	for _, in := range pois {
		name := strings.TrimSpace(in.Name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true

		poi := schedulePOI{
			Name:          name,
			Type:          in.Type,
			BestTime:      strings.ToLower(strings.TrimSpace(in.BestTime)),
			Notes:         in.Notes,
			Lat:           in.Lat,
			Lon:           in.Lon,
			DurationHours: in.DurationHours,
			Cost:          in.Cost,
		}

		ref, hasRef := static[key]
		if poi.DurationHours <= 0 {
			if hasRef && ref.DurationHours > 0 {
				poi.DurationHours = ref.DurationHours
			} else {
				poi.DurationHours = defaultDurationHours
			}
		}
		if poi.BestTime == "" {
			if hasRef && ref.BestTime != "" {
				poi.BestTime = ref.BestTime
			} else {
				poi.BestTime = defaultBestTime
			}
		}
		if poi.Cost == 0 && hasRef {
			poi.Cost = ref.Cost
		}
		if poi.Notes == "" && hasRef {
			poi.Notes = ref.Notes
		}

		out = append(out, poi)
	}
	return out
}

// stopTravelMinutes estimates the auto hop between consecutive stops,
// clamped to [15, 30] minutes.
func (p *PlannerService) stopTravelMinutes(from, to *schedulePOI) int {
	est := p.travel.Estimate(from.Lat, from.Lon, to.Lat, to.Lon, "auto")
	m := est.AutoTimeMinutes
	if m < minStopTravelMin {
		m = minStopTravelMin
	}
	if m > maxStopTravelMin {
		m = maxStopTravelMin
	}
	return m
}

// formatDayClock renders an offset from the 8:00 day start as a 12-hour
// clock string.
func formatDayClock(offsetMinutes int) string {
	h := dayStartHour + offsetMinutes/60
	m := offsetMinutes % 60
	switch {
	case h < 12:
		return fmt.Sprintf("%d:%02d AM", h, m)
	case h == 12:
		return fmt.Sprintf("12:%02d PM", m)
	default:
		return fmt.Sprintf("%d:%02d PM", h-12, m)
	}
}

func daySummary(activities []response_models.Activity) string {
	if len(activities) == 0 {
		return "No activities"
	}
	names := make([]string, 0, 3)
	for _, a := range activities {
		names = append(names, a.POI.Name)
		if len(names) == 3 {
			break
		}
	}
	summary := strings.Join(names, " + ")
	if len(activities) > 3 {
		summary += " ..."
	}
	return summary
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
