package services

import (
	"fmt"
	"math"
	"strings"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// FeasibilityServiceInterface checks that a day-wise itinerary respects
// time constraints: the pace-adjusted daily cap, travel-time accounting,
// overlap between consecutive activities, the 21:00 cutoff, and meal
// coverage on long days.
type FeasibilityServiceInterface interface {
	Evaluate(days []response_models.Day, dailyHours int, pace string) response_models.EvaluationReport
}

type FeasibilityService struct{}

func NewFeasibilityService() FeasibilityServiceInterface {
	return &FeasibilityService{}
}

var foodTypes = map[string]bool{
	"food":       true,
	"restaurant": true,
	"dining":     true,
	"cafe":       true,
}

var mealNames = map[string]bool{
	"lunch":            true,
	"dinner":           true,
	"breakfast":        true,
	"lunch break":      true,
	"dinner break":     true,
	"break for lunch":  true,
	"break for dinner": true,
}

var mealKeywords = []string{
	"cafe", "coffee", "coffee break", "lunch", "dinner",
	"breakfast", "restaurant", "meal",
}

func (f *FeasibilityService) Evaluate(days []response_models.Day, dailyHours int, pace string) response_models.EvaluationReport {
	paceMult, ok := paceMultipliers[strings.ToLower(pace)]
	if !ok {
		paceMult = paceMultipliers["moderate"]
	}
	if dailyHours == 0 {
		dailyHours = 8
	}
	dailyCap := float64(dailyHours) * paceMult

	issues := []string{}
	totalHours := 0.0
	allPassed := true

	for dayIdx, day := range days {
		dayNum := dayIdx + 1
		if len(day.Activities) == 0 {
			issues = append(issues, fmt.Sprintf("Day %d: No activities scheduled", dayNum))
			allPassed = false
			continue
		}

		dayTotalHours := 0.0
		hasFood := false
		prevEndMinutes := 8 * 60
		var conflicts []string

		for actIdx, act := range day.Activities {
			actNum := actIdx + 1
			duration := act.POI.DurationHours
			travelMin := act.TravelTimeFromPrev

			if actIdx > 0 && travelMin == 0 {
				issues = append(issues, fmt.Sprintf("Day %d, Activity %d: Missing travel time from previous", dayNum, actNum))
			}

			startMinutes := clockMinutesOrZero(act.Time)
			if startMinutes == 0 && act.Time != "" {
				issues = append(issues, fmt.Sprintf("Day %d, Activity %d: Could not parse time '%s'", dayNum, actNum, act.Time))
			}

			// Adjacent activities may overlap up to 15 minutes from
			// duration rounding.
			if startMinutes > 0 {
				if startMinutes < prevEndMinutes && prevEndMinutes-startMinutes > 15 {
					conflicts = append(conflicts, fmt.Sprintf("Day %d, Activity %d: Starts at %s but previous ends later", dayNum, actNum, act.Time))
				}
				prevEndMinutes = startMinutes + int(math.Round(duration*60)) + travelMin
			}

			endMinutes := startMinutes + int(math.Round(duration*60)) + travelMin
			if endMinutes > 21*60 {
				issues = append(issues, fmt.Sprintf("Day %d, Activity %d: Extends beyond 9 PM", dayNum, actNum))
				allPassed = false
			}

			dayTotalHours += duration + float64(travelMin)/60.0
			totalHours += duration + float64(travelMin)/60.0

			if !hasFood {
				hasFood = isMealActivity(act.POI.Type, act.POI.Name)
			}
		}

		// 0.5h tolerance so a small exceedance does not fail the day.
		if dayTotalHours > dailyCap+0.5 {
			issues = append(issues, fmt.Sprintf("Day %d: Exceeds daily limit (%sh > %sh for %s pace)",
				dayNum, round1(dayTotalHours), round1(dailyCap), pace))
			allPassed = false
		}

		// Warning only, never a failure on its own.
		if !hasFood && dayTotalHours > 4 {
			issues = append(issues, fmt.Sprintf("Day %d: No meal break for %sh schedule", dayNum, round1(dayTotalHours)))
		}

		if len(conflicts) > 0 {
			issues = append(issues, conflicts...)
			allPassed = false
		}
	}

	var score float64
	switch {
	case allPassed && len(issues) == 0:
		score = 1.0
	case allPassed:
		score = 0.8
	default:
		score = math.Max(0.0, 1.0-float64(len(issues))*0.15)
	}

	return response_models.EvaluationReport{
		Passed: allPassed,
		Score:  math.Round(score*100) / 100,
		Issues: issues,
		Details: map[string]any{
			"total_hours":    math.Round(totalHours*100) / 100,
			"daily_cap":      math.Round(dailyCap*10) / 10,
			"pace":           pace,
			"days_evaluated": len(days),
		},
	}
}

func isMealActivity(poiType, poiName string) bool {
	t := strings.ToLower(poiType)
	n := strings.ToLower(poiName)
	if foodTypes[t] || mealNames[n] {
		return true
	}
	for _, kw := range mealKeywords {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}

// clockMinutesOrZero reads a 12-hour clock string, treating empty and
// unparseable values as zero.
func clockMinutesOrZero(s string) int {
	m, ok := utils.ParseClockMinutes(s)
	if !ok {
		return 0
	}
	return m
}

func round1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
