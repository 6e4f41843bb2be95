package services

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
)

// EditCheckServiceInterface verifies that an edited itinerary only changed
// what the edit request asked for: days not named in the request keep
// their activity lists, the day count moves only when the request implies
// it, and the edited structure stays internally consistent.
type EditCheckServiceInterface interface {
	Evaluate(req request_models.EditCorrectnessRequest) response_models.EvaluationReport
}

type EditCheckService struct{}

func NewEditCheckService() EditCheckServiceInterface {
	return &EditCheckService{}
}

var (
	dayRefRe    = regexp.MustCompile(`day\s*(\d+)`)
	moreDaysRe  = regexp.MustCompile(`\d+\s*days?|more\s*days?|add\s*(a\s*)?day|extra\s*day`)
	fewerDaysRe = regexp.MustCompile(`fewer\s*days?|less\s*days?|1\s*day|single\s*day`)
)

func (e *EditCheckService) Evaluate(req request_models.EditCorrectnessRequest) response_models.EvaluationReport {
	issues := []string{}
	oDays := len(req.Original)
	eDays := len(req.Edited)

	if eDays == 0 {
		issues = append(issues, "Edited itinerary has no days")
	}

	// Flag a large day-count change only when the request did not ask for
	// one.
	if oDays > 0 && len(issues) == 0 {
		changeRatio := math.Abs(float64(eDays-oDays)) / float64(oDays)
		msgLower := strings.ToLower(strings.TrimSpace(req.EditMessage))
		asksMore := moreDaysRe.MatchString(msgLower)
		asksFewer := fewerDaysRe.MatchString(msgLower)
		if changeRatio > 0.5 && !asksMore && !asksFewer {
			issues = append(issues, fmt.Sprintf("Day count changed significantly: %d -> %d days", oDays, eDays))
		}
	}

	intended := intendedDaysFromMessage(req.EditMessage)
	if len(intended) > 0 {
		for i, origDay := range req.Original {
			dayNum := i + 1
			if intended[dayNum] || dayNum > eDays {
				continue
			}
			origNames := poiNamesForDay(origDay)
			editedNames := poiNamesForDay(req.Edited[dayNum-1])
			if !equalNameLists(origNames, editedNames) {
				issues = append(issues, fmt.Sprintf(
					"Unintended change elsewhere: Day %d was modified but the edit request did not mention it", dayNum))
			}
		}
	}

	knownNames := map[string]bool{}
	for _, poi := range req.KnownPOIs {
		if name := strings.TrimSpace(poi.Name); name != "" {
			knownNames[strings.ToLower(name)] = true
		}
	}

	for dayIdx, day := range req.Edited {
		dayNum := dayIdx + 1

		type timedActivity struct {
			start, end int
			name       string
		}
		var activityTimes []timedActivity

		for actIdx, act := range day.Activities {
			actNum := actIdx + 1

			poiName := strings.TrimSpace(act.POI.Name)
			if poiName == "" {
				issues = append(issues, fmt.Sprintf("Day %d, Activity %d: Missing POI name", dayNum, actNum))
			} else if len(knownNames) > 0 && !knownNames[strings.ToLower(poiName)] {
				issues = append(issues, fmt.Sprintf("Day %d, Activity %d: POI '%s' not found in known POIs", dayNum, actNum, poiName))
			}

			if act.Time == "" {
				// Prose-derived itineraries carry no time field; a name
				// with a positive duration is enough.
				if poiName == "" || act.POI.DurationHours <= 0 {
					issues = append(issues, fmt.Sprintf("Day %d, Activity %d: Missing time", dayNum, actNum))
				}
				continue
			}

			startMinutes := clockMinutesOrZero(act.Time)
			if startMinutes == 0 {
				issues = append(issues, fmt.Sprintf("Day %d, Activity %d: Invalid time format '%s'", dayNum, actNum, act.Time))
				continue
			}
			endMinutes := startMinutes + int(math.Round(act.POI.DurationHours*60)) + act.TravelTimeFromPrev
			name := poiName
			if name == "" {
				name = fmt.Sprintf("Activity %d", actNum)
			}
			activityTimes = append(activityTimes, timedActivity{start: startMinutes, end: endMinutes, name: name})
		}

		sort.Slice(activityTimes, func(i, j int) bool {
			if activityTimes[i].start != activityTimes[j].start {
				return activityTimes[i].start < activityTimes[j].start
			}
			if activityTimes[i].end != activityTimes[j].end {
				return activityTimes[i].end < activityTimes[j].end
			}
			return activityTimes[i].name < activityTimes[j].name
		})
		// Pairwise overlap check with 15 min rounding tolerance.
		for i := 0; i+1 < len(activityTimes); i++ {
			a, b := activityTimes[i], activityTimes[i+1]
			if overlap := a.end - b.start; overlap > 15 {
				issues = append(issues, fmt.Sprintf(
					"Day %d: Time conflict - '%s' overlaps with '%s' by %d minutes", dayNum, a.name, b.name, overlap))
			}
		}
	}

	passed := len(issues) == 0
	score := 1.0
	if !passed {
		score = math.Max(0.0, 1.0-float64(len(issues))*0.1)
	}

	details := map[string]any{
		"original_days": oDays,
		"edited_days":   eDays,
		"issues_count":  len(issues),
	}
	if req.EditMessage != "" {
		details["user_edit_message"] = truncate(req.EditMessage, 200)
	}
	return response_models.EvaluationReport{
		Passed:  passed,
		Score:   math.Round(score*100) / 100,
		Issues:  issues,
		Details: details,
	}
}

// intendedDaysFromMessage parses the edit request for day references
// ("day 2", "Day 1"). An empty result means the whole itinerary is in
// scope.
func intendedDaysFromMessage(msg string) map[int]bool {
	msg = strings.ToLower(strings.TrimSpace(msg))
	if msg == "" {
		return nil
	}
	matches := dayRefRe.FindAllStringSubmatch(msg, -1)
	if len(matches) == 0 {
		return nil
	}
	days := make(map[int]bool, len(matches))
	for _, m := range matches {
		if n, err := strconv.Atoi(m[1]); err == nil {
			days[n] = true
		}
	}
	return days
}

func poiNamesForDay(day response_models.Day) []string {
	var names []string
	for _, act := range day.Activities {
		if name := strings.TrimSpace(act.POI.Name); name != "" {
			names = append(names, strings.ToLower(name))
		}
	}
	return names
}

func equalNameLists(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
