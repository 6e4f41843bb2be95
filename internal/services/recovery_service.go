package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

// RecoveryServiceInterface turns assistant text back into a structured
// itinerary. ExtractItinerary pulls embedded JSON; ParseTextItinerary
// recovers a minimal structure from free-form prose and markdown when no
// JSON is present. Both return nil when nothing recoverable is found.
type RecoveryServiceInterface interface {
	ExtractItinerary(text string) *response_models.Itinerary
	ParseTextItinerary(text string) *response_models.Itinerary
}

type RecoveryService struct{}

func NewRecoveryService() RecoveryServiceInterface {
	return &RecoveryService{}
}

var (
	fencedBlockRe = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)\\s*```")

	// Matches "Day N:", "Day 2,", "**Day 1**", "### Day 3", "For Day 2"
	// at a line start.
	dayMarkerRe = regexp.MustCompile(`(?i)(?:^|[\r\n]+)\s*(?:For\s+)?(?:#{1,3}\s*)?(?:\*{1,2}\s*)?Day\s+(\d+)(?:\s*\*{1,2})?\s*[:\s,\r\n]`)

	bulletPrefixRe  = regexp.MustCompile(`^[\s\-*•·]\s*`)
	numberPrefixRe  = regexp.MustCompile(`^\d+[.)]\s*`)
	suggestPrefixRe = regexp.MustCompile(`(?i)^(?:I\s+suggest|I\s+recommend)\s*:\s*`)

	inrLineRe      = regexp.MustCompile(`^\d+\s*inr`)
	totalLineRe    = regexp.MustCompile(`^total:\s*\d+`)
	nightsRe       = regexp.MustCompile(`\(\d+\s*night`)
	feeSuffixRe    = regexp.MustCompile(`:\s*\d+\s*inr\s*$`)
	freeSuffixRe   = regexp.MustCompile(`:\s*free\s*$`)
	timeSlotSplit  = regexp.MustCompile(`(?i)\s+(\d{1,2}:\d{2}\s*(?:AM|PM)?\s*[–-])`)
	timeRangeRe    = regexp.MustCompile(`(?i)^([\d:]+\s*(?:AM|PM)?)\s*[–-]\s*[\d:]+\s*(?:AM|PM)?\s*:\s*(.+)`)
	singleTimeRe   = regexp.MustCompile(`(?i)^(\d{1,2}(?::\d{2})?\s*(?:AM|PM)?)\s*:\s*(.+)$`)
	timeDashRe     = regexp.MustCompile(`(?i)^[\d:]+\s*(?:AM|PM)?\s*[–-]\s*(.+)`)
	leadingTimeRe  = regexp.MustCompile(`(?i)^([\d:]+\s*(?:AM|PM)?)`)
	slotDashRe     = regexp.MustCompile(`(?i)^(?:Morning|Afternoon|Evening)\s*[–-]\s*(.+)`)
	clockSearchRe  = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:AM|PM)?)`)
	timePrefixRe   = regexp.MustCompile(`(?i)^[\d:]+\s*(?:AM|PM)?\s*(?:[–-]\s*[\d:]+\s*(?:AM|PM)?\s*)?:\s*`)
	visitCueRe     = regexp.MustCompile(`(?i)(?:visit to the|visit the|head to the|head to)\s+`)
	activityCueRe  = regexp.MustCompile(`(?i)(?:boat ride on|ride on|stroll through(?:\s+the)?)\s+`)
	nameRunRe      = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9\s\-']+`)
	nameStopFullRe = regexp.MustCompile(`(?i)\s+(?:at\s+\d|one\s+of|a\s+\d|and\s)`)
	nameStopAtRe   = regexp.MustCompile(`(?i)\s+at\s+\d`)
	capPhraseRe    = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Za-z][a-z\-]*)+)\b`)
)

var prosePhrases = []string{
	"itinerary", "designed", "help you", "explore", "experience",
	"comprehensive", "giving you", "view of", "culture", "craftsmanship",
	"history", "traditional",
}

// ExtractItinerary finds a JSON itinerary inside assistant text, either in
// a fenced code block or as a bare {"days" ...} object.
func (r *RecoveryService) ExtractItinerary(text string) *response_models.Itinerary {
	if text == "" || !strings.Contains(strings.ToLower(text), "days") {
		return nil
	}
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		if it := decodeItinerary(strings.TrimSpace(m[1])); it != nil {
			return it
		}
	}
	start := strings.Index(text, `{"days"`)
	if start < 0 {
		return nil
	}
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return decodeItinerary(text[start : i+1])
			}
		}
	}
	return nil
}

func decodeItinerary(raw string) *response_models.Itinerary {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &probe); err != nil {
		return nil
	}
	if _, ok := probe["days"]; !ok {
		return nil
	}
	var it response_models.Itinerary
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return nil
	}
	return &it
}

type parsedEntry struct {
	time string
	name string
}

// ParseTextItinerary recovers a day-wise itinerary from markdown or prose
// ("Day 1:", bullets, time slots, place names). The result carries only
// names, times, and estimated durations; dates, costs, and coordinates are
// left unset. Returns nil when no day markers are found.
func (r *RecoveryService) ParseTextItinerary(text string) *response_models.Itinerary {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var days []response_models.Day
	pos := 0
	for {
		loc := dayMarkerRe.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		dayNum, _ := strconv.Atoi(text[pos+loc[2] : pos+loc[3]])
		blockStart := pos + loc[1]
		blockEnd := len(text)
		if next := dayMarkerRe.FindStringIndex(text[blockStart:]); next != nil {
			blockEnd = blockStart + next[0]
		}

		entries := parseDayBlock(text[blockStart:blockEnd])
		if len(entries) > 0 {
			activities := make([]response_models.Activity, 0, len(entries))
			for i, e := range entries {
				act := response_models.Activity{
					Time: e.time,
					POI:  response_models.ActivityPOI{Name: e.name, DurationHours: 1.5},
				}
				if i > 0 {
					act.TravelTimeFromPrev = 15
				}
				// Shrink the default duration when the next entry's start
				// time says this slot is shorter.
				if e.time != "" && i+1 < len(entries) && entries[i+1].time != "" {
					cur, okCur := utils.ParseClockMinutes(e.time)
					nxt, okNxt := utils.ParseClockMinutes(entries[i+1].time)
					if okCur && okNxt && nxt > cur {
						travelMin := 0
						if i > 0 {
							travelMin = 15
						}
						if maxDur := nxt - cur - travelMin; maxDur > 0 {
							capped := float64(maxDur) / 60.0
							if capped > 1.5 {
								capped = 1.5
							}
							if capped < 0.25 {
								capped = 0.25
							}
							act.POI.DurationHours = capped
						}
					}
				}
				activities = append(activities, act)
			}
			days = append(days, response_models.Day{
				DayNumber:  dayNum,
				Activities: activities,
			})
		}
		pos = blockEnd
	}

	if len(days) == 0 {
		return nil
	}
	return &response_models.Itinerary{Days: days}
}

func parseDayBlock(block string) []parsedEntry {
	var entries []parsedEntry
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 3 {
			continue
		}
		cleaned := bulletPrefixRe.ReplaceAllString(line, "")
		cleaned = numberPrefixRe.ReplaceAllString(cleaned, "")
		cleaned = strings.TrimSpace(suggestPrefixRe.ReplaceAllString(cleaned, ""))
		if isBudgetOrSummaryLine(cleaned) {
			continue
		}
		for _, seg := range splitTimeSlots(cleaned) {
			seg = strings.TrimSpace(seg)
			if len(seg) < 5 {
				continue
			}
			if e, ok := parseSegment(seg); ok {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

// parseSegment tries extraction strategies in priority order: explicit
// time formats first, then slot labels, then prose cues, then bare
// capitalized place names.
func parseSegment(seg string) (parsedEntry, bool) {
	// "8:00 AM - 9:30 AM: Start the day with a visit to the City Palace..."
	if m := timeRangeRe.FindStringSubmatch(seg); m != nil {
		name := shortPlaceFromDescription(strings.TrimSpace(m[2]))
		if len(name) > 1 {
			return parsedEntry{time: strings.TrimSpace(m[1]), name: name}, true
		}
		return parsedEntry{}, false
	}
	// "9:00 AM: City Palace" or "1:00 PM: Take a break for lunch..."
	if m := singleTimeRe.FindStringSubmatch(seg); m != nil {
		desc := strings.TrimSpace(m[2])
		if len(desc) > 2 {
			name := desc
			if len(desc) > 55 {
				name = shortPlaceFromDescription(desc)
			} else if len(name) > 55 {
				name = name[:55]
			}
			name = strings.TrimSpace(name)
			if len(name) > 1 {
				return parsedEntry{time: strings.TrimSpace(m[1]), name: name}, true
			}
		}
		return parsedEntry{}, false
	}
	// "9:00 AM - City Palace"
	if m := timeDashRe.FindStringSubmatch(seg); m != nil {
		name := strings.TrimSpace(m[1])
		if len(name) > 2 && len(name) <= 80 {
			t := ""
			if tm := leadingTimeRe.FindStringSubmatch(seg); tm != nil {
				t = strings.TrimSpace(tm[1])
			}
			return parsedEntry{time: t, name: name}, true
		}
		return parsedEntry{}, false
	}
	// "Morning - City Palace"
	if m := slotDashRe.FindStringSubmatch(seg); m != nil {
		name := strings.TrimSpace(m[1])
		if len(name) > 2 && len(name) <= 55 {
			return parsedEntry{name: name}, true
		}
		return parsedEntry{}, false
	}
	// "Morning (8:00 AM - 10:00 AM): City Palace"
	if idx := strings.Index(seg, "):"); idx >= 0 {
		after := strings.TrimLeft(strings.TrimSpace(seg[idx+2:]), ":")
		lower := strings.ToLower(after)
		if after != "" && len(after) <= 55 &&
			!strings.HasPrefix(lower, "day ") && !strings.HasPrefix(lower, "morning") &&
			!strings.HasPrefix(lower, "afternoon") && !strings.HasPrefix(lower, "evening") {
			t := ""
			if tm := clockSearchRe.FindStringSubmatch(seg); tm != nil {
				t = strings.TrimSpace(tm[1])
			}
			return parsedEntry{time: t, name: after}, true
		}
		return parsedEntry{}, false
	}
	// Prose: "visit to the City Palace, one of..."
	if name := nameAfterCue(seg, visitCueRe, nameStopFullRe); len(name) > 2 && len(name) <= 55 {
		return parsedEntry{name: name}, true
	}
	// Prose: "boat ride on Lake Pichola"
	if name := nameAfterCue(seg, activityCueRe, nameStopAtRe); len(name) > 2 && len(name) <= 55 {
		return parsedEntry{name: name}, true
	}
	// Bare short capitalized place name.
	if seg[0] >= 'A' && seg[0] <= 'Z' && len(seg) > 4 && len(seg) <= 55 {
		lower := strings.ToLower(seg)
		for _, p := range []string{"day ", "morning", "afternoon", "evening", "summary"} {
			if strings.HasPrefix(lower, p) {
				return parsedEntry{}, false
			}
		}
		for _, w := range prosePhrases {
			if strings.Contains(lower, w) {
				return parsedEntry{}, false
			}
		}
		return parsedEntry{name: seg}, true
	}
	return parsedEntry{}, false
}

// splitTimeSlots breaks a long line at the start of each embedded time
// slot ("... 10:30 AM - ...") so one line can yield multiple entries.
func splitTimeSlots(line string) []string {
	locs := timeSlotSplit.FindAllStringSubmatchIndex(line, -1)
	if locs == nil {
		return []string{line}
	}
	var parts []string
	prev := 0
	for _, loc := range locs {
		// loc[2] is the start of the time token; the leading whitespace
		// is dropped.
		parts = append(parts, line[prev:loc[0]])
		prev = loc[2]
	}
	parts = append(parts, line[prev:])
	return parts
}

func isBudgetOrSummaryLine(cleaned string) bool {
	lower := strings.TrimSpace(strings.ToLower(cleaned))
	if lower == "" || len(lower) < 4 {
		return true
	}
	for _, p := range []string{
		"budget", "total:", "accommodation", "food and drink", "transportation",
		"entry fees", "miscellaneous", "total ", "this itinerary", "enjoy your",
	} {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	if inrLineRe.MatchString(lower) || totalLineRe.MatchString(lower) {
		return true
	}
	if nightsRe.MatchString(lower) || (strings.Contains(lower, "upgrade to") && strings.Contains(lower, "inr")) {
		return true
	}
	// Entry-fee lines: "City Palace: 300 INR", "Jagdish Temple: Free"
	if feeSuffixRe.MatchString(lower) || freeSuffixRe.MatchString(lower) {
		return true
	}
	return false
}

// shortPlaceFromDescription reduces a sentence like "Start the day with a
// visit to the City Palace, one of..." to a short place name.
func shortPlaceFromDescription(desc string) string {
	if desc == "" {
		return ""
	}
	if len(desc) <= 55 {
		return strings.TrimSpace(desc)
	}
	rest := strings.TrimSpace(timePrefixRe.ReplaceAllString(desc, ""))

	if name := nameAfterCue(rest, visitCueRe, nameStopFullRe); len(name) > 2 && len(name) <= 55 {
		return name
	}

	lower := strings.ToLower(rest)
	switch {
	case strings.Contains(lower, "lunch"):
		return "Lunch"
	case strings.Contains(lower, "dinner"):
		return "Dinner"
	case strings.Contains(lower, "breakfast"):
		return "Breakfast"
	}

	if name := nameAfterCue(rest, activityCueRe, nameStopAtRe); name != "" {
		return name
	}
	if m := capPhraseRe.FindStringSubmatch(rest); m != nil {
		name := strings.TrimSpace(m[1])
		if len(name) > 55 {
			name = name[:55]
		}
		return name
	}
	if len(rest) > 55 {
		rest = rest[:55]
	}
	return strings.TrimSpace(rest)
}

// nameAfterCue captures a place name following a cue phrase. The name is
// the run of word characters after the cue, cut at the first stop phrase,
// punctuation, or end of segment.
func nameAfterCue(s string, cue, stop *regexp.Regexp) string {
	loc := cue.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	run := nameRunRe.FindString(s[loc[1]:])
	if run == "" {
		return ""
	}
	if sl := stop.FindStringIndex(run); sl != nil {
		run = run[:sl[0]]
	}
	return strings.TrimSpace(run)
}
