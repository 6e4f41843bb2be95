package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItineraryFencedBlock(t *testing.T) {
	svc := NewRecoveryService()
	text := "Here is your plan:\n```json\n{\"days\": [{\"day_number\": 1, \"activities\": []}]}\n```\nEnjoy!"

	it := svc.ExtractItinerary(text)
	require.NotNil(t, it)
	require.Len(t, it.Days, 1)
	assert.Equal(t, 1, it.Days[0].DayNumber)
}

func TestExtractItineraryBareJSON(t *testing.T) {
	svc := NewRecoveryService()
	text := `Sure! {"days": [{"day_number": 2, "activities": []}]} Let me know.`

	it := svc.ExtractItinerary(text)
	require.NotNil(t, it)
	require.Len(t, it.Days, 1)
	assert.Equal(t, 2, it.Days[0].DayNumber)
}

func TestExtractItineraryNoJSON(t *testing.T) {
	svc := NewRecoveryService()
	assert.Nil(t, svc.ExtractItinerary("A lovely trip over three days around the lakes."))
	assert.Nil(t, svc.ExtractItinerary(""))
}

func TestParseTextItineraryNoDayMarkers(t *testing.T) {
	svc := NewRecoveryService()
	assert.Nil(t, svc.ParseTextItinerary("Udaipur is a beautiful city with many palaces."))
	assert.Nil(t, svc.ParseTextItinerary("   "))
}

func TestParseTextItineraryBulletedDays(t *testing.T) {
	svc := NewRecoveryService()
	text := "Day 1:\n" +
		"- 9:00 AM: City Palace\n" +
		"- 1:00 PM: Lunch at Millets of Mewar\n" +
		"- 4:00 PM: Jagdish Temple\n" +
		"\n" +
		"Day 2:\n" +
		"- 10:00 AM: Lake Pichola\n" +
		"- 2:00 PM: Bagore Ki Haveli\n"

	it := svc.ParseTextItinerary(text)
	require.NotNil(t, it)
	require.Len(t, it.Days, 2)

	assert.Equal(t, 1, it.Days[0].DayNumber)
	require.Len(t, it.Days[0].Activities, 3)
	assert.Equal(t, "City Palace", it.Days[0].Activities[0].POI.Name)
	assert.Equal(t, "9:00 AM", it.Days[0].Activities[0].Time)
	assert.Equal(t, 0, it.Days[0].Activities[0].TravelTimeFromPrev)
	assert.Equal(t, 15, it.Days[0].Activities[1].TravelTimeFromPrev)
	assert.Equal(t, "Lunch at Millets of Mewar", it.Days[0].Activities[1].POI.Name)

	assert.Equal(t, 2, it.Days[1].DayNumber)
	require.Len(t, it.Days[1].Activities, 2)
	assert.Equal(t, "Lake Pichola", it.Days[1].Activities[0].POI.Name)
}

func TestParseTextItineraryDurationShrinksToNextStart(t *testing.T) {
	svc := NewRecoveryService()
	text := "Day 1:\n- 9:00 AM: Jagdish Temple\n- 9:45 AM: City Palace\n"

	it := svc.ParseTextItinerary(text)
	require.NotNil(t, it)
	require.Len(t, it.Days, 1)
	require.Len(t, it.Days[0].Activities, 2)

	// 45 minutes to the next start, no travel before the first stop.
	assert.Equal(t, 0.75, it.Days[0].Activities[0].POI.DurationHours)
	assert.Equal(t, 1.5, it.Days[0].Activities[1].POI.DurationHours)
}

func TestParseTextItineraryTimeRangeLine(t *testing.T) {
	svc := NewRecoveryService()
	text := "Day 1: 9:00 AM - 10:30 AM: City Palace 10:30 AM - 12:00 PM: Jagdish Temple"

	it := svc.ParseTextItinerary(text)
	require.NotNil(t, it)
	require.Len(t, it.Days, 1)
	require.Len(t, it.Days[0].Activities, 2)
	assert.Equal(t, "City Palace", it.Days[0].Activities[0].POI.Name)
	assert.Equal(t, "9:00 AM", it.Days[0].Activities[0].Time)
	assert.Equal(t, "Jagdish Temple", it.Days[0].Activities[1].POI.Name)
	assert.Equal(t, "10:30 AM", it.Days[0].Activities[1].Time)
}

func TestParseTextItineraryProseCue(t *testing.T) {
	svc := NewRecoveryService()
	text := "Day 1: Start with a visit to the City Palace, one of the largest palace complexes in Rajasthan."

	it := svc.ParseTextItinerary(text)
	require.NotNil(t, it)
	require.Len(t, it.Days, 1)
	require.Len(t, it.Days[0].Activities, 1)
	assert.Equal(t, "City Palace", it.Days[0].Activities[0].POI.Name)
	assert.Empty(t, it.Days[0].Activities[0].Time)
	assert.Equal(t, 1.5, it.Days[0].Activities[0].POI.DurationHours)
}

func TestParseTextItinerarySkipsBudgetLines(t *testing.T) {
	svc := NewRecoveryService()
	text := "Day 1:\n" +
		"- 9:00 AM: City Palace\n" +
		"- City Palace: 300 INR\n" +
		"- Jagdish Temple: Free\n" +
		"- Total: 2000 INR\n" +
		"- Budget breakdown below\n"

	it := svc.ParseTextItinerary(text)
	require.NotNil(t, it)
	require.Len(t, it.Days, 1)
	require.Len(t, it.Days[0].Activities, 1)
	assert.Equal(t, "City Palace", it.Days[0].Activities[0].POI.Name)
}

func TestParseTextItineraryMarkdownHeadings(t *testing.T) {
	svc := NewRecoveryService()
	text := "### Day 1\n- 9:00 AM: City Palace\n\n**Day 2**\n- 10:00 AM: Lake Pichola\n"

	it := svc.ParseTextItinerary(text)
	require.NotNil(t, it)
	require.Len(t, it.Days, 2)
	assert.Equal(t, 1, it.Days[0].DayNumber)
	assert.Equal(t, 2, it.Days[1].DayNumber)
}

func TestShortPlaceFromDescription(t *testing.T) {
	tests := []struct {
		name string
		desc string
		want string
	}{
		{
			name: "short description kept",
			desc: "City Palace",
			want: "City Palace",
		},
		{
			name: "visit cue",
			desc: "Start the day with a visit to the City Palace, one of the largest palace complexes in Rajasthan",
			want: "City Palace",
		},
		{
			name: "meal fallback",
			desc: "Take a well-deserved break for lunch at one of the many rooftop restaurants in the old city area",
			want: "Lunch",
		},
		{
			name: "activity cue",
			desc: "Enjoy a sunset boat ride on Lake Pichola at 5:00 PM departing from the Rameshwar Ghat jetty",
			want: "Lake Pichola",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shortPlaceFromDescription(tt.desc))
		})
	}
}
