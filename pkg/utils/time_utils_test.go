package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantOk  bool
	}{
		{name: "morning", input: "8:00 AM", want: 480, wantOk: true},
		{name: "afternoon", input: "12:30 PM", want: 750, wantOk: true},
		{name: "evening", input: "9:15 PM", want: 1275, wantOk: true},
		{name: "midnight", input: "12:00 AM", want: 0, wantOk: true},
		{name: "noon", input: "12:00 PM", want: 720, wantOk: true},
		{name: "lowercase", input: "10:45 pm", want: 1365, wantOk: true},
		{name: "bare hour 24h", input: "9", want: 540, wantOk: true},
		{name: "hour with meridiem but no minutes", input: "8 AM", want: 0, wantOk: false},
		{name: "empty", input: "", want: 0, wantOk: false},
		{name: "garbage", input: "noonish", want: 0, wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClockMinutes(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatClock12(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "12:00 AM"},
		{480, "8:00 AM"},
		{720, "12:00 PM"},
		{750, "12:30 PM"},
		{1275, "9:15 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatClock12(tt.minutes))
	}
}

func TestClockRoundTrip(t *testing.T) {
	for _, s := range []string{"8:00 AM", "12:00 PM", "12:00 AM", "6:45 PM"} {
		m, ok := ParseClockMinutes(s)
		assert.True(t, ok)
		assert.Equal(t, s, FormatClock12(m))
	}
}
