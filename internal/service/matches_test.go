package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "mid month",
			now:      time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
			wantFrom: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "first of month",
			now:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantFrom: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "last day of month",
			now:      time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
			wantFrom: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			now:      time.Date(2025, 12, 20, 10, 0, 0, 0, time.UTC),
			wantFrom: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := MonthWindow(tt.now)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantTo, to)
		})
	}
}

func TestDemoMatchesWindowCoverage(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)
	from, to := MonthWindow(now)

	matches := demoMatches(now)
	assert.Len(t, matches, 4)

	inWindow := 0
	outOfWindow := 0
	for _, m := range matches {
		if !m.Date.Before(from) && m.Date.Before(to) {
			inWindow++
		} else {
			outOfWindow++
		}
	}

	// The derby is pinned past the window on purpose.
	assert.Equal(t, 3, inWindow)
	assert.Equal(t, 1, outOfWindow)
}
