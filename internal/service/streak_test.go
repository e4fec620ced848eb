package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	lastWeek := now.AddDate(0, 0, -7)
	earlierToday := now.Add(-6 * time.Hour)

	tests := []struct {
		name    string
		current int
		last    *time.Time
		want    int
	}{
		{"first ever activity", 0, nil, 1},
		{"consecutive day", 3, &yesterday, 4},
		{"same day keeps streak", 3, &earlierToday, 3},
		{"gap resets", 10, &lastWeek, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, advanceStreak(tt.current, tt.last, now))
		})
	}
}

func TestAdvanceStreakAcrossMonthBoundary(t *testing.T) {
	lastOfMonth := time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC)
	firstOfMonth := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 6, advanceStreak(5, &lastOfMonth, firstOfMonth))
}

func TestSameDayIgnoresClock(t *testing.T) {
	morning := time.Date(2025, 3, 10, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.True(t, sameDay(morning, night))
	assert.False(t, sameDay(morning, night.Add(time.Second)))
}
