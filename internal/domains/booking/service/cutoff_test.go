package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveCheckOutDate(t *testing.T) {
	morning := time.Date(2025, 3, 12, 9, 30, 0, 0, time.UTC)
	afternoon := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		now    time.Time
		cutoff string
		want   string
	}{
		{
			name:   "before the cutoff stays on today",
			now:    morning,
			cutoff: "11:00",
			want:   "2025-03-12",
		},
		{
			name:   "past the cutoff moves to tomorrow",
			now:    afternoon,
			cutoff: "11:00",
			want:   "2025-03-13",
		},
		{
			name:   "exactly at the cutoff stays on today",
			now:    time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC),
			cutoff: "11:00",
			want:   "2025-03-12",
		},
		{
			name:   "empty cutoff never pushes the date",
			now:    afternoon,
			cutoff: "",
			want:   "2025-03-12",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, effectiveCheckOutDate(tc.now, tc.cutoff))
		})
	}
}
