package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"syncguard/internal/domains/booking/model"
)

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"single night", "2025-01-10", "2025-01-11", 1},
		{"multi night", "2025-01-10", "2025-01-15", 5},
		{"same day", "2025-01-10", "2025-01-10", 0},
		{"inverted", "2025-01-15", "2025-01-10", 0},
		{"across month boundary", "2025-01-30", "2025-02-02", 3},
		{"bad check in", "not-a-date", "2025-01-11", 0},
		{"bad check out", "2025-01-10", "not-a-date", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]string
		b    [2]string
		want bool
	}{
		{"full overlap", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-10", "2025-01-15"}, true},
		{"partial overlap", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-13", "2025-01-20"}, true},
		{"contained", [2]string{"2025-01-10", "2025-01-20"}, [2]string{"2025-01-12", "2025-01-14"}, true},
		{"back to back same day turnover", [2]string{"2025-01-10", "2025-01-15"}, [2]string{"2025-01-15", "2025-01-20"}, false},
		{"disjoint", [2]string{"2025-01-10", "2025-01-12"}, [2]string{"2025-01-20", "2025-01-25"}, false},
		{"touching on check in", [2]string{"2025-01-15", "2025-01-20"}, [2]string{"2025-01-10", "2025-01-15"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Overlaps(tt.a[0], tt.a[1], tt.b[0], tt.b[1]))
		})
	}
}

func TestGuestDetailsHasIdentity(t *testing.T) {
	var nilDetails *model.GuestDetails

	assert.False(t, nilDetails.HasIdentity())
	assert.False(t, (&model.GuestDetails{Email: "g@example.com"}).HasIdentity())
	assert.True(t, (&model.GuestDetails{Name: "Asha Rao"}).HasIdentity())
	assert.True(t, (&model.GuestDetails{PhoneNumber: "9876543210"}).HasIdentity())
}

func TestBookingTotals(t *testing.T) {
	booking := model.Booking{
		Folio: model.FolioItems{
			{Description: "Dinner", Amount: 500, IsPaid: false},
			{Description: "Laundry", Amount: 200, IsPaid: true},
		},
		Payments: model.Payments{
			{Amount: 1000, Status: "Completed"},
			{Amount: 400, Status: "Refunded"},
		},
	}

	assert.InDelta(t, 500.0, booking.UnpaidFolioTotal(), 0.001)
	assert.InDelta(t, 1200.0, booking.PaidTotal(), 0.001)
}
