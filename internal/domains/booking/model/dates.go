package model

import (
	"syncguard/shared/constant"
	"time"
)

// ParseStayDate parses a calendar date in the YYYY-MM-DD form bookings use.
func ParseStayDate(value string) (time.Time, error) {
	return time.Parse(constant.StayDateFormat, value)
}

// NightsBetween returns the night count of [checkIn, checkOut), zero when
// either date is malformed or the interval is inverted.
func NightsBetween(checkIn, checkOut string) int {
	in, err := ParseStayDate(checkIn)
	if err != nil {
		return 0
	}

	out, err := ParseStayDate(checkOut)
	if err != nil {
		return 0
	}

	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}

	return nights
}

// Overlaps reports whether two half-open [checkIn, checkOut) stay intervals
// intersect. Zero-padded YYYY-MM-DD strings order lexicographically, so
// plain string comparison is exact.
func Overlaps(aCheckIn, aCheckOut, bCheckIn, bCheckOut string) bool {
	return aCheckIn < bCheckOut && aCheckOut > bCheckIn
}

// ActiveStatuses are the statuses that hold a room. CheckedOut, Cancelled
// and Rejected bookings release it.
func ActiveStatuses() []string {
	return []string{constant.BookingStatusConfirmed, constant.BookingStatusCheckedIn}
}
