package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "syncguard/internal/domains/booking/model"
	"syncguard/internal/domains/stats/service"
	"syncguard/shared/constant"
)

func TestAggregate(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	booking := func(checkIn, checkOut, source, roomType string, amount float64) bookingModel.Booking {
		return bookingModel.Booking{
			ID:         "bk-" + checkIn + "-" + source,
			RoomTypeID: roomType,
			Source:     source,
			CheckIn:    checkIn,
			CheckOut:   checkOut,
			Amount:     amount,
		}
	}

	t.Run("year to date and channel shares", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			booking("2025-06-10", "2025-06-12", constant.SourceDirect, "rt-1", 4000),
			booking("2025-06-11", "2025-06-12", constant.SourceMMT, "rt-1", 2000),
			booking("2025-01-05", "2025-01-07", "WalkIn", "rt-2", 2000),
			// Previous year stays contribute to channels but not YTD.
			booking("2024-12-20", "2024-12-22", constant.SourceBooking, "rt-2", 2000),
		}

		res := service.Aggregate(bookings, now)

		assert.Equal(t, float64(8000), res.YearToDate.Revenue)
		assert.Equal(t, 3, res.YearToDate.Bookings)
		assert.Equal(t, 5, res.YearToDate.Nights)
		assert.InDelta(t, 1600, res.YearToDate.ADR, 0.001)

		// Unknown sources fold into Direct, which then leads by revenue.
		assert.Equal(t, constant.SourceDirect, res.Channels[0].Channel)
		assert.Equal(t, float64(6000), res.Channels[0].Revenue)
		assert.Equal(t, 2, res.Channels[0].Count)
		assert.InDelta(t, 0.6, res.Channels[0].RevenueShare, 0.001)
	})

	t.Run("unparseable dates are skipped and counted", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			booking("2025-06-10", "2025-06-11", constant.SourceDirect, "rt-1", 1000),
			booking("10/06/2025", "2025-06-11", constant.SourceDirect, "rt-1", 9999),
			booking("2025-06-12", "garbage", constant.SourceDirect, "rt-1", 500),
		}

		res := service.Aggregate(bookings, now)

		assert.Equal(t, 2, res.SkippedRows)
		assert.Equal(t, float64(1000), res.YearToDate.Revenue)
		assert.Equal(t, 1, res.YearToDate.Bookings)
	})

	t.Run("daily trend keeps the trailing window", func(t *testing.T) {
		bookings := make([]bookingModel.Booking, 0, 20)
		for day := 1; day <= 20; day++ {
			checkIn := fmt.Sprintf("2025-05-%02d", day)
			checkOut := fmt.Sprintf("2025-05-%02d", day+1)
			bookings = append(bookings, booking(checkIn, checkOut, constant.SourceDirect, "rt-1", 100))
		}

		res := service.Aggregate(bookings, now)

		assert.Len(t, res.DailyTrend, 14)
		assert.Equal(t, "2025-05-07", res.DailyTrend[0].Label)
		assert.Equal(t, "2025-05-20", res.DailyTrend[13].Label)
	})

	t.Run("weekly and monthly buckets", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			booking("2025-06-09", "2025-06-10", constant.SourceDirect, "rt-1", 1000),
			booking("2025-06-11", "2025-06-12", constant.SourceDirect, "rt-1", 500),
			booking("2025-05-01", "2025-05-02", constant.SourceDirect, "rt-1", 300),
		}

		res := service.Aggregate(bookings, now)

		// June 9 and 11 of 2025 share ISO week 24.
		assert.Equal(t, "2025-W24", res.WeeklyTrend[len(res.WeeklyTrend)-1].Label)
		assert.Equal(t, float64(1500), res.WeeklyTrend[len(res.WeeklyTrend)-1].Revenue)

		assert.Len(t, res.MonthlyTrend, 2)
		assert.Equal(t, "2025-05", res.MonthlyTrend[0].Label)
		assert.Equal(t, "2025-06", res.MonthlyTrend[1].Label)
	})

	t.Run("room type popularity orders by count", func(t *testing.T) {
		bookings := []bookingModel.Booking{
			booking("2025-06-01", "2025-06-02", constant.SourceDirect, "rt-2", 100),
			booking("2025-06-02", "2025-06-03", constant.SourceDirect, "rt-2", 100),
			booking("2025-06-03", "2025-06-04", constant.SourceDirect, "rt-1", 100),
		}

		res := service.Aggregate(bookings, now)

		assert.Equal(t, "rt-2", res.RoomTypes[0].RoomTypeID)
		assert.Equal(t, 2, res.RoomTypes[0].Count)
	})

	t.Run("empty input yields an empty report", func(t *testing.T) {
		res := service.Aggregate(nil, now)

		assert.Zero(t, res.YearToDate.Revenue)
		assert.Zero(t, res.YearToDate.ADR)
		assert.Empty(t, res.Channels)
		assert.Empty(t, res.DailyTrend)
	})
}
