package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"syncguard/config"
	"syncguard/infras/otel"
	bookingModel "syncguard/internal/domains/booking/model"
	bookingRepo "syncguard/internal/domains/booking/repository"
	"syncguard/internal/domains/stats/model/dto"
	"syncguard/shared/cache"
	"syncguard/shared/constant"
	gDto "syncguard/shared/dto"
	"syncguard/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheStatistics = "stats:summary"

	dailyWindow   = 14
	weeklyWindow  = 12
	monthlyWindow = 12
)

type Stats interface {
	Summary(ctx context.Context) (dto.StatisticsResponse, error)
}

type serviceImpl struct {
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Stats {
	return &serviceImpl{
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Summary recomputes the dashboard numbers from every non-Cancelled booking.
// Rows with unparseable stay dates are counted, logged and skipped rather
// than failing the whole report.
func (s *serviceImpl) Summary(ctx context.Context) (res dto.StatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".stats.Summary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheStatistics, &res)
	if err == nil {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    constant.BookingStatusCancelled,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookings, err := s.bookings.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load bookings for statistics")

		return res, fmt.Errorf("failed to load bookings for statistics: %w", err)
	}

	res = Aggregate(bookings, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheStatistics, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save statistics to cache")
		}
	}()

	return res, nil
}

// Aggregate folds bookings into the dashboard report as of the given time.
func Aggregate(bookings []bookingModel.Booking, now time.Time) dto.StatisticsResponse {
	res := dto.StatisticsResponse{}

	dailyRevenue := map[string]float64{}
	weeklyRevenue := map[string]float64{}
	monthlyRevenue := map[string]float64{}
	channelRevenue := map[string]float64{}
	channelCount := map[string]int{}
	roomTypeCount := map[string]int{}

	totalRevenue := 0.0

	for _, booking := range bookings {
		checkIn, err := bookingModel.ParseStayDate(booking.CheckIn)
		if err != nil {
			log.Warn().Str("bookingID", booking.ID).Str("checkIn", booking.CheckIn).Msg("skipping booking with unparseable check-in")
			res.SkippedRows++

			continue
		}

		if _, err := bookingModel.ParseStayDate(booking.CheckOut); err != nil {
			log.Warn().Str("bookingID", booking.ID).Str("checkOut", booking.CheckOut).Msg("skipping booking with unparseable check-out")
			res.SkippedRows++

			continue
		}

		channel := normalizeChannel(booking.Source)
		channelRevenue[channel] += booking.Amount
		channelCount[channel]++
		totalRevenue += booking.Amount

		if booking.RoomTypeID != constant.Empty {
			roomTypeCount[booking.RoomTypeID]++
		}

		if checkIn.Year() == now.Year() {
			res.YearToDate.Revenue += booking.Amount
			res.YearToDate.Bookings++
			res.YearToDate.Nights += booking.Nights()
		}

		dailyRevenue[booking.CheckIn] += booking.Amount

		year, week := checkIn.ISOWeek()
		weeklyRevenue[fmt.Sprintf("%d-W%02d", year, week)] += booking.Amount
		monthlyRevenue[checkIn.Format("2006-01")] += booking.Amount
	}

	if res.YearToDate.Nights > 0 {
		res.YearToDate.ADR = res.YearToDate.Revenue / float64(res.YearToDate.Nights)
	}

	for channel, revenue := range channelRevenue {
		share := 0.0
		if totalRevenue > 0 {
			share = revenue / totalRevenue
		}

		res.Channels = append(res.Channels, dto.ChannelShare{
			Channel:      channel,
			Revenue:      revenue,
			Count:        channelCount[channel],
			RevenueShare: share,
		})
	}

	sort.Slice(res.Channels, func(i, j int) bool {
		return res.Channels[i].Revenue > res.Channels[j].Revenue
	})

	res.DailyTrend = trailing(dailyRevenue, dailyWindow)
	res.WeeklyTrend = trailing(weeklyRevenue, weeklyWindow)
	res.MonthlyTrend = trailing(monthlyRevenue, monthlyWindow)

	for roomTypeID, count := range roomTypeCount {
		res.RoomTypes = append(res.RoomTypes, dto.RoomTypeCount{RoomTypeID: roomTypeID, Count: count})
	}

	sort.Slice(res.RoomTypes, func(i, j int) bool {
		return res.RoomTypes[i].Count > res.RoomTypes[j].Count
	})

	return res
}

// normalizeChannel folds unrecognized sources into the direct channel.
func normalizeChannel(source string) string {
	switch source {
	case constant.SourceMMT, constant.SourceBooking, constant.SourceExpedia:
		return source
	default:
		return constant.SourceDirect
	}
}

// trailing sorts bucket labels and keeps the most recent window of them.
// Daily, ISO-week and month labels all order lexicographically.
func trailing(buckets map[string]float64, window int) []dto.TrendPoint {
	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}

	sort.Strings(labels)

	if len(labels) > window {
		labels = labels[len(labels)-window:]
	}

	points := make([]dto.TrendPoint, len(labels))
	for i, label := range labels {
		points[i] = dto.TrendPoint{Label: label, Revenue: buckets[label]}
	}

	return points
}
