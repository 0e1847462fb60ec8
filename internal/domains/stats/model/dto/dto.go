package dto

// Summary is the year-to-date headline block.
type Summary struct {
	Revenue  float64 `json:"revenue"`
	Bookings int     `json:"bookings"`
	Nights   int     `json:"nights"`
	ADR      float64 `json:"adr"`
}

// ChannelShare is the revenue and booking-count contribution of one source
// channel. Unknown channels are folded into Direct.
type ChannelShare struct {
	Channel      string  `json:"channel"`
	Revenue      float64 `json:"revenue"`
	Count        int     `json:"count"`
	RevenueShare float64 `json:"revenue_share"`
}

type TrendPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

type RoomTypeCount struct {
	RoomTypeID string `json:"room_type_id"`
	Count      int    `json:"count"`
}

type StatisticsResponse struct {
	YearToDate   Summary         `json:"year_to_date"`
	Channels     []ChannelShare  `json:"channels"`
	DailyTrend   []TrendPoint    `json:"daily_trend"`
	WeeklyTrend  []TrendPoint    `json:"weekly_trend"`
	MonthlyTrend []TrendPoint    `json:"monthly_trend"`
	RoomTypes    []RoomTypeCount `json:"room_types"`
	SkippedRows  int             `json:"skipped_rows,omitempty"`
}
