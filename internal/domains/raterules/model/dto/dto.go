package dto

import (
	"syncguard/internal/domains/raterules/model"
	gDto "syncguard/shared/dto"
)

// UpdateRateRulesRequest replaces the stored rule sets wholesale. A nil
// field leaves the stored set untouched.
type UpdateRateRulesRequest struct {
	WeeklyRules   model.WeeklyRules   `db:"weekly_rules"   json:"weekly_rules"`
	SpecialEvents model.SpecialEvents `db:"special_events" json:"special_events" validate:"omitempty,dive"`
}

type RateRulesResponse struct {
	ID            string              `json:"id"`
	WeeklyRules   model.WeeklyRules   `json:"weekly_rules"`
	SpecialEvents model.SpecialEvents `json:"special_events"`
	gDto.Metadata
}

func (r *RateRulesResponse) FromModel(mod model.RateRules) {
	r.ID = mod.ID
	r.WeeklyRules = mod.WeeklyRules
	r.SpecialEvents = mod.SpecialEvents
	r.Metadata.FromModel(mod.Metadata)
}

// QuoteResponse explains how a nightly rate was derived.
type QuoteResponse struct {
	RoomTypeID  string  `json:"room_type_id"`
	Date        string  `json:"date"`
	BasePrice   float64 `json:"base_price"`
	FinalPrice  float64 `json:"final_price"`
	AppliedRule string  `json:"applied_rule,omitempty"`
	Clamped     bool    `json:"clamped"`
}
