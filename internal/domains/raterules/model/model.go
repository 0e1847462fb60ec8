package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"syncguard/shared/model"
)

const (
	TableName  = "rate_rules"
	EntityName = "rate rules"

	FieldID = "id"
)

const (
	AdjustmentPercent = "percent"
	AdjustmentFlat    = "flat"
)

// RateRules is a single-row table keyed by a fixed ID, holding the pricing
// modifiers applied on top of a room type's base price.
type RateRules struct {
	ID            string        `db:"id"`
	WeeklyRules   WeeklyRules   `db:"weekly_rules"`
	SpecialEvents SpecialEvents `db:"special_events"`
	model.Metadata
}

// Adjustment shifts a base price either by a percentage or a flat amount.
type Adjustment struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Apply returns the adjusted price. Unknown types pass the price through.
func (a Adjustment) Apply(price float64) float64 {
	switch a.Type {
	case AdjustmentPercent:
		return price * (1 + a.Value/100)
	case AdjustmentFlat:
		return price + a.Value
	default:
		return price
	}
}

// WeeklyRules maps a weekday name ("Monday".."Sunday") to its adjustment.
type WeeklyRules map[string]Adjustment

// SpecialEvent overrides weekly rules for the dates it covers, end inclusive.
type SpecialEvent struct {
	Name       string     `json:"name"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Adjustment Adjustment `json:"adjustment"`
}

// Covers reports whether the event spans the given YYYY-MM-DD date.
func (e SpecialEvent) Covers(date string) bool {
	return e.StartDate <= date && date <= e.EndDate
}

type SpecialEvents []SpecialEvent

func (r WeeklyRules) Value() (driver.Value, error) {
	if r == nil {
		r = WeeklyRules{}
	}

	return marshalColumn(r)
}

func (r *WeeklyRules) Scan(src any) error {
	return unmarshalColumn(r, src)
}

func (e SpecialEvents) Value() (driver.Value, error) {
	if e == nil {
		e = SpecialEvents{}
	}

	return marshalColumn(e)
}

func (e *SpecialEvents) Scan(src any) error {
	return unmarshalColumn(e, src)
}

func marshalColumn(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rate rules column: %w", err)
	}

	return data, nil
}

func unmarshalColumn(dest any, src any) error {
	if src == nil {
		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		str, ok := src.(string)
		if !ok {
			return fmt.Errorf("unsupported rate rules source type %T", src)
		}

		data = []byte(str)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal rate rules column: %w", err)
	}

	return nil
}
