package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"syncguard/shared/model"
)

const (
	TableName  = "property_settings"
	EntityName = "property settings"

	FieldID             = "id"
	FieldInvoiceCounter = "invoice_counter"
)

// PropertySettings is a single-row table keyed by a fixed ID. It carries the
// property identity printed on invoices plus billing knobs.
type PropertySettings struct {
	ID             string       `db:"id"`
	HotelName      string       `db:"hotel_name"`
	AddressLine1   string       `db:"address_line1"`
	AddressLine2   string       `db:"address_line2"`
	City           string       `db:"city"`
	State          string       `db:"state"`
	PinCode        string       `db:"pin_code"`
	Phone          string       `db:"phone"`
	Email          string       `db:"email"`
	GSTNumber      string       `db:"gst_number"`
	GSTRatePercent float64      `db:"gst_rate_percent"`
	CheckInTime    string       `db:"check_in_time"`
	CheckoutCutoff string       `db:"checkout_cutoff"`
	InvoiceCounter int          `db:"invoice_counter"`
	LoyaltyTiers   LoyaltyTiers `db:"loyalty_tiers"`
	model.Metadata
}

// LoyaltyTier maps a lifetime-nights threshold to a discount applied at the
// front desk. Tiers are ordered by MinNights ascending.
type LoyaltyTier struct {
	Name            string  `json:"name"`
	MinNights       int     `json:"min_nights"`
	DiscountPercent float64 `json:"discount_percent"`
}

type LoyaltyTiers []LoyaltyTier

func (l LoyaltyTiers) Value() (driver.Value, error) {
	if l == nil {
		l = LoyaltyTiers{}
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal loyalty tiers: %w", err)
	}

	return data, nil
}

func (l *LoyaltyTiers) Scan(src any) error {
	if src == nil {
		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		str, ok := src.(string)
		if !ok {
			return fmt.Errorf("unsupported loyalty tiers source type %T", src)
		}

		data = []byte(str)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("failed to unmarshal loyalty tiers: %w", err)
	}

	return nil
}
