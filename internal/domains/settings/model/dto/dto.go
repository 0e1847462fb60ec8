package dto

import (
	"syncguard/internal/domains/settings/model"
	gDto "syncguard/shared/dto"
)

// UpdateSettingsRequest patches property settings; zero fields are ignored.
type UpdateSettingsRequest struct {
	HotelName      string  `db:"hotel_name"       json:"hotel_name"       validate:"omitempty,max=150"`
	AddressLine1   string  `db:"address_line1"    json:"address_line1"    validate:"omitempty,max=200"`
	AddressLine2   string  `db:"address_line2"    json:"address_line2"    validate:"omitempty,max=200"`
	City           string  `db:"city"             json:"city"             validate:"omitempty,max=100"`
	State          string  `db:"state"            json:"state"            validate:"omitempty,max=100"`
	PinCode        string  `db:"pin_code"         json:"pin_code"         validate:"omitempty,max=10"`
	Phone          string  `db:"phone"            json:"phone"            validate:"omitempty,max=20"`
	Email          string  `db:"email"            json:"email"            validate:"omitempty,email,max=100"`
	GSTNumber      string  `db:"gst_number"       json:"gst_number"       validate:"omitempty,max=30"`
	GSTRatePercent float64 `db:"gst_rate_percent" json:"gst_rate_percent" validate:"omitempty,gte=0,lte=100"`
	CheckInTime    string  `db:"check_in_time"    json:"check_in_time"    validate:"omitempty,datetime=15:04"`
	CheckoutCutoff string  `db:"checkout_cutoff"  json:"checkout_cutoff"  validate:"omitempty,datetime=15:04"`

	// Tiers replace the stored set wholesale when present.
	LoyaltyTiers model.LoyaltyTiers `db:"loyalty_tiers" json:"loyalty_tiers" validate:"omitempty,dive"`
}

type SettingsResponse struct {
	ID             string             `json:"id"`
	HotelName      string             `json:"hotel_name"`
	AddressLine1   string             `json:"address_line1"`
	AddressLine2   string             `json:"address_line2"`
	City           string             `json:"city"`
	State          string             `json:"state"`
	PinCode        string             `json:"pin_code"`
	Phone          string             `json:"phone"`
	Email          string             `json:"email"`
	GSTNumber      string             `json:"gst_number"`
	GSTRatePercent float64            `json:"gst_rate_percent"`
	CheckInTime    string             `json:"check_in_time"`
	CheckoutCutoff string             `json:"checkout_cutoff"`
	InvoiceCounter int                `json:"invoice_counter"`
	LoyaltyTiers   model.LoyaltyTiers `json:"loyalty_tiers"`
	gDto.Metadata
}

func (r *SettingsResponse) FromModel(mod model.PropertySettings) {
	r.ID = mod.ID
	r.HotelName = mod.HotelName
	r.AddressLine1 = mod.AddressLine1
	r.AddressLine2 = mod.AddressLine2
	r.City = mod.City
	r.State = mod.State
	r.PinCode = mod.PinCode
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.GSTNumber = mod.GSTNumber
	r.GSTRatePercent = mod.GSTRatePercent
	r.CheckInTime = mod.CheckInTime
	r.CheckoutCutoff = mod.CheckoutCutoff
	r.InvoiceCounter = mod.InvoiceCounter
	r.LoyaltyTiers = mod.LoyaltyTiers
	r.Metadata.FromModel(mod.Metadata)
}
