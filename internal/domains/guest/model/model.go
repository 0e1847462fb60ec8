package model

import (
	"syncguard/shared/model"
)

const (
	TableName  = "guest_profiles"
	EntityName = "guest profile"

	FieldID          = "id"
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
	FieldLastCheckIn = "last_check_in"
)

// GuestProfile is the deduplicated identity record for a returning guest.
// The dedup key is (name, phone_number).
type GuestProfile struct {
	ID                  string `db:"id"`
	Name                string `db:"name"`
	PhoneNumber         string `db:"phone_number"`
	Email               string `db:"email"`
	IDType              string `db:"id_type"`
	IDNumber            string `db:"id_number"`
	Address             string `db:"address"`
	City                string `db:"city"`
	State               string `db:"state"`
	PinCode             string `db:"pin_code"`
	Country             string `db:"country"`
	Nationality         string `db:"nationality"`
	Gender              string `db:"gender"`
	DOB                 string `db:"dob"`
	FatherOrHusbandName string `db:"father_or_husband_name"`
	PassportNumber      string `db:"passport_number"`
	PassportPlaceIssue  string `db:"passport_place_issue"`
	PassportIssueDate   string `db:"passport_issue_date"`
	PassportExpiry      string `db:"passport_expiry"`
	VisaNumber          string `db:"visa_number"`
	VisaType            string `db:"visa_type"`
	VisaPlaceIssue      string `db:"visa_place_issue"`
	VisaIssueDate       string `db:"visa_issue_date"`
	VisaExpiry          string `db:"visa_expiry"`
	Preferences         string `db:"preferences"`
	LastCheckIn         string `db:"last_check_in"`
	model.Metadata
}
