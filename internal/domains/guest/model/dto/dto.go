package dto

import (
	"syncguard/internal/domains/guest/model"
	"syncguard/shared"
	gDto "syncguard/shared/dto"
)

// UpdateGuestRequest patches profile fields; zero fields are left untouched.
type UpdateGuestRequest struct {
	Name                string `db:"name"                   json:"name"                   validate:"omitempty,max=100"`
	PhoneNumber         string `db:"phone_number"           json:"phone_number"           validate:"omitempty,max=20"`
	Email               string `db:"email"                  json:"email"                  validate:"omitempty,email,max=100"`
	IDType              string `db:"id_type"                json:"id_type"                validate:"omitempty,oneof=Aadhar Passport 'Driving License' 'Voter ID' Other"`
	IDNumber            string `db:"id_number"              json:"id_number"              validate:"omitempty,max=50"`
	Address             string `db:"address"                json:"address"                validate:"omitempty,max=300"`
	City                string `db:"city"                   json:"city"                   validate:"omitempty,max=100"`
	State               string `db:"state"                  json:"state"                  validate:"omitempty,max=100"`
	PinCode             string `db:"pin_code"               json:"pin_code"               validate:"omitempty,max=10"`
	Country             string `db:"country"                json:"country"                validate:"omitempty,max=100"`
	Nationality         string `db:"nationality"            json:"nationality"            validate:"omitempty,max=100"`
	Gender              string `db:"gender"                 json:"gender"                 validate:"omitempty,oneof=Male Female Other"`
	DOB                 string `db:"dob"                    json:"dob"                    validate:"omitempty,datetime=2006-01-02"`
	FatherOrHusbandName string `db:"father_or_husband_name" json:"father_or_husband_name" validate:"omitempty,max=100"`
	PassportNumber      string `db:"passport_number"        json:"passport_number"        validate:"omitempty,max=50"`
	PassportPlaceIssue  string `db:"passport_place_issue"   json:"passport_place_issue"   validate:"omitempty,max=100"`
	PassportIssueDate   string `db:"passport_issue_date"    json:"passport_issue_date"    validate:"omitempty"`
	PassportExpiry      string `db:"passport_expiry"        json:"passport_expiry"        validate:"omitempty"`
	VisaNumber          string `db:"visa_number"            json:"visa_number"            validate:"omitempty,max=50"`
	VisaType            string `db:"visa_type"              json:"visa_type"              validate:"omitempty,max=50"`
	VisaPlaceIssue      string `db:"visa_place_issue"       json:"visa_place_issue"       validate:"omitempty,max=100"`
	VisaIssueDate       string `db:"visa_issue_date"        json:"visa_issue_date"        validate:"omitempty"`
	VisaExpiry          string `db:"visa_expiry"            json:"visa_expiry"            validate:"omitempty"`
	Preferences         string `db:"preferences"            json:"preferences"            validate:"omitempty,max=500"`
}

type GuestProfileResponse struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	PhoneNumber         string `json:"phone_number"`
	Email               string `json:"email,omitempty"`
	IDType              string `json:"id_type,omitempty"`
	IDNumber            string `json:"id_number,omitempty"`
	Address             string `json:"address,omitempty"`
	City                string `json:"city,omitempty"`
	State               string `json:"state,omitempty"`
	PinCode             string `json:"pin_code,omitempty"`
	Country             string `json:"country,omitempty"`
	Nationality         string `json:"nationality,omitempty"`
	Gender              string `json:"gender,omitempty"`
	DOB                 string `json:"dob,omitempty"`
	FatherOrHusbandName string `json:"father_or_husband_name,omitempty"`
	PassportNumber      string `json:"passport_number,omitempty"`
	PassportPlaceIssue  string `json:"passport_place_issue,omitempty"`
	PassportIssueDate   string `json:"passport_issue_date,omitempty"`
	PassportExpiry      string `json:"passport_expiry,omitempty"`
	VisaNumber          string `json:"visa_number,omitempty"`
	VisaType            string `json:"visa_type,omitempty"`
	VisaPlaceIssue      string `json:"visa_place_issue,omitempty"`
	VisaIssueDate       string `json:"visa_issue_date,omitempty"`
	VisaExpiry          string `json:"visa_expiry,omitempty"`
	Preferences         string `json:"preferences,omitempty"`
	LastCheckIn         string `json:"last_check_in,omitempty"`
	gDto.Metadata
}

func (r *GuestProfileResponse) FromModel(mod model.GuestProfile) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.PhoneNumber = mod.PhoneNumber
	r.Email = mod.Email
	r.IDType = mod.IDType
	r.IDNumber = mod.IDNumber
	r.Address = mod.Address
	r.City = mod.City
	r.State = mod.State
	r.PinCode = mod.PinCode
	r.Country = mod.Country
	r.Nationality = mod.Nationality
	r.Gender = mod.Gender
	r.DOB = mod.DOB
	r.FatherOrHusbandName = mod.FatherOrHusbandName
	r.PassportNumber = mod.PassportNumber
	r.PassportPlaceIssue = mod.PassportPlaceIssue
	r.PassportIssueDate = mod.PassportIssueDate
	r.PassportExpiry = mod.PassportExpiry
	r.VisaNumber = mod.VisaNumber
	r.VisaType = mod.VisaType
	r.VisaPlaceIssue = mod.VisaPlaceIssue
	r.VisaIssueDate = mod.VisaIssueDate
	r.VisaExpiry = mod.VisaExpiry
	r.Preferences = mod.Preferences
	r.LastCheckIn = mod.LastCheckIn
	r.Metadata.FromModel(mod.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestProfileResponse `json:"guests"`
	TotalPage int                    `json:"total_page"`
	TotalData int                    `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.GuestProfile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestProfileResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
