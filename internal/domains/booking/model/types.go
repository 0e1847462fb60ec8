package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// jsonValue marshals a struct-backed column into its JSONB representation.
func jsonValue(v any) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal column value: %w", err)
	}

	return data, nil
}

func jsonScan(dest any, src any) error {
	if src == nil {
		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		str, ok := src.(string)
		if !ok {
			return fmt.Errorf("unsupported column source type %T", src)
		}

		data = []byte(str)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal column value: %w", err)
	}

	return nil
}

// FolioItem is one charge accrued to a stay, independently payable.
type FolioItem struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Timestamp     string  `json:"timestamp"`
	IsPaid        bool    `json:"is_paid"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	PaymentID     string  `json:"payment_id,omitempty"`
}

type FolioItems []FolioItem

func (f FolioItems) Value() (driver.Value, error) {
	if f == nil {
		return jsonValue(FolioItems{})
	}

	return jsonValue(f)
}

func (f *FolioItems) Scan(src any) error {
	return jsonScan(f, src)
}

type Payment struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Timestamp   string  `json:"timestamp"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status"`
	GatewayRef  string  `json:"gateway_ref,omitempty"`
}

type Payments []Payment

func (p Payments) Value() (driver.Value, error) {
	if p == nil {
		return jsonValue(Payments{})
	}

	return jsonValue(p)
}

func (p *Payments) Scan(src any) error {
	return jsonScan(p, src)
}

// GuestDetails is the identity snapshot a booking carries. Every field is
// optional on the wire; empty fields never overwrite profile data.
type GuestDetails struct {
	ProfileID           string `json:"profile_id,omitempty"`
	Name                string `json:"name,omitempty"`
	PhoneNumber         string `json:"phone_number,omitempty"`
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
	ArrivedFrom         string `json:"arrived_from,omitempty"`
	NextDestination     string `json:"next_destination,omitempty"`
	PurposeOfVisit      string `json:"purpose_of_visit,omitempty"`
	ArrivalTime         string `json:"arrival_time,omitempty"`
	DepartureTime       string `json:"departure_time,omitempty"`
	IDImage             string `json:"id_image,omitempty"`
	IDImageBack         string `json:"id_image_back,omitempty"`
	VisaPage            string `json:"visa_page,omitempty"`
}

// HasIdentity reports whether the details carry anything worth persisting
// as a guest profile.
func (g *GuestDetails) HasIdentity() bool {
	if g == nil {
		return false
	}

	return g.Name != "" || g.PhoneNumber != ""
}

func (g *GuestDetails) Value() (driver.Value, error) {
	if g == nil {
		return nil, nil
	}

	return jsonValue(g)
}

func (g *GuestDetails) Scan(src any) error {
	return jsonScan(g, src)
}

type GuestList []GuestDetails

func (l GuestList) Value() (driver.Value, error) {
	if l == nil {
		return jsonValue(GuestList{})
	}

	return jsonValue(l)
}

func (l *GuestList) Scan(src any) error {
	return jsonScan(l, src)
}

type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return jsonValue(StringMap{})
	}

	return jsonValue(m)
}

func (m *StringMap) Scan(src any) error {
	return jsonScan(m, src)
}
