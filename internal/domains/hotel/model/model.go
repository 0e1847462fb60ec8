package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"syncguard/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID   = "id"
	FieldName = "name"
)

type Hotel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Location  string    `db:"location"`
	Color     string    `db:"color"`
	OTAConfig OTAConfig `db:"ota_config"`
	model.Metadata
}

// OTAConfig carries per-channel identifiers for this property.
type OTAConfig struct {
	MMTHotelCode      string `json:"mmt_hotel_code,omitempty"`
	BookingHotelID    string `json:"booking_hotel_id,omitempty"`
	ExpediaPropertyID string `json:"expedia_property_id,omitempty"`
}

func (c OTAConfig) Value() (driver.Value, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ota config: %w", err)
	}

	return data, nil
}

func (c *OTAConfig) Scan(src any) error {
	if src == nil {
		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		str, ok := src.(string)
		if !ok {
			return fmt.Errorf("unsupported ota config source type %T", src)
		}

		data = []byte(str)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to unmarshal ota config: %w", err)
	}

	return nil
}
