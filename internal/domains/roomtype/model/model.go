package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"syncguard/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room type"

	FieldID   = "id"
	FieldName = "name"
)

// RoomType is an inventory category. RoomNumbers enumerates the physical
// rooms sold under it; TotalCapacity mirrors len(RoomNumbers) for channel
// managers that only push counts.
type RoomType struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	TotalCapacity  int        `db:"total_capacity"`
	BasePrice      float64    `db:"base_price"`
	FloorPrice     float64    `db:"floor_price"`
	CeilingPrice   float64    `db:"ceiling_price"`
	BaseOccupancy  int        `db:"base_occupancy"`
	ExtraBedCharge float64    `db:"extra_bed_charge"`
	Amenities      StringList `db:"amenities"`
	RoomNumbers    StringList `db:"room_numbers"`
	model.Metadata
}

type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}

	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}

	return data, nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		return nil
	}

	data, ok := src.([]byte)
	if !ok {
		str, ok := src.(string)
		if !ok {
			return fmt.Errorf("unsupported string list source type %T", src)
		}

		data = []byte(str)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("failed to unmarshal string list: %w", err)
	}

	return nil
}
