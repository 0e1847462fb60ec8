package dto

import (
	"time"

	"syncguard/internal/domains/roomtype/model"
	"syncguard/shared"
	gDto "syncguard/shared/dto"
	sharedModel "syncguard/shared/model"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	Name           string           `json:"name"             validate:"required,max=100"`
	BasePrice      float64          `json:"base_price"       validate:"required,gt=0"`
	FloorPrice     float64          `json:"floor_price"      validate:"omitempty,gte=0"`
	CeilingPrice   float64          `json:"ceiling_price"    validate:"omitempty,gte=0"`
	BaseOccupancy  int              `json:"base_occupancy"   validate:"omitempty,gte=1"`
	ExtraBedCharge float64          `json:"extra_bed_charge" validate:"omitempty,gte=0"`
	Amenities      model.StringList `json:"amenities"        validate:"omitempty,dive,max=100"`
	RoomNumbers    model.StringList `json:"room_numbers"     validate:"required,min=1,dive,max=20"`
}

func (r CreateRoomTypeRequest) ToModel(actor string) model.RoomType {
	now := time.Now()

	return model.RoomType{
		ID:             uuid.NewString(),
		Name:           r.Name,
		TotalCapacity:  len(r.RoomNumbers),
		BasePrice:      r.BasePrice,
		FloorPrice:     r.FloorPrice,
		CeilingPrice:   r.CeilingPrice,
		BaseOccupancy:  r.BaseOccupancy,
		ExtraBedCharge: r.ExtraBedCharge,
		Amenities:      r.Amenities,
		RoomNumbers:    r.RoomNumbers,
		Metadata: sharedModel.Metadata{
			CreatedAt:  now,
			CreatedBy:  actor,
			ModifiedAt: now,
			ModifiedBy: actor,
		},
	}
}

// UpdateRoomTypeRequest patches fields; zero fields are left untouched.
// RoomNumbers, when present, replaces the set wholesale.
type UpdateRoomTypeRequest struct {
	Name           string           `db:"name"             json:"name"             validate:"omitempty,max=100"`
	BasePrice      float64          `db:"base_price"       json:"base_price"       validate:"omitempty,gt=0"`
	FloorPrice     float64          `db:"floor_price"      json:"floor_price"      validate:"omitempty,gte=0"`
	CeilingPrice   float64          `db:"ceiling_price"    json:"ceiling_price"    validate:"omitempty,gte=0"`
	BaseOccupancy  int              `db:"base_occupancy"   json:"base_occupancy"   validate:"omitempty,gte=1"`
	ExtraBedCharge float64          `db:"extra_bed_charge" json:"extra_bed_charge" validate:"omitempty,gte=0"`
	Amenities      model.StringList `db:"amenities"        json:"amenities"        validate:"omitempty,dive,max=100"`
	RoomNumbers    model.StringList `db:"room_numbers"     json:"room_numbers"     validate:"omitempty,min=1,dive,max=20"`
}

type RoomTypeResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	TotalCapacity  int              `json:"total_capacity"`
	BasePrice      float64          `json:"base_price"`
	FloorPrice     float64          `json:"floor_price"`
	CeilingPrice   float64          `json:"ceiling_price"`
	BaseOccupancy  int              `json:"base_occupancy"`
	ExtraBedCharge float64          `json:"extra_bed_charge"`
	Amenities      model.StringList `json:"amenities"`
	RoomNumbers    model.StringList `json:"room_numbers"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.TotalCapacity = mod.TotalCapacity
	r.BasePrice = mod.BasePrice
	r.FloorPrice = mod.FloorPrice
	r.CeilingPrice = mod.CeilingPrice
	r.BaseOccupancy = mod.BaseOccupancy
	r.ExtraBedCharge = mod.ExtraBedCharge
	r.Amenities = mod.Amenities
	r.RoomNumbers = mod.RoomNumbers
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
