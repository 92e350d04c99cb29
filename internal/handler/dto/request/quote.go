package request

import (
	"vtcquote/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddressRequest struct {
	Label string  `json:"label" binding:"required,max=500"`
	Lat   float64 `json:"lat" binding:"required"`
	Lng   float64 `json:"lng" binding:"required"`
}

func (r AddressRequest) toInput() commands.AddressInput {
	return commands.AddressInput{Label: r.Label, Lat: r.Lat, Lng: r.Lng}
}

// TripRequest carries the raw trip. Distance and duration fields are
// optional: when omitted the server resolves them through the routing
// provider.
type TripRequest struct {
	Pickup  AddressRequest  `json:"pickup" binding:"required"`
	Dropoff AddressRequest  `json:"dropoff" binding:"required"`
	Return  *AddressRequest `json:"return,omitempty"`

	DepartureDate string `json:"departure_date" binding:"required,datetime=2006-01-02"`
	DepartureTime string `json:"departure_time" binding:"required"`

	OutboundDistanceKm  float64 `json:"outbound_distance_km" binding:"omitempty,gte=0"`
	OutboundDurationMin int     `json:"outbound_duration_min" binding:"omitempty,gte=0"`

	HasReturn           bool    `json:"has_return"`
	ReturnToSameAddress bool    `json:"return_to_same_address"`
	ReturnDistanceKm    float64 `json:"return_distance_km" binding:"omitempty,gte=0"`
	ReturnDurationMin   int     `json:"return_duration_min" binding:"omitempty,gte=0"`

	HasWaiting     bool `json:"has_waiting"`
	WaitingMinutes int  `json:"waiting_minutes" binding:"omitempty,gte=0"`
}

func (r TripRequest) ToInput() commands.TripInput {
	input := commands.TripInput{
		Pickup:              r.Pickup.toInput(),
		Dropoff:             r.Dropoff.toInput(),
		DepartureDate:       r.DepartureDate,
		DepartureTime:       r.DepartureTime,
		OutboundDistanceKm:  r.OutboundDistanceKm,
		OutboundDurationMin: r.OutboundDurationMin,
		HasReturn:           r.HasReturn,
		ReturnToSameAddress: r.ReturnToSameAddress,
		ReturnDistanceKm:    r.ReturnDistanceKm,
		ReturnDurationMin:   r.ReturnDurationMin,
		HasWaiting:          r.HasWaiting,
		WaitingMinutes:      r.WaitingMinutes,
	}
	if r.Return != nil {
		ret := r.Return.toInput()
		input.Return = &ret
	}
	return input
}

type EstimateRequest struct {
	VehicleID uuid.UUID   `json:"vehicle_id" binding:"required"`
	Trip      TripRequest `json:"trip" binding:"required"`
}

type CreateQuoteRequest struct {
	VehicleID uuid.UUID   `json:"vehicle_id" binding:"required"`
	ClientID  *uuid.UUID  `json:"client_id,omitempty"`
	Trip      TripRequest `json:"trip" binding:"required"`
}

type UpdateQuoteStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent accepted declined"`
}
