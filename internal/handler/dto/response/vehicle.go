package response

import (
	"time"

	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
)

type VehicleResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Registration string    `json:"registration"`
	Capacity     int       `json:"capacity"`
	IsActive     bool      `json:"is_active"`

	PricePerKm            *float64 `json:"price_per_km,omitempty"`
	MinimumTripDistanceKm *float64 `json:"minimum_trip_distance_km,omitempty"`
	MinimumTripFare       *float64 `json:"minimum_trip_fare,omitempty"`

	NightRateEnabled      *bool    `json:"night_rate_enabled,omitempty"`
	NightStart            *string  `json:"night_start,omitempty"`
	NightEnd              *string  `json:"night_end,omitempty"`
	NightSurchargePercent *float64 `json:"night_surcharge_percent,omitempty"`

	WaitingPerQuarterHour        *float64 `json:"waiting_per_quarter_hour,omitempty"`
	WaitingNightEnabled          *bool    `json:"waiting_night_enabled,omitempty"`
	WaitingNightStart            *string  `json:"waiting_night_start,omitempty"`
	WaitingNightEnd              *string  `json:"waiting_night_end,omitempty"`
	WaitingNightSurchargePercent *float64 `json:"waiting_night_surcharge_percent,omitempty"`

	SundayHolidaySurchargePercent *float64 `json:"sunday_holiday_surcharge_percent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromVehicleView(view *queries.VehicleView) *VehicleResponse {
	return &VehicleResponse{
		ID:           view.ID,
		Name:         view.Name,
		Registration: view.Registration,
		Capacity:     view.Capacity,
		IsActive:     view.IsActive,

		PricePerKm:            view.PricePerKm,
		MinimumTripDistanceKm: view.MinimumTripDistanceKm,
		MinimumTripFare:       view.MinimumTripFare,

		NightRateEnabled:      view.NightRateEnabled,
		NightStart:            view.NightStart,
		NightEnd:              view.NightEnd,
		NightSurchargePercent: view.NightSurchargePercent,

		WaitingPerQuarterHour:        view.WaitingPerQuarterHour,
		WaitingNightEnabled:          view.WaitingNightEnabled,
		WaitingNightStart:            view.WaitingNightStart,
		WaitingNightEnd:              view.WaitingNightEnd,
		WaitingNightSurchargePercent: view.WaitingNightSurchargePercent,

		SundayHolidaySurchargePercent: view.SundayHolidaySurchargePercent,

		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}
