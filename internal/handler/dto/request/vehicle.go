package request

import (
	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/domain/vehicle"
	"vtcquote/internal/usecase/commands"
)

// Pricing override fields are pointers: absent means "inherit the driver
// default". Time fields are "HH:MM" strings, validated here so the domain
// only sees well-formed values.
type VehicleRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Registration string `json:"registration" binding:"max=32"`
	Capacity     int    `json:"capacity" binding:"required,min=1"`

	PricePerKm            *float64 `json:"price_per_km,omitempty" binding:"omitempty,gte=0"`
	MinimumTripDistanceKm *float64 `json:"minimum_trip_distance_km,omitempty" binding:"omitempty,gte=0"`
	MinimumTripFare       *float64 `json:"minimum_trip_fare,omitempty" binding:"omitempty,gte=0"`

	NightRateEnabled      *bool    `json:"night_rate_enabled,omitempty"`
	NightStart            *string  `json:"night_start,omitempty"`
	NightEnd              *string  `json:"night_end,omitempty"`
	NightSurchargePercent *float64 `json:"night_surcharge_percent,omitempty" binding:"omitempty,gte=0"`

	WaitingPerQuarterHour        *float64 `json:"waiting_per_quarter_hour,omitempty" binding:"omitempty,gte=0"`
	WaitingNightEnabled          *bool    `json:"waiting_night_enabled,omitempty"`
	WaitingNightStart            *string  `json:"waiting_night_start,omitempty"`
	WaitingNightEnd              *string  `json:"waiting_night_end,omitempty"`
	WaitingNightSurchargePercent *float64 `json:"waiting_night_surcharge_percent,omitempty" binding:"omitempty,gte=0"`

	SundayHolidaySurchargePercent *float64 `json:"sunday_holiday_surcharge_percent,omitempty" binding:"omitempty,gte=0"`
}

func (r *VehicleRequest) ToInput() (commands.VehicleInput, error) {
	nightStart, err := parseTimePtr(r.NightStart)
	if err != nil {
		return commands.VehicleInput{}, err
	}
	nightEnd, err := parseTimePtr(r.NightEnd)
	if err != nil {
		return commands.VehicleInput{}, err
	}
	waitingStart, err := parseTimePtr(r.WaitingNightStart)
	if err != nil {
		return commands.VehicleInput{}, err
	}
	waitingEnd, err := parseTimePtr(r.WaitingNightEnd)
	if err != nil {
		return commands.VehicleInput{}, err
	}

	return commands.VehicleInput{
		Name:         r.Name,
		Registration: r.Registration,
		Capacity:     r.Capacity,
		Settings: vehicle.Settings{
			PricePerKm:                    r.PricePerKm,
			MinimumTripDistanceKm:         r.MinimumTripDistanceKm,
			MinimumTripFare:               r.MinimumTripFare,
			NightRateEnabled:              r.NightRateEnabled,
			NightStart:                    nightStart,
			NightEnd:                      nightEnd,
			NightSurchargePercent:         r.NightSurchargePercent,
			WaitingPerQuarterHour:         r.WaitingPerQuarterHour,
			WaitingNightEnabled:           r.WaitingNightEnabled,
			WaitingNightStart:             waitingStart,
			WaitingNightEnd:               waitingEnd,
			WaitingNightSurchargePercent:  r.WaitingNightSurchargePercent,
			SundayHolidaySurchargePercent: r.SundayHolidaySurchargePercent,
		},
	}, nil
}

type SetVehicleActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

func parseTimePtr(s *string) (*pricing.TimeOfDay, error) {
	if s == nil {
		return nil, nil
	}
	t, err := pricing.NewTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
