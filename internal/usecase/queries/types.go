package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). Monetary fields keep full precision;
// rounding happens in the response/PDF layer.

type BreakdownView struct {
	DayKm   float64 `json:"day_km"`
	NightKm float64 `json:"night_km"`
	TotalKm float64 `json:"total_km"`

	OneWayFareHT  float64 `json:"one_way_fare_ht"`
	ReturnFareHT  float64 `json:"return_fare_ht"`
	WaitingFareHT float64 `json:"waiting_fare_ht"`

	OneWayFareTTC  float64 `json:"one_way_fare_ttc"`
	ReturnFareTTC  float64 `json:"return_fare_ttc"`
	WaitingFareTTC float64 `json:"waiting_fare_ttc"`

	NightSurchargeAmount  float64 `json:"night_surcharge_amount"`
	SundaySurchargeAmount float64 `json:"sunday_surcharge_amount"`

	WaitingDayMinutes   int `json:"waiting_day_minutes"`
	WaitingNightMinutes int `json:"waiting_night_minutes"`

	TotalHT  float64 `json:"total_ht"`
	TotalVAT float64 `json:"total_vat"`
	TotalTTC float64 `json:"total_ttc"`

	IsNightRateApplied   bool `json:"is_night_rate_applied"`
	IsSundayOrHoliday    bool `json:"is_sunday_or_holiday"`
	MinimumFareApplied   bool `json:"minimum_fare_applied"`
	DistanceBelowMinimum bool `json:"distance_below_minimum"`
}

type QuoteView struct {
	ID          uuid.UUID  `json:"id"`
	DriverID    uuid.UUID  `json:"driver_id"`
	VehicleID   uuid.UUID  `json:"vehicle_id"`
	VehicleName string     `json:"vehicle_name"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	ClientName  *string    `json:"client_name,omitempty"`
	ClientEmail *string    `json:"client_email,omitempty"`

	PickupLabel  string   `json:"pickup_label"`
	PickupLat    float64  `json:"pickup_lat"`
	PickupLng    float64  `json:"pickup_lng"`
	DropoffLabel string   `json:"dropoff_label"`
	DropoffLat   float64  `json:"dropoff_lat"`
	DropoffLng   float64  `json:"dropoff_lng"`
	ReturnLabel  *string  `json:"return_label,omitempty"`
	ReturnLat    *float64 `json:"return_lat,omitempty"`
	ReturnLng    *float64 `json:"return_lng,omitempty"`

	DepartureDate       time.Time `json:"departure_date"`
	DepartureTime       string    `json:"departure_time"`
	OutboundDistanceKm  float64   `json:"outbound_distance_km"`
	OutboundDurationMin int       `json:"outbound_duration_min"`
	HasReturn           bool      `json:"has_return"`
	ReturnToSameAddress bool      `json:"return_to_same_address"`
	ReturnDistanceKm    float64   `json:"return_distance_km"`
	ReturnDurationMin   int       `json:"return_duration_min"`
	HasWaiting          bool      `json:"has_waiting"`
	WaitingMinutes      int       `json:"waiting_minutes"`

	Breakdown BreakdownView `json:"breakdown"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuoteListItem struct {
	ID           uuid.UUID `json:"id"`
	VehicleName  string    `json:"vehicle_name"`
	ClientName   *string   `json:"client_name,omitempty"`
	PickupLabel  string    `json:"pickup_label"`
	DropoffLabel string    `json:"dropoff_label"`
	DepartureAt  time.Time `json:"departure_at"`
	TotalKm      float64   `json:"total_km"`
	TotalTTC     float64   `json:"total_ttc"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type VehicleView struct {
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

type ClientView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	CompanyName string    `json:"company_name"`
	Phone       string    `json:"phone"`
	IsActive    bool      `json:"is_active"`
}
