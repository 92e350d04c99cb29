package response

import (
	"time"

	"vtcquote/internal/domain/pricing"
	"vtcquote/internal/pkg/money"
	"vtcquote/internal/usecase/queries"

	"github.com/google/uuid"
)

// Monetary amounts are rounded to two decimals here, at the edge. Storage
// and the engine keep full precision.
type BreakdownResponse struct {
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

func FromBreakdownView(b queries.BreakdownView) BreakdownResponse {
	return BreakdownResponse{
		DayKm:   b.DayKm,
		NightKm: b.NightKm,
		TotalKm: b.TotalKm,

		OneWayFareHT:  money.Round2(b.OneWayFareHT),
		ReturnFareHT:  money.Round2(b.ReturnFareHT),
		WaitingFareHT: money.Round2(b.WaitingFareHT),

		OneWayFareTTC:  money.Round2(b.OneWayFareTTC),
		ReturnFareTTC:  money.Round2(b.ReturnFareTTC),
		WaitingFareTTC: money.Round2(b.WaitingFareTTC),

		NightSurchargeAmount:  money.Round2(b.NightSurchargeAmount),
		SundaySurchargeAmount: money.Round2(b.SundaySurchargeAmount),

		WaitingDayMinutes:   b.WaitingDayMinutes,
		WaitingNightMinutes: b.WaitingNightMinutes,

		TotalHT:  money.Round2(b.TotalHT),
		TotalVAT: money.Round2(b.TotalVAT),
		TotalTTC: money.Round2(b.TotalTTC),

		IsNightRateApplied:   b.IsNightRateApplied,
		IsSundayOrHoliday:    b.IsSundayOrHoliday,
		MinimumFareApplied:   b.MinimumFareApplied,
		DistanceBelowMinimum: b.DistanceBelowMinimum,
	}
}

// FromBreakdown serves the estimate path, which never goes through a view.
func FromBreakdown(b pricing.Breakdown) BreakdownResponse {
	return FromBreakdownView(queries.BreakdownView{
		DayKm:   b.DayKm,
		NightKm: b.NightKm,
		TotalKm: b.TotalKm,

		OneWayFareHT:  b.OneWayFareHT,
		ReturnFareHT:  b.ReturnFareHT,
		WaitingFareHT: b.WaitingFareHT,

		OneWayFareTTC:  b.OneWayFareTTC,
		ReturnFareTTC:  b.ReturnFareTTC,
		WaitingFareTTC: b.WaitingFareTTC,

		NightSurchargeAmount:  b.NightSurchargeAmount,
		SundaySurchargeAmount: b.SundaySurchargeAmount,

		WaitingDayMinutes:   b.WaitingDayMinutes,
		WaitingNightMinutes: b.WaitingNightMinutes,

		TotalHT:  b.TotalHT,
		TotalVAT: b.TotalVAT,
		TotalTTC: b.TotalTTC,

		IsNightRateApplied:   b.IsNightRateApplied,
		IsSundayOrHoliday:    b.IsSundayOrHoliday,
		MinimumFareApplied:   b.MinimumFareApplied,
		DistanceBelowMinimum: b.DistanceBelowMinimum,
	})
}

type EstimateResponse struct {
	OutboundDistanceKm  float64           `json:"outbound_distance_km"`
	OutboundDurationMin int               `json:"outbound_duration_min"`
	ReturnDistanceKm    float64           `json:"return_distance_km,omitempty"`
	ReturnDurationMin   int               `json:"return_duration_min,omitempty"`
	Breakdown           BreakdownResponse `json:"breakdown"`
}

type QuoteResponse struct {
	ID          uuid.UUID  `json:"id"`
	VehicleID   uuid.UUID  `json:"vehicle_id"`
	VehicleName string     `json:"vehicle_name"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	ClientName  *string    `json:"client_name,omitempty"`
	ClientEmail *string    `json:"client_email,omitempty"`

	PickupLabel  string  `json:"pickup_label"`
	DropoffLabel string  `json:"dropoff_label"`
	ReturnLabel  *string `json:"return_label,omitempty"`

	DepartureDate       string  `json:"departure_date"`
	DepartureTime       string  `json:"departure_time"`
	OutboundDistanceKm  float64 `json:"outbound_distance_km"`
	OutboundDurationMin int     `json:"outbound_duration_min"`
	HasReturn           bool    `json:"has_return"`
	ReturnToSameAddress bool    `json:"return_to_same_address"`
	ReturnDistanceKm    float64 `json:"return_distance_km"`
	ReturnDurationMin   int     `json:"return_duration_min"`
	HasWaiting          bool    `json:"has_waiting"`
	WaitingMinutes      int     `json:"waiting_minutes"`

	Breakdown BreakdownResponse `json:"breakdown"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuoteListResponse struct {
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

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		ID:          view.ID,
		VehicleID:   view.VehicleID,
		VehicleName: view.VehicleName,
		ClientID:    view.ClientID,
		ClientName:  view.ClientName,
		ClientEmail: view.ClientEmail,

		PickupLabel:  view.PickupLabel,
		DropoffLabel: view.DropoffLabel,
		ReturnLabel:  view.ReturnLabel,

		DepartureDate:       view.DepartureDate.Format(time.DateOnly),
		DepartureTime:       view.DepartureTime,
		OutboundDistanceKm:  view.OutboundDistanceKm,
		OutboundDurationMin: view.OutboundDurationMin,
		HasReturn:           view.HasReturn,
		ReturnToSameAddress: view.ReturnToSameAddress,
		ReturnDistanceKm:    view.ReturnDistanceKm,
		ReturnDurationMin:   view.ReturnDurationMin,
		HasWaiting:          view.HasWaiting,
		WaitingMinutes:      view.WaitingMinutes,

		Breakdown: FromBreakdownView(view.Breakdown),

		Status:    view.Status,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func FromQuoteListItem(item *queries.QuoteListItem) *QuoteListResponse {
	return &QuoteListResponse{
		ID:           item.ID,
		VehicleName:  item.VehicleName,
		ClientName:   item.ClientName,
		PickupLabel:  item.PickupLabel,
		DropoffLabel: item.DropoffLabel,
		DepartureAt:  item.DepartureAt,
		TotalKm:      item.TotalKm,
		TotalTTC:     money.Round2(item.TotalTTC),
		Status:       item.Status,
		CreatedAt:    item.CreatedAt,
	}
}
