package pricing

import "errors"

var (
	ErrNegativeRate           = errors.New("rate cannot be negative")
	ErrNegativeSurcharge      = errors.New("surcharge percent cannot be negative")
	ErrNegativeMinimumFare    = errors.New("minimum fare cannot be negative")
	ErrNegativeMinimumRunDist = errors.New("minimum trip distance cannot be negative")
)

// NightRate is a percentage surcharge applied to the distance covered inside
// the night window.
type NightRate struct {
	Enabled          bool
	Window           NightWindow
	SurchargePercent float64
}

// WaitingRate prices billable idle time in 15-minute blocks, with its own
// night window distinct from the ride one.
type WaitingRate struct {
	PerQuarterHour        float64
	NightEnabled          bool
	NightWindow           NightWindow
	NightSurchargePercent float64
}

// Profile is a fully-resolved pricing configuration for one vehicle.
// Fallback chains (vehicle settings over driver defaults) are resolved at the
// boundary; the calculators never perform null-coalescing themselves.
type Profile struct {
	PricePerKm                    float64
	MinimumTripDistanceKm         float64
	MinimumTripFare               float64
	Night                         NightRate
	Waiting                       WaitingRate
	SundayHolidaySurchargePercent float64
}

func (p Profile) Validate() error {
	switch {
	case p.PricePerKm < 0:
		return ErrNegativeRate
	case p.Waiting.PerQuarterHour < 0:
		return ErrNegativeRate
	case p.MinimumTripFare < 0:
		return ErrNegativeMinimumFare
	case p.MinimumTripDistanceKm < 0:
		return ErrNegativeMinimumRunDist
	case p.Night.SurchargePercent < 0,
		p.Waiting.NightSurchargePercent < 0,
		p.SundayHolidaySurchargePercent < 0:
		return ErrNegativeSurcharge
	}
	return nil
}
