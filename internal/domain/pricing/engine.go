package pricing

import "time"

// Trip is the ephemeral pricing input assembled per quote request. Distances
// and durations must already be resolved (via the routing provider) before
// the engine runs.
type Trip struct {
	DepartureDate time.Time
	DepartureTime TimeOfDay

	OutboundDistanceKm  float64
	OutboundDurationMin int

	HasReturn           bool
	ReturnToSameAddress bool
	ReturnDistanceKm    float64
	ReturnDurationMin   int

	HasWaiting     bool
	WaitingMinutes int
}

// VATRates are the two independent tax bases: ride components versus waiting
// time. Never blended.
type VATRates struct {
	RidePercent    float64
	WaitingPercent float64
}

// Breakdown is the itemized result of a quote computation. It is recomputed
// from scratch on every input change and never mutated in place. Values keep
// full float precision; rounding to two decimals happens at presentation.
type Breakdown struct {
	DayKm   float64
	NightKm float64
	TotalKm float64

	OneWayFareHT  float64
	ReturnFareHT  float64
	WaitingFareHT float64

	OneWayFareTTC  float64
	ReturnFareTTC  float64
	WaitingFareTTC float64

	NightSurchargeAmount  float64
	SundaySurchargeAmount float64

	WaitingDayMinutes   int
	WaitingNightMinutes int

	TotalHT  float64
	TotalVAT float64
	TotalTTC float64

	IsNightRateApplied bool
	IsSundayOrHoliday  bool
	MinimumFareApplied bool

	// Advisory only: the configured minimum fare floor is active because the
	// outbound distance is below the profile threshold. Never blocks a quote.
	DistanceBelowMinimum bool
}

// Engine runs the four pricing stages in sequence: time split, ride fare per
// leg, waiting fare, tax and totals. It is pure and safe for concurrent use.
type Engine struct {
	holidays HolidayChecker
}

func NewEngine(holidays HolidayChecker) *Engine {
	return &Engine{holidays: holidays}
}

func (e *Engine) ComputeQuote(trip Trip, profile Profile, vat VATRates) Breakdown {
	var b Breakdown

	if trip.OutboundDistanceKm <= 0 {
		// Degenerate trip: the caller withholds submission until a route is
		// resolved, so an all-zero breakdown is the contract here.
		return b
	}

	sundayOrHoliday := e.holidays.IsSundayOrHoliday(trip.DepartureDate)
	b.IsSundayOrHoliday = sundayOrHoliday

	outSplit := e.splitLeg(trip.DepartureTime, trip.OutboundDurationMin, profile)
	outbound := ComputeRideFare(trip.OutboundDistanceKm, outSplit, profile, sundayOrHoliday)

	b.DayKm = outbound.DayKm
	b.NightKm = outbound.NightKm
	b.TotalKm = trip.OutboundDistanceKm
	b.OneWayFareHT = outbound.FareHT
	b.NightSurchargeAmount = outbound.NightSurcharge
	b.SundaySurchargeAmount = outbound.SundaySurcharge
	b.MinimumFareApplied = outbound.MinimumApplied
	nightMinutes := outSplit.NightMinutes

	if trip.HasReturn {
		if trip.ReturnToSameAddress {
			// Mirrored leg: duplicate the outbound fare, no recomputation.
			b.ReturnFareHT = outbound.FareHT
			b.DayKm += outbound.DayKm
			b.NightKm += outbound.NightKm
			b.TotalKm += trip.OutboundDistanceKm
			b.NightSurchargeAmount += outbound.NightSurcharge
			b.SundaySurchargeAmount += outbound.SundaySurcharge
			nightMinutes += outSplit.NightMinutes
		} else if trip.ReturnDistanceKm > 0 {
			// The return departs after the outbound leg and any waiting on site.
			offset := trip.OutboundDurationMin
			if trip.HasWaiting {
				offset += trip.WaitingMinutes
			}
			returnStart := trip.DepartureTime.AddMinutes(offset)
			retSplit := e.splitLeg(returnStart, trip.ReturnDurationMin, profile)
			ret := ComputeRideFare(trip.ReturnDistanceKm, retSplit, profile, sundayOrHoliday)

			b.ReturnFareHT = ret.FareHT
			b.DayKm += ret.DayKm
			b.NightKm += ret.NightKm
			b.TotalKm += trip.ReturnDistanceKm
			b.NightSurchargeAmount += ret.NightSurcharge
			b.SundaySurchargeAmount += ret.SundaySurcharge
			b.MinimumFareApplied = b.MinimumFareApplied || ret.MinimumApplied
			nightMinutes += retSplit.NightMinutes
		}
	}

	if trip.HasWaiting && trip.WaitingMinutes > 0 {
		waiting := ComputeWaitingFare(trip.WaitingMinutes, trip.DepartureTime, profile.Waiting)
		b.WaitingFareHT = waiting.FareHT
		b.WaitingDayMinutes = waiting.DayMinutes
		b.WaitingNightMinutes = waiting.NightMinutes
	}

	b.IsNightRateApplied = profile.Night.Enabled && nightMinutes > 0
	b.DistanceBelowMinimum = profile.MinimumTripDistanceKm > 0 &&
		trip.OutboundDistanceKm < profile.MinimumTripDistanceKm

	e.assembleTotals(&b, vat)
	return b
}

func (e *Engine) splitLeg(start TimeOfDay, durationMin int, profile Profile) TimeSplit {
	if !profile.Night.Enabled {
		// Disabled window: the whole leg counts as day without walking.
		return TimeSplit{DayMinutes: durationMin}
	}
	return SplitByNightWindow(start, durationMin, profile.Night.Window)
}

func (e *Engine) assembleTotals(b *Breakdown, vat VATRates) {
	rideHT := b.OneWayFareHT + b.ReturnFareHT
	rideVAT := rideHT * vat.RidePercent / 100
	waitingVAT := b.WaitingFareHT * vat.WaitingPercent / 100

	b.OneWayFareTTC = b.OneWayFareHT * (1 + vat.RidePercent/100)
	b.ReturnFareTTC = b.ReturnFareHT * (1 + vat.RidePercent/100)
	b.WaitingFareTTC = b.WaitingFareHT * (1 + vat.WaitingPercent/100)

	b.TotalHT = rideHT + b.WaitingFareHT
	b.TotalVAT = rideVAT + waitingVAT
	b.TotalTTC = b.TotalHT + b.TotalVAT
}
