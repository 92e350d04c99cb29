package vehicle

import (
	"vtcquote/internal/domain/pricing"
)

// Settings are per-vehicle pricing overrides. A nil field means "inherit the
// driver-level default". Window boundaries are parsed at the API boundary, so
// only well-formed times reach this struct.
type Settings struct {
	PricePerKm            *float64
	MinimumTripDistanceKm *float64
	MinimumTripFare       *float64

	NightRateEnabled      *bool
	NightStart            *pricing.TimeOfDay
	NightEnd              *pricing.TimeOfDay
	NightSurchargePercent *float64

	WaitingPerQuarterHour        *float64
	WaitingNightEnabled          *bool
	WaitingNightStart            *pricing.TimeOfDay
	WaitingNightEnd              *pricing.TimeOfDay
	WaitingNightSurchargePercent *float64

	SundayHolidaySurchargePercent *float64
}

// ResolveProfile layers vehicle overrides on top of the driver defaults and
// returns the fully-resolved profile the pricing engine consumes. This is the
// only place the fallback chain exists; the engine never null-coalesces.
func ResolveProfile(defaults pricing.Profile, overrides Settings) (pricing.Profile, error) {
	p := defaults

	if overrides.PricePerKm != nil {
		p.PricePerKm = *overrides.PricePerKm
	}
	if overrides.MinimumTripDistanceKm != nil {
		p.MinimumTripDistanceKm = *overrides.MinimumTripDistanceKm
	}
	if overrides.MinimumTripFare != nil {
		p.MinimumTripFare = *overrides.MinimumTripFare
	}

	if overrides.NightRateEnabled != nil {
		p.Night.Enabled = *overrides.NightRateEnabled
	}
	nightStart := p.Night.Window.Start()
	nightEnd := p.Night.Window.End()
	if overrides.NightStart != nil {
		nightStart = *overrides.NightStart
	}
	if overrides.NightEnd != nil {
		nightEnd = *overrides.NightEnd
	}
	p.Night.Window = pricing.NewNightWindow(nightStart, nightEnd)
	if overrides.NightSurchargePercent != nil {
		p.Night.SurchargePercent = *overrides.NightSurchargePercent
	}

	if overrides.WaitingPerQuarterHour != nil {
		p.Waiting.PerQuarterHour = *overrides.WaitingPerQuarterHour
	}
	if overrides.WaitingNightEnabled != nil {
		p.Waiting.NightEnabled = *overrides.WaitingNightEnabled
	}
	waitStart := p.Waiting.NightWindow.Start()
	waitEnd := p.Waiting.NightWindow.End()
	if overrides.WaitingNightStart != nil {
		waitStart = *overrides.WaitingNightStart
	}
	if overrides.WaitingNightEnd != nil {
		waitEnd = *overrides.WaitingNightEnd
	}
	p.Waiting.NightWindow = pricing.NewNightWindow(waitStart, waitEnd)
	if overrides.WaitingNightSurchargePercent != nil {
		p.Waiting.NightSurchargePercent = *overrides.WaitingNightSurchargePercent
	}

	if overrides.SundayHolidaySurchargePercent != nil {
		p.SundayHolidaySurchargePercent = *overrides.SundayHolidaySurchargePercent
	}

	if err := p.Validate(); err != nil {
		return pricing.Profile{}, err
	}
	return p, nil
}
