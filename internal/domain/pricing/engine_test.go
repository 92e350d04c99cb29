//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"vtcquote/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type stubCalendar struct {
	sundayOrHoliday bool
}

func (s stubCalendar) IsSundayOrHoliday(time.Time) bool {
	return s.sundayOrHoliday
}

var defaultVAT = pricing.VATRates{RidePercent: 10, WaitingPercent: 20}

func mondayTrip(t *testing.T) pricing.Trip {
	t.Helper()
	return pricing.Trip{
		DepartureDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), // a Monday
		DepartureTime:       mustTime(t, "14:00"),
		OutboundDistanceKm:  10,
		OutboundDurationMin: 20,
	}
}

func TestEngineComputeQuote(t *testing.T) {
	engine := pricing.NewEngine(stubCalendar{})

	t.Run("plain daytime trip end to end", func(t *testing.T) {
		profile := pricing.Profile{PricePerKm: 1.8}

		b := engine.ComputeQuote(mondayTrip(t), profile, defaultVAT)

		assert.InDelta(t, 18.0, b.OneWayFareHT, floatTolerance)
		assert.InDelta(t, 18.0, b.TotalHT, floatTolerance)
		assert.InDelta(t, 1.8, b.TotalVAT, floatTolerance)
		assert.InDelta(t, 19.8, b.TotalTTC, floatTolerance)
		assert.InDelta(t, 10.0, b.TotalKm, floatTolerance)
		assert.False(t, b.IsNightRateApplied)
		assert.False(t, b.IsSundayOrHoliday)
		assert.False(t, b.MinimumFareApplied)
	})

	t.Run("zero distance yields zero breakdown", func(t *testing.T) {
		trip := mondayTrip(t)
		trip.OutboundDistanceKm = 0

		b := engine.ComputeQuote(trip, pricing.Profile{PricePerKm: 1.8}, defaultVAT)

		assert.Equal(t, pricing.Breakdown{}, b)
	})

	t.Run("sunday surcharge is zero on regular days regardless of config", func(t *testing.T) {
		profile := pricing.Profile{PricePerKm: 1.8, SundayHolidaySurchargePercent: 20}

		b := engine.ComputeQuote(mondayTrip(t), profile, defaultVAT)

		assert.Zero(t, b.SundaySurchargeAmount)
		assert.InDelta(t, 18.0, b.OneWayFareHT, floatTolerance)
	})

	t.Run("sunday surcharge applied on flagged dates", func(t *testing.T) {
		sundayEngine := pricing.NewEngine(stubCalendar{sundayOrHoliday: true})
		profile := pricing.Profile{PricePerKm: 1.8, SundayHolidaySurchargePercent: 20}

		b := sundayEngine.ComputeQuote(mondayTrip(t), profile, defaultVAT)

		assert.True(t, b.IsSundayOrHoliday)
		assert.InDelta(t, 3.6, b.SundaySurchargeAmount, floatTolerance)
		assert.InDelta(t, 21.6, b.OneWayFareHT, floatTolerance)
	})

	t.Run("same-address return duplicates the outbound fare", func(t *testing.T) {
		trip := mondayTrip(t)
		trip.HasReturn = true
		trip.ReturnToSameAddress = true

		b := engine.ComputeQuote(trip, pricing.Profile{PricePerKm: 1.8}, defaultVAT)

		assert.InDelta(t, b.OneWayFareHT, b.ReturnFareHT, floatTolerance)
		assert.InDelta(t, 20.0, b.TotalKm, floatTolerance)
		assert.InDelta(t, 36.0, b.TotalHT, floatTolerance)
	})

	t.Run("distinct-address return leg priced with its own distance and offset", func(t *testing.T) {
		nightEngine := pricing.NewEngine(stubCalendar{})
		trip := pricing.Trip{
			DepartureDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			DepartureTime:       mustTime(t, "19:30"),
			OutboundDistanceKm:  10,
			OutboundDurationMin: 60,
			HasReturn:           true,
			ReturnDistanceKm:    20,
			ReturnDurationMin:   40,
		}
		profile := pricing.Profile{
			PricePerKm: 2.0,
			Night: pricing.NightRate{
				Enabled:          true,
				Window:           mustWindow(t, "20:00", "06:00"),
				SurchargePercent: 50,
			},
		}

		b := nightEngine.ComputeQuote(trip, profile, defaultVAT)

		// Outbound 19:30+60min: half day, half night → 5km day + 5km night (+50%).
		assert.InDelta(t, 10+15, b.OneWayFareHT, floatTolerance)
		// Return starts at 20:30, fully night → 20km * 2.0 * 1.5.
		assert.InDelta(t, 60.0, b.ReturnFareHT, floatTolerance)
		assert.InDelta(t, 30.0, b.TotalKm, floatTolerance)
		assert.True(t, b.IsNightRateApplied)
	})

	t.Run("waiting on site delays the return leg start", func(t *testing.T) {
		nightEngine := pricing.NewEngine(stubCalendar{})
		trip := pricing.Trip{
			DepartureDate:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			DepartureTime:       mustTime(t, "18:50"),
			OutboundDistanceKm:  10,
			OutboundDurationMin: 40,
			HasReturn:           true,
			ReturnDistanceKm:    10,
			ReturnDurationMin:   30,
			HasWaiting:          true,
			WaitingMinutes:      30,
		}
		profile := pricing.Profile{
			PricePerKm: 2.0,
			Night: pricing.NightRate{
				Enabled:          true,
				Window:           mustWindow(t, "20:00", "06:00"),
				SurchargePercent: 50,
			},
			Waiting: pricing.WaitingRate{PerQuarterHour: 7.5},
		}

		b := nightEngine.ComputeQuote(trip, profile, defaultVAT)

		// Outbound 18:50-19:30 is fully day.
		assert.InDelta(t, 20.0, b.OneWayFareHT, floatTolerance)
		// 30min waiting pushes the return to 20:00, fully night.
		assert.InDelta(t, 30.0, b.ReturnFareHT, floatTolerance)
	})

	t.Run("waiting fare taxed at its own rate", func(t *testing.T) {
		trip := mondayTrip(t)
		trip.HasWaiting = true
		trip.WaitingMinutes = 16

		profile := pricing.Profile{
			PricePerKm: 1.8,
			Waiting:    pricing.WaitingRate{PerQuarterHour: 7.5},
		}

		b := engine.ComputeQuote(trip, profile, defaultVAT)

		assert.InDelta(t, 15.0, b.WaitingFareHT, floatTolerance)
		assert.InDelta(t, 33.0, b.TotalHT, floatTolerance)
		// 18 * 10% + 15 * 20%
		assert.InDelta(t, 4.8, b.TotalVAT, floatTolerance)
		assert.InDelta(t, 37.8, b.TotalTTC, floatTolerance)
		assert.InDelta(t, 18.0, b.WaitingFareTTC, floatTolerance)
	})

	t.Run("distance below minimum raises the advisory flag only", func(t *testing.T) {
		trip := mondayTrip(t)
		trip.OutboundDistanceKm = 1

		profile := pricing.Profile{
			PricePerKm:            2.0,
			MinimumTripDistanceKm: 5,
			MinimumTripFare:       15,
		}

		b := engine.ComputeQuote(trip, profile, defaultVAT)

		assert.True(t, b.DistanceBelowMinimum)
		assert.True(t, b.MinimumFareApplied)
		assert.InDelta(t, 15.0, b.OneWayFareHT, floatTolerance)
	})

	t.Run("recomputation is deterministic", func(t *testing.T) {
		trip := mondayTrip(t)
		trip.HasReturn = true
		trip.ReturnToSameAddress = true
		trip.HasWaiting = true
		trip.WaitingMinutes = 50

		profile := pricing.Profile{
			PricePerKm: 1.8,
			Waiting:    pricing.WaitingRate{PerQuarterHour: 7.5},
		}

		first := engine.ComputeQuote(trip, profile, defaultVAT)
		second := engine.ComputeQuote(trip, profile, defaultVAT)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("breakdown mismatch between identical runs (-first +second):\n%s", diff)
		}
	})
}

func TestFrenchCalendar(t *testing.T) {
	calendar := pricing.NewFrenchCalendar()

	assert.True(t, calendar.IsSundayOrHoliday(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)), "a Sunday")
	assert.False(t, calendar.IsSundayOrHoliday(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)), "a Monday")
	assert.True(t, calendar.IsSundayOrHoliday(time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC)), "Bastille Day")
	assert.True(t, calendar.IsSundayOrHoliday(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)), "New Year")
}
