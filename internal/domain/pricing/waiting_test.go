//go:build unit

package pricing_test

import (
	"testing"

	"vtcquote/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWaitingFare(t *testing.T) {
	t.Run("rounds up to 15-minute blocks", func(t *testing.T) {
		rate := pricing.WaitingRate{PerQuarterHour: 7.5}

		fare := pricing.ComputeWaitingFare(16, mustTime(t, "14:00"), rate)

		assert.Equal(t, 2, fare.Quarters, "16 minutes bills as two quarters")
		assert.InDelta(t, 15.0, fare.FareHT, floatTolerance, "flat per block, never prorated")
		assert.Equal(t, 30, fare.DayMinutes)
	})

	t.Run("exact multiple is not rounded up", func(t *testing.T) {
		rate := pricing.WaitingRate{PerQuarterHour: 7.5}

		fare := pricing.ComputeWaitingFare(30, mustTime(t, "14:00"), rate)

		assert.Equal(t, 2, fare.Quarters)
		assert.InDelta(t, 15.0, fare.FareHT, floatTolerance)
	})

	t.Run("zero or negative waiting yields zero fare", func(t *testing.T) {
		rate := pricing.WaitingRate{PerQuarterHour: 7.5}

		assert.Zero(t, pricing.ComputeWaitingFare(0, mustTime(t, "14:00"), rate).FareHT)
		assert.Zero(t, pricing.ComputeWaitingFare(-5, mustTime(t, "14:00"), rate).Quarters)
	})

	t.Run("night blocks take the waiting surcharge", func(t *testing.T) {
		rate := pricing.WaitingRate{
			PerQuarterHour:        10,
			NightEnabled:          true,
			NightWindow:           mustWindow(t, "22:00", "06:00"),
			NightSurchargePercent: 30,
		}

		// 21:45 departure, 3 blocks: 21:45 day, 22:00 and 22:15 night.
		fare := pricing.ComputeWaitingFare(45, mustTime(t, "21:45"), rate)

		assert.Equal(t, 3, fare.Quarters)
		assert.Equal(t, 15, fare.DayMinutes)
		assert.Equal(t, 30, fare.NightMinutes)
		assert.InDelta(t, 10.0, fare.DayFareHT, floatTolerance)
		assert.InDelta(t, 26.0, fare.NightFareHT, floatTolerance)
		assert.InDelta(t, 36.0, fare.FareHT, floatTolerance)
	})

	t.Run("waiting window disabled bills everything as day", func(t *testing.T) {
		rate := pricing.WaitingRate{
			PerQuarterHour:        10,
			NightEnabled:          false,
			NightWindow:           mustWindow(t, "22:00", "06:00"),
			NightSurchargePercent: 30,
		}

		fare := pricing.ComputeWaitingFare(45, mustTime(t, "23:00"), rate)

		assert.Zero(t, fare.NightMinutes)
		assert.InDelta(t, 30.0, fare.FareHT, floatTolerance)
	})

	t.Run("minute count conservation per block", func(t *testing.T) {
		rate := pricing.WaitingRate{
			PerQuarterHour: 5,
			NightEnabled:   true,
			NightWindow:    mustWindow(t, "20:00", "06:00"),
		}

		fare := pricing.ComputeWaitingFare(100, mustTime(t, "19:30"), rate)

		assert.Equal(t, 7, fare.Quarters)
		assert.Equal(t, fare.Quarters*15, fare.DayMinutes+fare.NightMinutes)
	})
}
