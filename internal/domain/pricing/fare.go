package pricing

// RideFare is the itemized pre-tax fare for a single leg.
type RideFare struct {
	DayKm   float64
	NightKm float64

	DayPriceHT   float64
	NightPriceHT float64 // includes the night surcharge when applied

	NightSurcharge  float64
	SundaySurcharge float64

	FareHT         float64
	MinimumApplied bool
}

// ComputeRideFare prices one leg. Distance is apportioned to day and night in
// direct proportion to the minute split, the night portion takes the night
// surcharge, the Sunday/holiday surcharge applies once to the
// post-night-surcharge sum, and the minimum-fare floor overrides the total
// without redistributing the day/night components.
func ComputeRideFare(distanceKm float64, split TimeSplit, profile Profile, sundayOrHoliday bool) RideFare {
	var fare RideFare

	total := split.Total()
	if total > 0 {
		fare.DayKm = distanceKm * float64(split.DayMinutes) / float64(total)
		fare.NightKm = distanceKm * float64(split.NightMinutes) / float64(total)
	} else {
		// Degenerate zero-duration trip: everything counts as day.
		fare.DayKm = distanceKm
	}

	fare.DayPriceHT = fare.DayKm * profile.PricePerKm
	fare.NightPriceHT = fare.NightKm * profile.PricePerKm
	if profile.Night.Enabled && split.NightMinutes > 0 && profile.Night.SurchargePercent > 0 {
		fare.NightSurcharge = fare.NightKm * profile.PricePerKm * profile.Night.SurchargePercent / 100
		fare.NightPriceHT += fare.NightSurcharge
	}

	fare.FareHT = fare.DayPriceHT + fare.NightPriceHT

	if sundayOrHoliday && profile.SundayHolidaySurchargePercent > 0 {
		fare.SundaySurcharge = fare.FareHT * profile.SundayHolidaySurchargePercent / 100
		fare.FareHT += fare.SundaySurcharge
	}

	if profile.MinimumTripFare > 0 && fare.FareHT < profile.MinimumTripFare {
		fare.FareHT = profile.MinimumTripFare
		fare.MinimumApplied = true
	}

	return fare
}
