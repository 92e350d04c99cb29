package pricing

// WaitingFare is the pre-tax waiting-time fee, split into day and night
// portions by the waiting night window.
type WaitingFare struct {
	Quarters     int
	DayMinutes   int
	NightMinutes int
	DayFareHT    float64
	NightFareHT  float64
	FareHT       float64
}

const quarterHourMinutes = 15

// ComputeWaitingFare bills waiting time in 15-minute blocks, each priced flat
// regardless of partial occupancy. Blocks are walked from the departure time
// and classified individually against the waiting night window, so a wait
// that straddles the window boundary is charged per block, not as a whole.
func ComputeWaitingFare(waitingMinutes int, start TimeOfDay, rate WaitingRate) WaitingFare {
	var fare WaitingFare
	if waitingMinutes <= 0 {
		return fare
	}

	fare.Quarters = (waitingMinutes + quarterHourMinutes - 1) / quarterHourMinutes

	t := start
	for i := 0; i < fare.Quarters; i++ {
		if rate.NightEnabled && rate.NightWindow.Contains(t) {
			fare.NightMinutes += quarterHourMinutes
			fare.NightFareHT += rate.PerQuarterHour * (1 + rate.NightSurchargePercent/100)
		} else {
			fare.DayMinutes += quarterHourMinutes
			fare.DayFareHT += rate.PerQuarterHour
		}
		t = t.AddMinutes(quarterHourMinutes)
	}

	fare.FareHT = fare.DayFareHT + fare.NightFareHT
	return fare
}
