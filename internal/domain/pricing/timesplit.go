package pricing

// TimeSplit partitions a duration into the minutes spent inside and outside
// a night window.
type TimeSplit struct {
	DayMinutes   int
	NightMinutes int
}

func (s TimeSplit) Total() int {
	return s.DayMinutes + s.NightMinutes
}

// SplitByNightWindow walks minute-by-minute from start, classifying each
// minute against the window. The walk is intentionally not closed-form: a
// single trip can cross day/night boundaries several times (a 23:50 departure
// crosses midnight and later the night-end boundary), and the loop handles
// every crossing uniformly.
func SplitByNightWindow(start TimeOfDay, durationMinutes int, window NightWindow) TimeSplit {
	var split TimeSplit
	if durationMinutes <= 0 {
		return split
	}

	t := start
	for i := 0; i < durationMinutes; i++ {
		if window.Contains(t) {
			split.NightMinutes++
		} else {
			split.DayMinutes++
		}
		t = t.AddMinutes(1)
	}
	return split
}
