package pricing

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/fr"
)

// HolidayChecker decides whether a departure date takes the Sunday/holiday
// surcharge.
type HolidayChecker interface {
	IsSundayOrHoliday(date time.Time) bool
}

// FrenchCalendar flags Sundays and French public holidays.
type FrenchCalendar struct {
	cal *cal.Calendar
}

func NewFrenchCalendar() *FrenchCalendar {
	c := &cal.Calendar{}
	c.AddHoliday(fr.Holidays...)
	return &FrenchCalendar{cal: c}
}

func (f *FrenchCalendar) IsSundayOrHoliday(date time.Time) bool {
	if date.Weekday() == time.Sunday {
		return true
	}
	actual, observed, _ := f.cal.IsHoliday(date)
	return actual || observed
}
