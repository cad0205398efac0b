package domain

import (
	"time"

	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// CalendarDay is one cell of a month grid
type CalendarDay struct {
	Date           types.Day
	DayNumber      int
	IsCurrentMonth bool
	IsAvailable    bool
	Price          *float64 // nil when unavailable; zero would mean "free"
	IsSelected     bool
	IsPast         bool
}

// CalendarMonth is a Monday-first month grid grouped into weeks of 7 days
type CalendarMonth struct {
	Year  int
	Month time.Month
	Weeks [][]CalendarDay
}

// Days returns the grid as a flat sequence
func (m *CalendarMonth) Days() []CalendarDay {
	days := make([]CalendarDay, 0, len(m.Weeks)*DaysPerWeek)
	for _, week := range m.Weeks {
		days = append(days, week...)
	}
	return days
}

// AvailableDays returns the number of bookable days of the current month
func (m *CalendarMonth) AvailableDays() int {
	count := 0
	for _, week := range m.Weeks {
		for _, d := range week {
			if d.IsCurrentMonth && d.IsAvailable {
				count++
			}
		}
	}
	return count
}

// OccupancyLevel classifies a day on the admin occupancy grid
type OccupancyLevel string

const (
	OccupancyEmpty   OccupancyLevel = "EMPTY"
	OccupancyPartial OccupancyLevel = "PARTIAL"
	OccupancyFull    OccupancyLevel = "FULL"
)
