package availability

import (
	"time"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// MonthParams holds everything needed to render one month grid
type MonthParams struct {
	Year        int
	Month       time.Month
	Capacity    int
	Index       Index
	BaseRate    float64
	UnitsNeeded int
	Selected    *types.Day
	Today       types.Day
}

// BuildMonth renders a Monday-first month grid annotated with availability and price.
// The whole grid is rebuilt on every call; navigating or changing the selection
// simply calls it again.
func BuildMonth(p MonthParams) domain.CalendarMonth {
	first := types.NewDay(p.Year, p.Month, 1)
	daysInMonth := types.DaysInMonth(p.Year, p.Month)
	startDay := mondayOffset(first.Weekday())

	days := make([]domain.CalendarDay, 0, startDay+daysInMonth+domain.DaysPerWeek)

	// Хвост предыдущего месяца
	for i := startDay; i > 0; i-- {
		days = append(days, fillerDay(first.AddDays(-i)))
	}

	// Дни текущего месяца
	for n := 1; n <= daysInMonth; n++ {
		day := types.NewDay(p.Year, p.Month, n)
		days = append(days, p.monthDay(day))
	}

	// Начало следующего месяца до полной недели
	next := first.AddDays(daysInMonth)
	for len(days)%domain.DaysPerWeek != 0 {
		days = append(days, fillerDay(next))
		next = next.AddDays(1)
	}

	return domain.CalendarMonth{
		Year:  p.Year,
		Month: p.Month,
		Weeks: groupWeeks(days),
	}
}

// MonthWindow returns the half-open range of days covered by a month grid,
// including filler days of the adjacent months.
func MonthWindow(year int, month time.Month) (from, to types.Day) {
	first := types.NewDay(year, month, 1)
	from = first.AddDays(-mondayOffset(first.Weekday()))

	total := mondayOffset(first.Weekday()) + types.DaysInMonth(year, month)
	if rem := total % domain.DaysPerWeek; rem != 0 {
		total += domain.DaysPerWeek - rem
	}

	return from, from.AddDays(total)
}

func (p MonthParams) monthDay(day types.Day) domain.CalendarDay {
	cd := domain.CalendarDay{
		Date:           day,
		DayNumber:      day.DayOfMonth(),
		IsCurrentMonth: true,
		IsSelected:     p.Selected != nil && day.Equal(*p.Selected),
		IsPast:         day.Before(p.Today),
	}

	if cd.IsPast {
		return cd
	}

	if IsAvailable(p.Capacity, p.Index, day, p.Today, p.UnitsNeeded) {
		price := DisplayPrice(p.BaseRate, day)
		cd.IsAvailable = true
		cd.Price = &price
	}

	return cd
}

// fillerDay is a non-interactive day of an adjacent month
func fillerDay(day types.Day) domain.CalendarDay {
	return domain.CalendarDay{
		Date:           day,
		DayNumber:      day.DayOfMonth(),
		IsCurrentMonth: false,
		IsAvailable:    false,
		Price:          nil,
		IsPast:         true,
	}
}

// mondayOffset converts a weekday to a Monday-based index (Monday = 0)
func mondayOffset(w time.Weekday) int {
	return (int(w) + 6) % domain.DaysPerWeek
}

func groupWeeks(days []domain.CalendarDay) [][]domain.CalendarDay {
	weeks := make([][]domain.CalendarDay, 0, len(days)/domain.DaysPerWeek)
	for i := 0; i < len(days); i += domain.DaysPerWeek {
		weeks = append(weeks, days[i:i+domain.DaysPerWeek])
	}
	return weeks
}
