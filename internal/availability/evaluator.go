package availability

import (
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// DayVerdict is the availability of a single night
type DayVerdict struct {
	Day       types.Day
	Occupied  int
	Remaining int
	Available bool
}

// RangeVerdict is the availability of a stay [CheckIn, CheckOut)
type RangeVerdict struct {
	CheckIn     types.Day
	CheckOut    types.Day
	UnitsNeeded int
	Days        []DayVerdict
	Available   bool
}

// MinRemaining returns the smallest remaining count over the stay
func (v *RangeVerdict) MinRemaining() int {
	if len(v.Days) == 0 {
		return 0
	}
	lowest := v.Days[0].Remaining
	for _, d := range v.Days[1:] {
		if d.Remaining < lowest {
			lowest = d.Remaining
		}
	}
	return lowest
}

// UnavailableDays returns the nights that block the stay
func (v *RangeVerdict) UnavailableDays() []types.Day {
	days := make([]types.Day, 0)
	for _, d := range v.Days {
		if !d.Available {
			days = append(days, d.Day)
		}
	}
	return days
}

// IsAvailable reports whether unitsNeeded units can be sold on the day.
//
// The answer is best-effort: it is computed from the booking snapshot the index
// was built from and reserves nothing. Two callers may both see enough
// remaining units and together overshoot capacity; booking creation has to
// re-check under its own concurrency control.
func IsAvailable(capacity int, index Index, day, today types.Day, unitsNeeded int) bool {
	if day.Before(today) {
		return false
	}
	if capacity <= 0 {
		return false
	}
	return index.Remaining(capacity, day) >= normalizeUnits(unitsNeeded)
}

// IsRangeAvailable reports whether every night of [checkIn, checkOut) is available.
// A unit vacated on day d can be sold again starting on day d.
func IsRangeAvailable(capacity int, index Index, checkIn, checkOut, today types.Day, unitsNeeded int) bool {
	return EvaluateRange(capacity, index, checkIn, checkOut, today, unitsNeeded).Available
}

// EvaluateRange returns per-night verdicts and the range-level verdict.
// An empty or inverted range is never available.
func EvaluateRange(capacity int, index Index, checkIn, checkOut, today types.Day, unitsNeeded int) RangeVerdict {
	units := normalizeUnits(unitsNeeded)
	days := types.Range(checkIn, checkOut)

	verdict := RangeVerdict{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		UnitsNeeded: units,
		Days:        make([]DayVerdict, 0, len(days)),
		Available:   checkIn.Before(checkOut),
	}

	for _, day := range days {
		dv := DayVerdict{
			Day:       day,
			Occupied:  index.Occupied(day),
			Remaining: index.Remaining(capacity, day),
			Available: IsAvailable(capacity, index, day, today, units),
		}
		if !dv.Available {
			verdict.Available = false
		}
		verdict.Days = append(verdict.Days, dv)
	}

	return verdict
}

func normalizeUnits(unitsNeeded int) int {
	if unitsNeeded <= 0 {
		return domain.DefaultRoomsRequested
	}
	return unitsNeeded
}
