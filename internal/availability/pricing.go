package availability

import (
	"math"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// NightlyPrice is the display price of one night of a stay
type NightlyPrice struct {
	Day   types.Day
	Price float64
}

// Quote is the display price of a stay [CheckIn, CheckOut)
type Quote struct {
	Nights []NightlyPrice
	Total  float64
}

// DisplayPrice returns the nightly price shown for a day.
// Friday and Saturday nights carry the weekend surcharge, rounded to a whole unit.
func DisplayPrice(baseRate float64, day types.Day) float64 {
	if isWeekendNight(day) {
		return math.Round(baseRate * domain.WeekendSurchargeRate)
	}
	return baseRate
}

// QuoteStay prices every night of [checkIn, checkOut)
func QuoteStay(baseRate float64, checkIn, checkOut types.Day) Quote {
	days := types.Range(checkIn, checkOut)

	quote := Quote{Nights: make([]NightlyPrice, 0, len(days))}
	for _, day := range days {
		price := DisplayPrice(baseRate, day)
		quote.Nights = append(quote.Nights, NightlyPrice{Day: day, Price: price})
		quote.Total += price
	}

	return quote
}

func isWeekendNight(day types.Day) bool {
	weekday := day.Weekday()
	for _, w := range domain.WeekendNights {
		if weekday == w {
			return true
		}
	}
	return false
}
