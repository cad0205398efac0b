package availability

import (
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// ScopeKind defines which bookings an index is built from
type ScopeKind string

const (
	ScopeRoom  ScopeKind = "room"
	ScopeHotel ScopeKind = "hotel"
)

// Scope selects a single room type or the pooled rooms of a hotel
type Scope struct {
	Kind ScopeKind
	ID   int64
}

// ForRoom returns a scope matching bookings of exactly one room type
func ForRoom(roomID int64) Scope {
	return Scope{Kind: ScopeRoom, ID: roomID}
}

// ForHotel returns a scope pooling bookings of every room of a hotel
func ForHotel(hotelID int64) Scope {
	return Scope{Kind: ScopeHotel, ID: hotelID}
}

// Matches returns true if the booking belongs to the scope
func (s Scope) Matches(b *domain.Booking) bool {
	switch s.Kind {
	case ScopeRoom:
		return b.RoomID == s.ID
	case ScopeHotel:
		return b.HotelID == s.ID
	default:
		return false
	}
}

// Index maps a day to the number of units occupied on that night.
// Days without occupancy are absent.
type Index map[types.Day]int

// BuildIndex builds the occupancy index of a scope from a booking snapshot.
// Only confirmed bookings count, rows with an empty stay are skipped. Each booking occupies [CheckIn, CheckOut):
// the checkout day carries no occupancy from it.
func BuildIndex(bookings []*domain.Booking, scope Scope) Index {
	index := make(Index)

	for _, booking := range bookings {
		if booking == nil || !booking.IsValid() || !booking.ConsumesInventory() || !scope.Matches(booking) {
			continue
		}

		index.add(booking)
	}

	return index
}

func (idx Index) add(booking *domain.Booking) {
	units := booking.Units()
	for day := booking.CheckIn; day.Before(booking.CheckOut); day = day.AddDays(1) {
		idx[day] += units
	}
}

// Occupied returns the units occupied on the day, 0 when absent
func (idx Index) Occupied(day types.Day) int {
	return idx[day]
}

// Remaining returns capacity minus occupancy for the day (may be negative on overbooking)
func (idx Index) Remaining(capacity int, day types.Day) int {
	return capacity - idx.Occupied(day)
}

// Peak returns the highest occupancy over [from, to)
func (idx Index) Peak(from, to types.Day) int {
	peak := 0
	for day := from; day.Before(to); day = day.AddDays(1) {
		if occupied := idx.Occupied(day); occupied > peak {
			peak = occupied
		}
	}
	return peak
}
