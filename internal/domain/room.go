package domain

// Room represents a room type of a hotel.
// Capacity is the total number of sellable units of this type, not the number
// of units currently free (the catalog stores it under the name "available").
type Room struct {
	ID       int64
	HotelID  int64
	Name     string
	Capacity int
	BaseRate float64 // nightly rate before weekend surcharge
}

// HasInventory returns true if the room type has any sellable units
func (r *Room) HasInventory() bool {
	return r.Capacity > 0
}

// UnknownRoom returns a room with zero capacity.
// Used when room data is missing so that calendars still render, fully unavailable.
func UnknownRoom(id int64) *Room {
	return &Room{ID: id}
}

// PooledCapacity returns the total capacity of a set of rooms
func PooledCapacity(rooms []*Room) int {
	total := 0
	for _, r := range rooms {
		if r != nil && r.Capacity > 0 {
			total += r.Capacity
		}
	}
	return total
}
