package domain

import (
	"time"

	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// Booking represents a stay booked against a room type.
// Bookings are read-only for the inventory core.
type Booking struct {
	ID             int64
	HotelID        int64 // denormalized from the room for hotel-wide queries
	RoomID         int64
	CheckIn        types.Day
	CheckOut       types.Day // guests leave in the morning, the unit is free that night
	RoomsRequested int
	Status         BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ConsumesInventory returns true if the booking counts toward occupancy.
// Only confirmed bookings hold units; pending, cancelled and completed ones do not.
func (b *Booking) ConsumesInventory() bool {
	return b.Status == StatusConfirmed
}

// Units returns the number of units held per night, defaulting to 1
func (b *Booking) Units() int {
	if b.RoomsRequested <= 0 {
		return DefaultRoomsRequested
	}
	return b.RoomsRequested
}

// Occupies returns true if the booking holds its units on the given night.
// The stay is the half-open interval [CheckIn, CheckOut).
func (b *Booking) Occupies(day types.Day) bool {
	return day.InRange(b.CheckIn, b.CheckOut)
}

// IsValid returns true if check-out is strictly after check-in
func (b *Booking) IsValid() bool {
	return !b.CheckIn.IsZero() && b.CheckOut.After(b.CheckIn)
}

// IsValidStatus reports whether s is a known booking status
func IsValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}
