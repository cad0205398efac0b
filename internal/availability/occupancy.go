package availability

import (
	"sort"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// OccupancyMap maps each occupied day to the bookings holding units on it
type OccupancyMap map[types.Day][]*domain.Booking

// BuildOccupancyMap walks every confirmed booking over [CheckIn, CheckOut),
// the same nights the inventory index counts. The caller pre-filters the
// bookings to one room.
func BuildOccupancyMap(bookings []*domain.Booking) OccupancyMap {
	m := make(OccupancyMap)

	for _, booking := range bookings {
		if booking == nil || !booking.IsValid() || !booking.ConsumesInventory() {
			continue
		}
		for day := booking.CheckIn; day.Before(booking.CheckOut); day = day.AddDays(1) {
			m[day] = append(m[day], booking)
		}
	}

	return m
}

// Units returns the number of units booked on the day
func (m OccupancyMap) Units(day types.Day) int {
	total := 0
	for _, b := range m[day] {
		total += b.Units()
	}
	return total
}

// Level classifies a day against the room capacity
func (m OccupancyMap) Level(day types.Day, capacity int) domain.OccupancyLevel {
	return levelOf(m.Units(day), capacity)
}

func levelOf(units, capacity int) domain.OccupancyLevel {
	switch {
	case units <= 0:
		return domain.OccupancyEmpty
	case units >= capacity:
		return domain.OccupancyFull
	default:
		return domain.OccupancyPartial
	}
}

// DashboardCell is one room-day of the admin occupancy grid
type DashboardCell struct {
	Day         types.Day
	Bookings    []*domain.Booking
	UnitsBooked int
	Capacity    int
	Level       domain.OccupancyLevel
}

// DashboardRow is the occupancy of one room over the dashboard window
type DashboardRow struct {
	Room  *domain.Room
	Cells []DashboardCell
}

// Dashboard is the occupancy grid of a set of rooms over [From, To)
type Dashboard struct {
	From types.Day
	To   types.Day
	Rows []DashboardRow
}

// BuildDashboard groups bookings per room and per day.
// Unlike the evaluator it yields no availability verdict, only what is booked.
func BuildDashboard(rooms []*domain.Room, bookings []*domain.Booking, from, to types.Day) Dashboard {
	byRoom := make(map[int64][]*domain.Booking, len(rooms))
	for _, b := range bookings {
		if b == nil {
			continue
		}
		byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
	}

	days := types.Range(from, to)
	dashboard := Dashboard{
		From: from,
		To:   to,
		Rows: make([]DashboardRow, 0, len(rooms)),
	}

	for _, room := range rooms {
		if room == nil {
			continue
		}
		occupancy := BuildOccupancyMap(byRoom[room.ID])

		row := DashboardRow{
			Room:  room,
			Cells: make([]DashboardCell, 0, len(days)),
		}
		for _, day := range days {
			units := occupancy.Units(day)
			row.Cells = append(row.Cells, DashboardCell{
				Day:         day,
				Bookings:    sortedBookings(occupancy[day]),
				UnitsBooked: units,
				Capacity:    room.Capacity,
				Level:       levelOf(units, room.Capacity),
			})
		}

		dashboard.Rows = append(dashboard.Rows, row)
	}

	return dashboard
}

// sortedBookings возвращает копию, отсортированную по заезду и ID
func sortedBookings(bookings []*domain.Booking) []*domain.Booking {
	out := make([]*domain.Booking, len(bookings))
	copy(out, bookings)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CheckIn.Equal(out[j].CheckIn) {
			return out[i].CheckIn.Before(out[j].CheckIn)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
