package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
)

func TestBuildOccupancyMap_HalfOpenWalk(t *testing.T) {
	a := booking(1, 10, "2025-12-10", "2025-12-12", 2, domain.StatusConfirmed)
	b := booking(2, 10, "2025-12-11", "2025-12-13", 1, domain.StatusConfirmed)

	m := BuildOccupancyMap([]*domain.Booking{a, b})

	assert.Equal(t, []*domain.Booking{a}, m[day("2025-12-10")])
	assert.ElementsMatch(t, []*domain.Booking{a, b}, m[day("2025-12-11")])
	assert.Equal(t, []*domain.Booking{b}, m[day("2025-12-12")])
	assert.NotContains(t, m, day("2025-12-13"))
}

func TestBuildOccupancyMap_SkipsUnconfirmed(t *testing.T) {
	m := BuildOccupancyMap([]*domain.Booking{
		booking(1, 10, "2025-12-10", "2025-12-12", 2, domain.StatusCancelled),
		booking(2, 10, "2025-12-10", "2025-12-12", 2, domain.StatusPending),
	})

	assert.Empty(t, m)
}

func TestBuildOccupancyMap_SkipsEmptyStay(t *testing.T) {
	m := BuildOccupancyMap([]*domain.Booking{
		booking(1, 10, "2025-12-12", "2025-12-10", 1, domain.StatusConfirmed),
		booking(2, 10, "2025-12-10", "2025-12-10", 1, domain.StatusConfirmed),
		nil,
	})

	assert.Empty(t, m)
}

func TestOccupancyMap_Level(t *testing.T) {
	m := BuildOccupancyMap([]*domain.Booking{
		booking(1, 10, "2025-12-10", "2025-12-12", 2, domain.StatusConfirmed),
		booking(2, 10, "2025-12-11", "2025-12-12", 1, domain.StatusConfirmed),
	})

	assert.Equal(t, domain.OccupancyEmpty, m.Level(day("2025-12-09"), 3))
	assert.Equal(t, domain.OccupancyPartial, m.Level(day("2025-12-10"), 3))
	assert.Equal(t, domain.OccupancyFull, m.Level(day("2025-12-11"), 3))
	assert.Equal(t, domain.OccupancyEmpty, m.Level(day("2025-12-12"), 3))
	assert.Equal(t, 3, m.Units(day("2025-12-11")))
}

func TestOccupancyMap_LevelOverbooked(t *testing.T) {
	m := BuildOccupancyMap([]*domain.Booking{
		booking(1, 10, "2025-12-10", "2025-12-11", 4, domain.StatusConfirmed),
	})

	assert.Equal(t, domain.OccupancyFull, m.Level(day("2025-12-10"), 2))
	assert.Equal(t, domain.OccupancyFull, m.Level(day("2025-12-10"), 0))
}

func TestBuildDashboard(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 10, HotelID: 1, Name: "Standard", Capacity: 3},
		{ID: 11, HotelID: 1, Name: "Suite", Capacity: 1},
	}
	late := booking(3, 10, "2025-12-11", "2025-12-13", 1, domain.StatusConfirmed)
	early := booking(1, 10, "2025-12-10", "2025-12-12", 2, domain.StatusConfirmed)
	bookings := []*domain.Booking{
		late,
		booking(2, 11, "2025-12-10", "2025-12-11", 1, domain.StatusConfirmed),
		early,
		booking(4, 11, "2025-12-11", "2025-12-12", 1, domain.StatusCancelled),
	}

	dashboard := BuildDashboard(rooms, bookings, day("2025-12-10"), day("2025-12-13"))

	require.Len(t, dashboard.Rows, 2)

	standard := dashboard.Rows[0]
	assert.Equal(t, int64(10), standard.Room.ID)
	require.Len(t, standard.Cells, 3)
	assert.Equal(t, domain.OccupancyPartial, standard.Cells[0].Level)
	assert.Equal(t, 3, standard.Cells[1].UnitsBooked)
	assert.Equal(t, domain.OccupancyFull, standard.Cells[1].Level)
	assert.Equal(t, []*domain.Booking{early, late}, standard.Cells[1].Bookings)
	assert.Equal(t, domain.OccupancyPartial, standard.Cells[2].Level)

	suite := dashboard.Rows[1]
	assert.Equal(t, domain.OccupancyFull, suite.Cells[0].Level)
	assert.Equal(t, domain.OccupancyEmpty, suite.Cells[1].Level)
	assert.Empty(t, suite.Cells[1].Bookings)
	assert.Equal(t, 1, suite.Cells[0].Capacity)
}

func TestBuildDashboard_SkipsNilRooms(t *testing.T) {
	rooms := []*domain.Room{nil, {ID: 10, Capacity: 2}}
	bookings := []*domain.Booking{
		booking(1, 10, "2025-12-10", "2025-12-11", 1, domain.StatusConfirmed),
	}

	dashboard := BuildDashboard(rooms, bookings, day("2025-12-10"), day("2025-12-12"))

	require.Len(t, dashboard.Rows, 1)
	assert.Equal(t, int64(10), dashboard.Rows[0].Room.ID)
	assert.Equal(t, domain.OccupancyPartial, dashboard.Rows[0].Cells[0].Level)
	assert.Equal(t, domain.OccupancyEmpty, dashboard.Rows[0].Cells[1].Level)
}

func TestBuildDashboard_NoRooms(t *testing.T) {
	dashboard := BuildDashboard(nil, nil, day("2025-12-10"), day("2025-12-13"))

	assert.Empty(t, dashboard.Rows)
	assert.Equal(t, day("2025-12-10"), dashboard.From)
}
