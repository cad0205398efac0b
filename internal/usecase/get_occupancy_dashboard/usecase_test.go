package get_occupancy_dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	catalogClient "github.com/m04kA/SMC-InventoryService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-InventoryService/pkg/ptr"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetConfirmedByHotel(context.Context, int64, types.Day, types.Day) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeCatalog struct {
	rooms []*domain.Room
	err   error
}

func (f *fakeCatalog) GetHotelRooms(context.Context, int64) ([]*domain.Room, error) {
	return f.rooms, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(s string) types.Day {
	return types.MustParseDay(s)
}

func hotelRooms() []*domain.Room {
	return []*domain.Room{
		{ID: 10, HotelID: 1, Name: "Standard", Capacity: 2},
		{ID: 11, HotelID: 1, Name: "Suite", Capacity: 1},
	}
}

func testBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, HotelID: 1, RoomID: 10, CheckIn: day("2025-12-01"), CheckOut: day("2025-12-03"),
			RoomsRequested: 1, Status: domain.StatusConfirmed},
		{ID: 2, HotelID: 1, RoomID: 11, CheckIn: day("2025-12-02"), CheckOut: day("2025-12-04"),
			RoomsRequested: 1, Status: domain.StatusConfirmed},
	}
}

func TestExecute_BuildsGrid(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{bookings: testBookings()}, &fakeCatalog{rooms: hotelRooms()}, nopLogger{}, 0)

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID: 1,
		From:    day("2025-12-01"),
		To:      day("2025-12-05"),
	})
	require.NoError(t, err)

	require.Len(t, resp.Dashboard.Rows, 2)
	standard := resp.Dashboard.Rows[0].Cells
	require.Len(t, standard, 4)
	assert.Equal(t, domain.OccupancyPartial, standard[0].Level)
	assert.Equal(t, domain.OccupancyEmpty, standard[2].Level)

	suite := resp.Dashboard.Rows[1].Cells
	assert.Equal(t, domain.OccupancyEmpty, suite[0].Level)
	assert.Equal(t, domain.OccupancyFull, suite[1].Level)
	assert.Equal(t, domain.OccupancyFull, suite[2].Level)
	assert.Equal(t, 2, resp.FullDays)
}

func TestExecute_SingleRoomFilter(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{bookings: testBookings()}, &fakeCatalog{rooms: hotelRooms()}, nopLogger{}, 0)

	resp, err := uc.Execute(context.Background(), &Request{
		HotelID: 1,
		RoomID:  ptr.Ptr(int64(11)),
		From:    day("2025-12-01"),
		To:      day("2025-12-05"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Dashboard.Rows, 1)
	assert.Equal(t, int64(11), resp.Dashboard.Rows[0].Room.ID)

	_, err = uc.Execute(context.Background(), &Request{
		HotelID: 1,
		RoomID:  ptr.Ptr(int64(99)),
		From:    day("2025-12-01"),
		To:      day("2025-12-05"),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_Errors(t *testing.T) {
	valid := Request{HotelID: 1, From: day("2025-12-01"), To: day("2025-12-05")}

	tests := []struct {
		name    string
		repo    *fakeBookingRepo
		catalog *fakeCatalog
		req     Request
		want    error
	}{
		{"zero hotel", &fakeBookingRepo{}, &fakeCatalog{},
			Request{From: day("2025-12-01"), To: day("2025-12-05")}, ErrInvalidInput},
		{"empty window", &fakeBookingRepo{}, &fakeCatalog{},
			Request{HotelID: 1, From: day("2025-12-01"), To: day("2025-12-01")}, ErrInvalidInput},
		{"window too long", &fakeBookingRepo{}, &fakeCatalog{},
			Request{HotelID: 1, From: day("2025-01-01"), To: day("2025-12-01")}, ErrWindowTooLong},
		{"hotel not found", &fakeBookingRepo{}, &fakeCatalog{err: catalogClient.ErrHotelNotFound}, valid, ErrHotelNotFound},
		{"catalog down", &fakeBookingRepo{}, &fakeCatalog{err: catalogClient.ErrInternal}, valid, ErrInternal},
		{"booking source", &fakeBookingRepo{err: errors.New("timeout")}, &fakeCatalog{rooms: hotelRooms()}, valid, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.repo, tt.catalog, nopLogger{}, 0)
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
