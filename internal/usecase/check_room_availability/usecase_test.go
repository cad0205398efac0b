package check_room_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	catalogClient "github.com/m04kA/SMC-InventoryService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetConfirmedByRoom(context.Context, int64, types.Day, types.Day) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeCatalog struct {
	room *domain.Room
	err  error
}

func (f *fakeCatalog) GetRoom(context.Context, int64) (*domain.Room, error) {
	return f.room, f.err
}

type checkRecord struct {
	scope     string
	available bool
}

type fakeMetrics struct {
	checks []checkRecord
}

func (f *fakeMetrics) RecordAvailabilityCheck(scope string, available bool) {
	f.checks = append(f.checks, checkRecord{scope, available})
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(s string) types.Day {
	return types.MustParseDay(s)
}

func confirmed(checkIn, checkOut string, rooms int) *domain.Booking {
	return &domain.Booking{
		RoomID:         10,
		HotelID:        1,
		CheckIn:        day(checkIn),
		CheckOut:       day(checkOut),
		RoomsRequested: rooms,
		Status:         domain.StatusConfirmed,
	}
}

func newUseCase(repo *fakeBookingRepo, catalog *fakeCatalog, m *fakeMetrics) *UseCase {
	clock := fixedClock{now: time.Date(2025, 12, 1, 9, 0, 0, 0, time.Local)}
	return NewUseCase(repo, catalog, m, clock, nopLogger{}, 30)
}

func TestExecute_AvailableWithQuote(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmed("2025-12-10", "2025-12-12", 1)}}
	catalog := &fakeCatalog{room: &domain.Room{ID: 10, Capacity: 2, BaseRate: 100}}
	m := &fakeMetrics{}

	resp, err := newUseCase(repo, catalog, m).Execute(context.Background(), &Request{
		RoomID:   10,
		CheckIn:  day("2025-12-11"),
		CheckOut: day("2025-12-14"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Verdict.Available)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 1, resp.MinRemaining)
	assert.Equal(t, 1, resp.PeakOccupied)
	require.NotNil(t, resp.Quote)
	// четверг 100, пятница 115, суббота 115
	assert.Equal(t, 330.0, resp.Quote.Total)
	assert.Equal(t, []checkRecord{{"room", true}}, m.checks)
}

func TestExecute_BlockedNight(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmed("2025-12-10", "2025-12-12", 2)}}
	catalog := &fakeCatalog{room: &domain.Room{ID: 10, Capacity: 2, BaseRate: 100}}
	m := &fakeMetrics{}

	resp, err := newUseCase(repo, catalog, m).Execute(context.Background(), &Request{
		RoomID:   10,
		CheckIn:  day("2025-12-08"),
		CheckOut: day("2025-12-11"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Verdict.Available)
	assert.Nil(t, resp.Quote)
	assert.Equal(t, []types.Day{day("2025-12-10")}, resp.Verdict.UnavailableDays())
	assert.Equal(t, []checkRecord{{"room", false}}, m.checks)
}

func TestExecute_CheckoutDayIsFreeForNextGuest(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{confirmed("2025-12-10", "2025-12-12", 2)}}
	catalog := &fakeCatalog{room: &domain.Room{ID: 10, Capacity: 2, BaseRate: 100}}

	resp, err := newUseCase(repo, catalog, &fakeMetrics{}).Execute(context.Background(), &Request{
		RoomID:   10,
		CheckIn:  day("2025-12-12"),
		CheckOut: day("2025-12-13"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Verdict.Available)
}

func TestExecute_MissingRoomIsUnavailable(t *testing.T) {
	catalog := &fakeCatalog{err: catalogClient.ErrRoomNotFound}

	resp, err := newUseCase(&fakeBookingRepo{}, catalog, &fakeMetrics{}).Execute(context.Background(), &Request{
		RoomID:   10,
		CheckIn:  day("2025-12-12"),
		CheckOut: day("2025-12-13"),
	})
	require.NoError(t, err)
	assert.False(t, resp.RoomFound)
	assert.False(t, resp.Verdict.Available)
}

func TestExecute_PastStayIsUnavailable(t *testing.T) {
	catalog := &fakeCatalog{room: &domain.Room{ID: 10, Capacity: 5, BaseRate: 100}}

	resp, err := newUseCase(&fakeBookingRepo{}, catalog, &fakeMetrics{}).Execute(context.Background(), &Request{
		RoomID:   10,
		CheckIn:  day("2025-11-29"),
		CheckOut: day("2025-12-02"),
	})
	require.NoError(t, err)
	assert.False(t, resp.Verdict.Available)
	assert.Len(t, resp.Verdict.UnavailableDays(), 2)
}

func TestExecute_Errors(t *testing.T) {
	catalog := &fakeCatalog{room: &domain.Room{ID: 10, Capacity: 5, BaseRate: 100}}

	tests := []struct {
		name    string
		repo    *fakeBookingRepo
		catalog *fakeCatalog
		req     Request
		want    error
	}{
		{"zero room", &fakeBookingRepo{}, catalog,
			Request{CheckIn: day("2025-12-10"), CheckOut: day("2025-12-11")}, ErrInvalidInput},
		{"missing dates", &fakeBookingRepo{}, catalog,
			Request{RoomID: 10}, ErrInvalidInput},
		{"inverted", &fakeBookingRepo{}, catalog,
			Request{RoomID: 10, CheckIn: day("2025-12-11"), CheckOut: day("2025-12-10")}, ErrInvalidRange},
		{"empty", &fakeBookingRepo{}, catalog,
			Request{RoomID: 10, CheckIn: day("2025-12-11"), CheckOut: day("2025-12-11")}, ErrInvalidRange},
		{"too long", &fakeBookingRepo{}, catalog,
			Request{RoomID: 10, CheckIn: day("2025-12-01"), CheckOut: day("2026-01-05")}, ErrStayTooLong},
		{"too many rooms", &fakeBookingRepo{}, catalog,
			Request{RoomID: 10, CheckIn: day("2025-12-10"), CheckOut: day("2025-12-11"), RoomsRequested: 101}, ErrInvalidInput},
		{"booking source", &fakeBookingRepo{err: errors.New("timeout")}, catalog,
			Request{RoomID: 10, CheckIn: day("2025-12-10"), CheckOut: day("2025-12-11")}, ErrInternal},
		{"catalog", &fakeBookingRepo{}, &fakeCatalog{err: catalogClient.ErrInvalidResponse},
			Request{RoomID: 10, CheckIn: day("2025-12-10"), CheckOut: day("2025-12-11")}, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(tt.repo, tt.catalog, &fakeMetrics{}).Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
