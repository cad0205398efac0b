package get_room_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	getRoomCalendar "github.com/m04kA/SMC-InventoryService/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-InventoryService/pkg/ptr"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

type fakeUseCase struct {
	req  *getRoomCalendar.Request
	resp *getRoomCalendar.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getRoomCalendar.Request) (*getRoomCalendar.Response, error) {
	f.req = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target, roomID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"roomId": roomID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	d := types.MustParseDay("2025-12-12")
	uc := &fakeUseCase{resp: &getRoomCalendar.Response{
		Room:        &domain.Room{ID: 10, Capacity: 2},
		RoomFound:   true,
		UnitsNeeded: 2,
		Calendar: domain.CalendarMonth{
			Year:  2025,
			Month: time.December,
			Weeks: [][]domain.CalendarDay{{
				{Date: d, DayNumber: 12, IsCurrentMonth: true, IsAvailable: true, Price: ptr.Ptr(115.0)},
				{Date: d.AddDays(1), DayNumber: 13, IsCurrentMonth: true},
			}},
		},
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/rooms/10/calendar?year=2025&month=12&selected=2025-12-12&rooms=2", "10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), uc.req.RoomID)
	assert.Equal(t, time.December, uc.req.Month)
	assert.Equal(t, 2, uc.req.RoomsRequested)
	require.NotNil(t, uc.req.Selected)
	assert.Equal(t, d, *uc.req.Selected)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 12, body.Month)
	assert.Equal(t, 1, body.AvailableDays)
	require.Len(t, body.Weeks, 1)
	assert.Equal(t, d, body.Weeks[0][0].Date)
	require.NotNil(t, body.Weeks[0][0].Price)
	assert.Equal(t, 115.0, *body.Weeks[0][0].Price)
	assert.Nil(t, body.Weeks[0][1].Price)
	assert.Contains(t, rec.Body.String(), `"price":null`)
}

func TestHandle_DefaultsLeftToUseCase(t *testing.T) {
	uc := &fakeUseCase{resp: &getRoomCalendar.Response{Room: &domain.Room{ID: 10}}}

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/rooms/10/calendar", "10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, uc.req.Year)
	assert.Zero(t, uc.req.Month)
	assert.Nil(t, uc.req.Selected)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
		roomID string
		ucErr  error
	}{
		{"room id", "/api/v1/rooms/abc/calendar", "abc", nil},
		{"month", "/api/v1/rooms/10/calendar?month=dec", "10", nil},
		{"selected", "/api/v1/rooms/10/calendar?selected=12/20/2025", "10", nil},
		{"rooms", "/api/v1/rooms/10/calendar?rooms=two", "10", nil},
		{"use case validation", "/api/v1/rooms/10/calendar?month=13", "10", getRoomCalendar.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			rec := serve(NewHandler(uc, nopLogger{}), tt.target, tt.roomID)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: getRoomCalendar.ErrInternal}

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/rooms/10/calendar", "10")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
