package check_room_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InventoryService/internal/availability"
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	checkRoomAvailability "github.com/m04kA/SMC-InventoryService/internal/usecase/check_room_availability"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

type fakeUseCase struct {
	req  *checkRoomAvailability.Request
	resp *checkRoomAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkRoomAvailability.Request) (*checkRoomAvailability.Response, error) {
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

func TestHandle_Available(t *testing.T) {
	checkIn := types.MustParseDay("2025-12-12")
	checkOut := types.MustParseDay("2025-12-13")
	quote := availability.QuoteStay(100, checkIn, checkOut)
	uc := &fakeUseCase{resp: &checkRoomAvailability.Response{
		Room:      &domain.Room{ID: 10, Capacity: 2},
		RoomFound: true,
		Nights:    1,
		Verdict: availability.RangeVerdict{
			CheckIn:     checkIn,
			CheckOut:    checkOut,
			UnitsNeeded: 1,
			Available:   true,
			Days:        []availability.DayVerdict{{Day: checkIn, Remaining: 2, Available: true}},
		},
		MinRemaining: 2,
		Quote:        &quote,
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/rooms/10/availability?checkIn=2025-12-12&checkOut=2025-12-13", "10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, checkIn, uc.req.CheckIn)
	assert.Zero(t, uc.req.RoomsRequested)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	require.NotNil(t, body.Quote)
	assert.Equal(t, 115.0, body.Quote.Total)
	require.Len(t, body.Days, 1)
	assert.Equal(t, 2, body.Days[0].Remaining)
}

func TestHandle_UnavailableHasNullQuote(t *testing.T) {
	uc := &fakeUseCase{resp: &checkRoomAvailability.Response{
		Room:    &domain.Room{ID: 10},
		Verdict: availability.RangeVerdict{},
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/rooms/10/availability?checkIn=2025-12-12&checkOut=2025-12-13&rooms=3", "10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, uc.req.RoomsRequested)
	assert.Contains(t, rec.Body.String(), `"quote":null`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		roomID string
		ucErr  error
		status int
	}{
		{"room id", "/api/v1/rooms/x/availability?checkIn=2025-12-12&checkOut=2025-12-13", "x", nil, http.StatusBadRequest},
		{"missing dates", "/api/v1/rooms/10/availability?checkIn=2025-12-12", "10", nil, http.StatusBadRequest},
		{"bad date", "/api/v1/rooms/10/availability?checkIn=2025-13-12&checkOut=2025-12-13", "10", nil, http.StatusBadRequest},
		{"inverted", "/api/v1/rooms/10/availability?checkIn=2025-12-14&checkOut=2025-12-13", "10",
			checkRoomAvailability.ErrInvalidRange, http.StatusBadRequest},
		{"too long", "/api/v1/rooms/10/availability?checkIn=2025-12-12&checkOut=2026-12-13", "10",
			checkRoomAvailability.ErrStayTooLong, http.StatusBadRequest},
		{"internal", "/api/v1/rooms/10/availability?checkIn=2025-12-12&checkOut=2025-12-13", "10",
			checkRoomAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			rec := serve(NewHandler(uc, nopLogger{}), tt.target, tt.roomID)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
