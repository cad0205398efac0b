package get_room_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InventoryService/internal/api/handlers"
	getRoomCalendar "github.com/m04kA/SMC-InventoryService/internal/usecase/get_room_calendar"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgInvalidQuery  = "некорректные параметры: year, month, rooms должны быть числами, selected в формате YYYY-MM-DD"
	msgInvalidInput  = "некорректные параметры календаря"
)

type Handler struct {
	useCase GetRoomCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/calendar
// Query params: year, month (по умолчанию текущий месяц), selected (YYYY-MM-DD), rooms (по умолчанию 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(roomID,
		query.Get("year"), query.Get("month"), query.Get("selected"), query.Get("rooms"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid query: room_id=%d, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getRoomCalendar.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/calendar - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/calendar - Failed to build calendar: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/calendar - Calendar built: room_id=%d, month=%04d-%02d",
		roomID, result.Calendar.Year, int(result.Calendar.Month))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
