package check_room_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InventoryService/internal/api/handlers"
	checkRoomAvailability "github.com/m04kA/SMC-InventoryService/internal/usecase/check_room_availability"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgMissingDates  = "даты заезда и выезда обязательны"
	msgInvalidQuery  = "некорректный формат даты или количества номеров"
	msgInvalidRange  = "дата выезда должна быть позже даты заезда"
	msgStayTooLong   = "слишком длительное проживание"
	msgInvalidInput  = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckRoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckRoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability
// Query params: checkIn, checkOut (обязательные), rooms (по умолчанию 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	query := r.URL.Query()
	if query.Get("checkIn") == "" || query.Get("checkOut") == "" {
		h.logger.Warn("GET /rooms/{id}/availability - Missing dates: room_id=%d", roomID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(roomID, query.Get("checkIn"), query.Get("checkOut"), query.Get("rooms"))
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid query: room_id=%d, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkRoomAvailability.ErrInvalidRange):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid range: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkRoomAvailability.ErrStayTooLong):
			h.logger.Warn("GET /rooms/{id}/availability - Stay too long: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, checkRoomAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Checked: room_id=%d, available=%t", roomID, result.Verdict.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
