package get_occupancy_dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InventoryService/internal/api/handlers"
	getOccupancyDashboard "github.com/m04kA/SMC-InventoryService/internal/usecase/get_occupancy_dashboard"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingPeriod  = "параметры from и to обязательны"
	msgInvalidQuery   = "некорректный формат даты или ID номера"
	msgInvalidInput   = "некорректный период"
	msgWindowTooLong  = "слишком длинный период"
	msgHotelNotFound  = "отель не найден"
	msgRoomNotFound   = "номер не найден в отеле"
)

type Handler struct {
	useCase GetOccupancyDashboardUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyDashboardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/occupancy
// Query params: from, to (обязательные, [from, to)), roomId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := strconv.ParseInt(mux.Vars(r)["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/occupancy - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	query := r.URL.Query()
	if query.Get("from") == "" || query.Get("to") == "" {
		h.logger.Warn("GET /hotels/{id}/occupancy - Missing period: hotel_id=%d", hotelID)
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	useCaseReq, err := ToUseCaseRequest(hotelID, query.Get("from"), query.Get("to"), query.Get("roomId"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/occupancy - Invalid query: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancyDashboard.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/occupancy - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, getOccupancyDashboard.ErrRoomNotFound):
			h.logger.Warn("GET /hotels/{id}/occupancy - Room not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getOccupancyDashboard.ErrWindowTooLong):
			h.logger.Warn("GET /hotels/{id}/occupancy - Window too long: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgWindowTooLong)

		case errors.Is(err, getOccupancyDashboard.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/occupancy - Invalid input: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /hotels/{id}/occupancy - Failed to build dashboard: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/occupancy - Dashboard built: hotel_id=%d, rooms=%d",
		hotelID, len(result.Dashboard.Rows))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
