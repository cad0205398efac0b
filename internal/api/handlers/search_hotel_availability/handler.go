package search_hotel_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InventoryService/internal/api/handlers"
	searchHotelAvailability "github.com/m04kA/SMC-InventoryService/internal/usecase/search_hotel_availability"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingDates   = "даты заезда и выезда обязательны"
	msgInvalidQuery   = "некорректный формат даты или количества номеров"
	msgInvalidRange   = "дата выезда должна быть позже даты заезда"
	msgStayTooLong    = "слишком длительное проживание"
	msgInvalidInput   = "некорректные параметры запроса"
	msgHotelNotFound  = "отель не найден"
)

type Handler struct {
	useCase SearchHotelAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SearchHotelAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/availability
// Query params: checkIn, checkOut (обязательные), rooms (по умолчанию 1)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := strconv.ParseInt(mux.Vars(r)["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/availability - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	query := r.URL.Query()
	if query.Get("checkIn") == "" || query.Get("checkOut") == "" {
		h.logger.Warn("GET /hotels/{id}/availability - Missing dates: hotel_id=%d", hotelID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(hotelID, query.Get("checkIn"), query.Get("checkOut"), query.Get("rooms"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/availability - Invalid query: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, searchHotelAvailability.ErrHotelNotFound):
			h.logger.Warn("GET /hotels/{id}/availability - Hotel not found: hotel_id=%d", hotelID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, searchHotelAvailability.ErrInvalidRange):
			h.logger.Warn("GET /hotels/{id}/availability - Invalid range: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, searchHotelAvailability.ErrStayTooLong):
			h.logger.Warn("GET /hotels/{id}/availability - Stay too long: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, searchHotelAvailability.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/availability - Invalid input: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /hotels/{id}/availability - Failed to search: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/availability - Search completed: hotel_id=%d, available_rooms=%d",
		hotelID, result.AvailableRooms)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
