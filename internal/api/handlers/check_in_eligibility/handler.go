package check_in_eligibility

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-InventoryService/internal/api/handlers"
	checkInEligibility "github.com/m04kA/SMC-InventoryService/internal/usecase/check_in_eligibility"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
)

type Handler struct {
	useCase CheckInEligibilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckInEligibilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/check-in-eligibility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("GET /bookings/{id}/check-in-eligibility - Invalid booking ID: %s", mux.Vars(r)["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkInEligibility.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, checkInEligibility.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/check-in-eligibility - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, checkInEligibility.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("GET /bookings/{id}/check-in-eligibility - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id}/check-in-eligibility - booking_id=%d, eligible=%t", bookingID, result.Eligible)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
