package search_hotel_availability

import (
	"fmt"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxStayNights int) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	if req.RoomsRequested < 0 || req.RoomsRequested > domain.MaxRoomsRequested {
		return fmt.Errorf("%w: rooms must be between %d and %d",
			ErrInvalidInput, domain.MinRoomsRequested, domain.MaxRoomsRequested)
	}

	if !req.CheckOut.After(req.CheckIn) {
		return fmt.Errorf("%w: checkIn=%s, checkOut=%s", ErrInvalidRange, req.CheckIn, req.CheckOut)
	}

	if nights := req.CheckIn.DaysUntil(req.CheckOut); nights > maxStayNights {
		return fmt.Errorf("%w: %d nights, maximum is %d", ErrStayTooLong, nights, maxStayNights)
	}

	return nil
}
