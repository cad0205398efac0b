package get_occupancy_dashboard

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxDays int) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.RoomID != nil && *req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if !req.To.After(req.From) {
		return fmt.Errorf("%w: to must be after from", ErrInvalidInput)
	}

	if days := req.From.DaysUntil(req.To); days > maxDays {
		return fmt.Errorf("%w: %d days, maximum is %d", ErrWindowTooLong, days, maxDays)
	}

	return nil
}
