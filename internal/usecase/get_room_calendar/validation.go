package get_room_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
)

const (
	minYear = 1970
	maxYear = 9999
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Year < minYear || req.Year > maxYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minYear, maxYear)
	}

	if req.Month < time.January || req.Month > time.December {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.RoomsRequested < 0 || req.RoomsRequested > domain.MaxRoomsRequested {
		return fmt.Errorf("%w: rooms must be between %d and %d",
			ErrInvalidInput, domain.MinRoomsRequested, domain.MaxRoomsRequested)
	}

	return nil
}
