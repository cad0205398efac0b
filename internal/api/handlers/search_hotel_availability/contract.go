package search_hotel_availability

import (
	"context"

	searchHotelAvailability "github.com/m04kA/SMC-InventoryService/internal/usecase/search_hotel_availability"
)

type SearchHotelAvailabilityUseCase interface {
	Execute(ctx context.Context, req *searchHotelAvailability.Request) (*searchHotelAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
