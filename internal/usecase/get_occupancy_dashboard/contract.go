package get_occupancy_dashboard

import (
	"context"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedByHotel(ctx context.Context, hotelID int64, from, to types.Day) ([]*domain.Booking, error)
}

// CatalogClient интерфейс клиента каталога номеров
type CatalogClient interface {
	GetHotelRooms(ctx context.Context, hotelID int64) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
