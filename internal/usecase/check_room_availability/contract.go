package check_room_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedByRoom(ctx context.Context, roomID int64, from, to types.Day) ([]*domain.Booking, error)
}

// CatalogClient интерфейс клиента каталога номеров
type CatalogClient interface {
	GetRoom(ctx context.Context, roomID int64) (*domain.Room, error)
}

// Metrics интерфейс учета проверок доступности
type Metrics interface {
	RecordAvailabilityCheck(scope string, available bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
