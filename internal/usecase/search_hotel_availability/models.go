package search_hotel_availability

import (
	"github.com/m04kA/SMC-InventoryService/internal/availability"
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// Request модель запроса поиска свободных номеров отеля
type Request struct {
	HotelID        int64
	CheckIn        types.Day
	CheckOut       types.Day
	RoomsRequested int // 0 трактуется как 1
}

// RoomResult доступность одного типа номера
type RoomResult struct {
	Room         *domain.Room
	Available    bool
	MinRemaining int
	Quote        *availability.Quote // nil, если номер недоступен
}

// Response модель ответа: по каждому типу номера и по отелю в целом
type Response struct {
	HotelID        int64
	CheckIn        types.Day
	CheckOut       types.Day
	Nights         int
	UnitsNeeded    int
	Rooms          []RoomResult
	AvailableRooms int

	// Сводная доступность по всем номерам отеля
	PooledCapacity int
	Pooled         availability.RangeVerdict
}
