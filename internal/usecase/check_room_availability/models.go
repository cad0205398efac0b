package check_room_availability

import (
	"github.com/m04kA/SMC-InventoryService/internal/availability"
	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// Request модель запроса проверки доступности номера на период
type Request struct {
	RoomID         int64
	CheckIn        types.Day
	CheckOut       types.Day
	RoomsRequested int // 0 трактуется как 1
}

// Response модель ответа с вердиктом по каждой ночи
type Response struct {
	Room         *domain.Room
	RoomFound    bool
	Nights       int
	Verdict      availability.RangeVerdict
	MinRemaining int
	PeakOccupied int                 // максимум занятых номеров за одну ночь
	Quote        *availability.Quote // nil, если период недоступен
}
