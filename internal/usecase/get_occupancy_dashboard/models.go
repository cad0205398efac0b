package get_occupancy_dashboard

import (
	"github.com/m04kA/SMC-InventoryService/internal/availability"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// Request модель запроса сетки загрузки отеля за период [From, To)
type Request struct {
	HotelID int64
	RoomID  *int64 // опционально: только один тип номера
	From    types.Day
	To      types.Day
}

// Response модель ответа с сеткой загрузки
type Response struct {
	HotelID   int64
	Dashboard availability.Dashboard
	FullDays  int // число ячеек с уровнем FULL
}
