package get_room_calendar

import (
	"time"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// Request модель запроса календаря номера на месяц
type Request struct {
	RoomID         int64
	Year           int        // вместе с Month: 0 означает текущий месяц
	Month          time.Month
	Selected       *types.Day // выбранная пользователем дата, может отсутствовать
	RoomsRequested int        // 0 трактуется как 1
}

// Response модель ответа с сеткой месяца
type Response struct {
	Room        *domain.Room
	RoomFound   bool // false: номера нет в каталоге, календарь отрисован недоступным
	UnitsNeeded int
	Calendar    domain.CalendarMonth
}
