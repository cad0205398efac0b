package get_room_calendar

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	getRoomCalendar "github.com/m04kA/SMC-InventoryService/internal/usecase/get_room_calendar"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	RoomID        int64           `json:"roomId"`
	RoomFound     bool            `json:"roomFound"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	UnitsNeeded   int             `json:"unitsNeeded"`
	AvailableDays int             `json:"availableDays"`
	Weeks         [][]CalendarDay `json:"weeks"`
}

// CalendarDay ячейка сетки
type CalendarDay struct {
	Date           types.Day `json:"date"`
	DayNumber      int       `json:"dayNumber"`
	IsCurrentMonth bool      `json:"isCurrentMonth"`
	IsAvailable    bool      `json:"isAvailable"`
	Price          *float64  `json:"price"`
	IsSelected     bool      `json:"isSelected"`
	IsPast         bool      `json:"isPast"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomCalendar.Response) *CalendarResponse {
	weeks := make([][]CalendarDay, len(resp.Calendar.Weeks))
	for i, week := range resp.Calendar.Weeks {
		weeks[i] = make([]CalendarDay, len(week))
		for j, d := range week {
			weeks[i][j] = fromDomainDay(d)
		}
	}

	return &CalendarResponse{
		RoomID:        resp.Room.ID,
		RoomFound:     resp.RoomFound,
		Year:          resp.Calendar.Year,
		Month:         int(resp.Calendar.Month),
		UnitsNeeded:   resp.UnitsNeeded,
		AvailableDays: resp.Calendar.AvailableDays(),
		Weeks:         weeks,
	}
}

func fromDomainDay(d domain.CalendarDay) CalendarDay {
	return CalendarDay{
		Date:           d.Date,
		DayNumber:      d.DayNumber,
		IsCurrentMonth: d.IsCurrentMonth,
		IsAvailable:    d.IsAvailable,
		Price:          d.Price,
		IsSelected:     d.IsSelected,
		IsPast:         d.IsPast,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустые параметры означают значения по умолчанию
func ToUseCaseRequest(roomID int64, yearStr, monthStr, selectedStr, roomsStr string) (*getRoomCalendar.Request, error) {
	req := &getRoomCalendar.Request{RoomID: roomID}

	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			return nil, err
		}
		req.Year = year
	}

	if monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			return nil, err
		}
		req.Month = time.Month(month)
	}

	if selectedStr != "" {
		selected, err := types.ParseDay(selectedStr)
		if err != nil {
			return nil, err
		}
		req.Selected = &selected
	}

	if roomsStr != "" {
		rooms, err := strconv.Atoi(roomsStr)
		if err != nil {
			return nil, err
		}
		req.RoomsRequested = rooms
	}

	return req, nil
}
