package get_occupancy_dashboard

import (
	"strconv"

	"github.com/m04kA/SMC-InventoryService/internal/domain"
	getOccupancyDashboard "github.com/m04kA/SMC-InventoryService/internal/usecase/get_occupancy_dashboard"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// DashboardResponse HTTP response model
type DashboardResponse struct {
	HotelID  int64     `json:"hotelId"`
	From     types.Day `json:"from"`
	To       types.Day `json:"to"`
	FullDays int       `json:"fullDays"`
	Rooms    []RoomRow `json:"rooms"`
}

// RoomRow строка сетки по типу номера
type RoomRow struct {
	RoomID   int64  `json:"roomId"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Days     []Cell `json:"days"`
}

// Cell загрузка номера за день
type Cell struct {
	Date        types.Day             `json:"date"`
	UnitsBooked int                   `json:"unitsBooked"`
	Level       domain.OccupancyLevel `json:"level"`
	BookingIDs  []int64               `json:"bookingIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOccupancyDashboard.Response) *DashboardResponse {
	rows := make([]RoomRow, len(resp.Dashboard.Rows))
	for i, row := range resp.Dashboard.Rows {
		cells := make([]Cell, len(row.Cells))
		for j, c := range row.Cells {
			ids := make([]int64, len(c.Bookings))
			for k, b := range c.Bookings {
				ids[k] = b.ID
			}
			cells[j] = Cell{
				Date:        c.Day,
				UnitsBooked: c.UnitsBooked,
				Level:       c.Level,
				BookingIDs:  ids,
			}
		}
		rows[i] = RoomRow{
			RoomID:   row.Room.ID,
			Name:     row.Room.Name,
			Capacity: row.Room.Capacity,
			Days:     cells,
		}
	}

	return &DashboardResponse{
		HotelID:  resp.HotelID,
		From:     resp.Dashboard.From,
		To:       resp.Dashboard.To,
		FullDays: resp.FullDays,
		Rooms:    rows,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(hotelID int64, fromStr, toStr, roomIDStr string) (*getOccupancyDashboard.Request, error) {
	from, err := types.ParseDay(fromStr)
	if err != nil {
		return nil, err
	}

	to, err := types.ParseDay(toStr)
	if err != nil {
		return nil, err
	}

	req := &getOccupancyDashboard.Request{
		HotelID: hotelID,
		From:    from,
		To:      to,
	}

	if roomIDStr != "" {
		roomID, err := strconv.ParseInt(roomIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomID = &roomID
	}

	return req, nil
}
