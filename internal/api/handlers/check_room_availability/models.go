package check_room_availability

import (
	"strconv"

	"github.com/m04kA/SMC-InventoryService/internal/availability"
	checkRoomAvailability "github.com/m04kA/SMC-InventoryService/internal/usecase/check_room_availability"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID       int64          `json:"roomId"`
	RoomFound    bool           `json:"roomFound"`
	CheckIn      types.Day      `json:"checkIn"`
	CheckOut     types.Day      `json:"checkOut"`
	Nights       int            `json:"nights"`
	UnitsNeeded  int            `json:"unitsNeeded"`
	Available    bool           `json:"available"`
	MinRemaining int            `json:"minRemaining"`
	PeakOccupied int            `json:"peakOccupied"`
	Days         []NightVerdict `json:"days"`
	Quote        *Quote         `json:"quote"`
}

// NightVerdict доступность одной ночи
type NightVerdict struct {
	Date      types.Day `json:"date"`
	Occupied  int       `json:"occupied"`
	Remaining int       `json:"remaining"`
	Available bool      `json:"available"`
}

// Quote стоимость проживания
type Quote struct {
	Total  float64      `json:"total"`
	Nights []NightPrice `json:"nights"`
}

// NightPrice цена одной ночи
type NightPrice struct {
	Date  types.Day `json:"date"`
	Price float64   `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkRoomAvailability.Response) *AvailabilityResponse {
	days := make([]NightVerdict, len(resp.Verdict.Days))
	for i, d := range resp.Verdict.Days {
		days[i] = NightVerdict{
			Date:      d.Day,
			Occupied:  d.Occupied,
			Remaining: d.Remaining,
			Available: d.Available,
		}
	}

	return &AvailabilityResponse{
		RoomID:       resp.Room.ID,
		RoomFound:    resp.RoomFound,
		CheckIn:      resp.Verdict.CheckIn,
		CheckOut:     resp.Verdict.CheckOut,
		Nights:       resp.Nights,
		UnitsNeeded:  resp.Verdict.UnitsNeeded,
		Available:    resp.Verdict.Available,
		MinRemaining: resp.MinRemaining,
		PeakOccupied: resp.PeakOccupied,
		Days:         days,
		Quote:        FromQuote(resp.Quote),
	}
}

// FromQuote конвертирует расчёт стоимости, nil остаётся nil
func FromQuote(q *availability.Quote) *Quote {
	if q == nil {
		return nil
	}

	nights := make([]NightPrice, len(q.Nights))
	for i, n := range q.Nights {
		nights[i] = NightPrice{Date: n.Day, Price: n.Price}
	}

	return &Quote{Total: q.Total, Nights: nights}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(roomID int64, checkInStr, checkOutStr, roomsStr string) (*checkRoomAvailability.Request, error) {
	checkIn, err := types.ParseDay(checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDay(checkOutStr)
	if err != nil {
		return nil, err
	}

	req := &checkRoomAvailability.Request{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
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
