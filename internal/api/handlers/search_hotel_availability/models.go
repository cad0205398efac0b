package search_hotel_availability

import (
	"strconv"

	checkRoomAvailability "github.com/m04kA/SMC-InventoryService/internal/api/handlers/check_room_availability"
	searchHotelAvailability "github.com/m04kA/SMC-InventoryService/internal/usecase/search_hotel_availability"
	"github.com/m04kA/SMC-InventoryService/pkg/types"
)

// SearchResponse HTTP response model
type SearchResponse struct {
	HotelID        int64        `json:"hotelId"`
	CheckIn        types.Day    `json:"checkIn"`
	CheckOut       types.Day    `json:"checkOut"`
	Nights         int          `json:"nights"`
	UnitsNeeded    int          `json:"unitsNeeded"`
	Available      bool         `json:"available"`
	PooledCapacity int          `json:"pooledCapacity"`
	MinRemaining   int          `json:"minRemaining"`
	AvailableRooms int          `json:"availableRooms"`
	Rooms          []RoomResult `json:"rooms"`
}

// RoomResult доступность типа номера
type RoomResult struct {
	RoomID       int64                        `json:"roomId"`
	Name         string                       `json:"name"`
	Capacity     int                          `json:"capacity"`
	BaseRate     float64                      `json:"baseRate"`
	Available    bool                         `json:"available"`
	MinRemaining int                          `json:"minRemaining"`
	Quote        *checkRoomAvailability.Quote `json:"quote"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchHotelAvailability.Response) *SearchResponse {
	rooms := make([]RoomResult, len(resp.Rooms))
	for i, r := range resp.Rooms {
		rooms[i] = RoomResult{
			RoomID:       r.Room.ID,
			Name:         r.Room.Name,
			Capacity:     r.Room.Capacity,
			BaseRate:     r.Room.BaseRate,
			Available:    r.Available,
			MinRemaining: r.MinRemaining,
			Quote:        checkRoomAvailability.FromQuote(r.Quote),
		}
	}

	return &SearchResponse{
		HotelID:        resp.HotelID,
		CheckIn:        resp.CheckIn,
		CheckOut:       resp.CheckOut,
		Nights:         resp.Nights,
		UnitsNeeded:    resp.UnitsNeeded,
		Available:      resp.Pooled.Available,
		PooledCapacity: resp.PooledCapacity,
		MinRemaining:   resp.Pooled.MinRemaining(),
		AvailableRooms: resp.AvailableRooms,
		Rooms:          rooms,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(hotelID int64, checkInStr, checkOutStr, roomsStr string) (*searchHotelAvailability.Request, error) {
	checkIn, err := types.ParseDay(checkInStr)
	if err != nil {
		return nil, err
	}

	checkOut, err := types.ParseDay(checkOutStr)
	if err != nil {
		return nil, err
	}

	req := &searchHotelAvailability.Request{
		HotelID:  hotelID,
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
