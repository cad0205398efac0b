package catalogservice

import "github.com/m04kA/SMC-InventoryService/internal/domain"

// Room модель типа номера из каталога
type Room struct {
	ID        int64   `json:"id"`
	HotelID   int64   `json:"hotel_id"`
	Name      string  `json:"name"`
	Available int     `json:"available"` // общее число продаваемых номеров этого типа
	BaseRate  float64 `json:"base_rate"`
}

// HotelRoomsResponse ответ со списком номеров отеля
type HotelRoomsResponse struct {
	HotelID int64  `json:"hotel_id"`
	Rooms   []Room `json:"rooms"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain преобразует модель каталога в доменную
func (r Room) ToDomain() *domain.Room {
	return &domain.Room{
		ID:       r.ID,
		HotelID:  r.HotelID,
		Name:     r.Name,
		Capacity: r.Available,
		BaseRate: r.BaseRate,
	}
}
