package catalogservice

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер отсутствует в каталоге
	ErrRoomNotFound = errors.New("catalogservice client: room not found")

	// ErrHotelNotFound возвращается, когда отель отсутствует в каталоге
	ErrHotelNotFound = errors.New("catalogservice client: hotel not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
