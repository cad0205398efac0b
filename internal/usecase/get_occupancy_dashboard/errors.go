package get_occupancy_dashboard

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель отсутствует в каталоге
	ErrHotelNotFound = errors.New("get_occupancy_dashboard: hotel not found")

	// ErrRoomNotFound возвращается, когда номер из фильтра не принадлежит отелю
	ErrRoomNotFound = errors.New("get_occupancy_dashboard: room not found in hotel")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_occupancy_dashboard: invalid input data")

	// ErrWindowTooLong возвращается, когда окно дашборда длиннее допустимого
	ErrWindowTooLong = errors.New("get_occupancy_dashboard: window is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_occupancy_dashboard: internal error")
)
