package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrInvalidRange возвращается, когда окно выборки пустое или перевёрнуто
	ErrInvalidRange = errors.New("booking.repository: invalid date range")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrUnknownStatus возвращается, когда в строке неизвестный статус бронирования
	ErrUnknownStatus = errors.New("booking.repository: unknown booking status")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
