package search_hotel_availability

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель отсутствует в каталоге
	ErrHotelNotFound = errors.New("search_hotel_availability: hotel not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_hotel_availability: invalid input data")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("search_hotel_availability: check-out must be after check-in")

	// ErrStayTooLong возвращается, когда проживание длиннее допустимого
	ErrStayTooLong = errors.New("search_hotel_availability: stay is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_hotel_availability: internal error")
)
