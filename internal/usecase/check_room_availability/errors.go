package check_room_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_room_availability: invalid input data")

	// ErrInvalidRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidRange = errors.New("check_room_availability: check-out must be after check-in")

	// ErrStayTooLong возвращается, когда проживание длиннее допустимого
	ErrStayTooLong = errors.New("check_room_availability: stay is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_room_availability: internal error")
)
