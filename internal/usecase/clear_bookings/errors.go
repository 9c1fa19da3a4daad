package clear_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при пустом имени участника
	ErrInvalidInput = errors.New("clear_bookings: invalid input data")

	// ErrNoBookingsFound возвращается, когда у участника нет ни одного слота
	ErrNoBookingsFound = errors.New("clear_bookings: no bookings under this member's name")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("clear_bookings: internal error")
)
