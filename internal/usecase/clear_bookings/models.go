package clear_bookings

// Request модель запроса на снятие всех бронирований участника
type Request struct {
	MemberName string // Имя участника
}
