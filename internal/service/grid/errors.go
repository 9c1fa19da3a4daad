package grid

import "errors"

var (
	// ErrGridCorrupted возвращается, когда количество сохранённых слотов
	// не совпадает с ожидаемым размером сетки. Безопасного автоматического
	// восстановления нет - сервис не должен обслуживать запросы
	ErrGridCorrupted = errors.New("grid: stored slot count does not match the expected grid size")

	// ErrInvalidDay возвращается при индексе дня вне диапазона недели
	ErrInvalidDay = errors.New("grid: day index out of range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("grid: internal error")
)
