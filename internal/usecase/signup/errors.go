package signup

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (индексы вне диапазона, пустое или слишком длинное имя)
	ErrInvalidInput = errors.New("signup: invalid input data")

	// ErrNotEnoughTime возвращается, когда в выбранном дне не хватает слотов
	// под запрошенную длительность использования
	ErrNotEnoughTime = errors.New("signup: not enough time in the given selection")

	// ErrSlotUnavailable возвращается, когда слот в выбранном диапазоне
	// занят, на зарядке или приходится на пиковые часы
	ErrSlotUnavailable = errors.New("signup: unavailable slot in the given selection")

	// ErrNoTimeToCharge возвращается, когда слоты под обязательную зарядку
	// после использования заняты
	ErrNoTimeToCharge = errors.New("signup: not enough time to charge")

	// ErrUnsupportedDuration возвращается при неизвестном значении длительности
	// Это системная ошибка: клиентский слой передаёт только значения из
	// закрытого набора, посторонние значения означают дефект, а не ошибку юзера
	ErrUnsupportedDuration = errors.New("signup: unsupported duration value")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("signup: internal error")
)
