package signup

// Request модель запроса на запись участника
type Request struct {
	DayIndex   int    // Индекс дня недели (0 = воскресенье)
	SlotIndex  int    // Индекс первого слота использования внутри дня
	MemberName string // Имя участника
	Duration   string // Длительность использования: "1/2" или "1" (часы)
}

// Response модель ответа об успешной записи
type Response struct {
	DayIndex    int    // Индекс дня недели
	SlotIndex   int    // Индекс первого слота использования
	MemberName  string // Имя участника
	UseSlots    int    // Количество слотов использования
	ChargeSlots int    // Количество слотов зарядки (без учёта обрезки по концу дня)
}
