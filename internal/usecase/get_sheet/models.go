package get_sheet

import "github.com/m04kA/SMC-TimeslotsService/internal/domain"

// Response модель ответа с текущим состоянием листа записи
// Определения слотов возвращаются рядом с днями, чтобы клиент мог
// отрисовать абсолютные метки времени
type Response struct {
	SlotDefs []domain.SlotDef
	Days     []DayView
}

// DayView один день листа: визуальные блоки вместо плоского списка слотов
type DayView struct {
	ID     int
	Name   string
	Blocks []domain.DisplayBlock
}
