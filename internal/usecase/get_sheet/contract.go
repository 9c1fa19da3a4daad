package get_sheet

import (
	"context"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
)

// CalendarGrid интерфейс календарной сетки
type CalendarGrid interface {
	SlotDefs() []domain.SlotDef
	GetSlotsByDay(ctx context.Context) ([]domain.DaySlots, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
