package signup

import (
	"context"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
)

// CalendarGrid интерфейс календарной сетки
type CalendarGrid interface {
	GetSlotSequence(ctx context.Context, dayIndex, startSlotIndex, length int) ([]domain.Slot, error)
	ApplyBooking(ctx context.Context, dayIndex, firstUseIndex, useCount, chargeCount int, memberName string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
