package grid

import (
	"context"

	"github.com/m04kA/SMC-TimeslotsService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Count(ctx context.Context, weekIdx int) (int, error)
	LoadAll(ctx context.Context, weekIdx int) ([]domain.Slot, error)
	GetRange(ctx context.Context, weekIdx, dayIdx, fromIdx, toIdx int) ([]domain.Slot, error)
	UpdateRange(ctx context.Context, weekIdx, dayIdx, fromIdx, toIdx int, memberName *string, chargeTime *bool) (int64, error)
	ClearMember(ctx context.Context, weekIdx int, memberName string) (int64, error)
	BulkInsert(ctx context.Context, slots []domain.Slot) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
