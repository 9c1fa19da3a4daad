package clear_bookings

import (
	"context"

	clearUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/clear_bookings"
	getSheet "github.com/m04kA/SMC-TimeslotsService/internal/usecase/get_sheet"
)

type ClearBookingsUseCase interface {
	Execute(ctx context.Context, req *clearUC.Request) error
}

// GetSheetUseCase используется для возврата свежего листа после очистки
type GetSheetUseCase interface {
	Execute(ctx context.Context) (*getSheet.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
