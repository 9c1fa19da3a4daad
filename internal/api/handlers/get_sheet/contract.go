package get_sheet

import (
	"context"

	getSheet "github.com/m04kA/SMC-TimeslotsService/internal/usecase/get_sheet"
)

type GetSheetUseCase interface {
	Execute(ctx context.Context) (*getSheet.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
