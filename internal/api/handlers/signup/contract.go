package signup

import (
	"context"

	getSheet "github.com/m04kA/SMC-TimeslotsService/internal/usecase/get_sheet"
	signupUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/signup"
)

type SignupUseCase interface {
	Execute(ctx context.Context, req *signupUC.Request) (*signupUC.Response, error)
}

// GetSheetUseCase используется для возврата свежего листа после успешной записи
type GetSheetUseCase interface {
	Execute(ctx context.Context) (*getSheet.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
