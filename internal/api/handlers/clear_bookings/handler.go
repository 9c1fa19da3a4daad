package clear_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimeslotsService/internal/api/handlers"
	sheetHandler "github.com/m04kA/SMC-TimeslotsService/internal/api/handlers/get_sheet"
	clearUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/clear_bookings"
)

const (
	msgInvalidRequestBody = "Invalid or malformed request body"
	msgInvalidInput       = "Invalid or missing request argument: memberName"
	msgNoBookingsFound    = "There were no bookings under this member's name"
)

type Handler struct {
	useCase      ClearBookingsUseCase
	sheetUseCase GetSheetUseCase
	logger       Logger
}

func NewHandler(useCase ClearBookingsUseCase, sheetUseCase GetSheetUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		sheetUseCase: sheetUseCase,
		logger:       logger,
	}
}

// Handle POST /api/clear
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clear - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, clearUC.ErrInvalidInput):
			h.logger.Warn("POST /clear - Invalid input")
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, clearUC.ErrNoBookingsFound):
			h.logger.Warn("POST /clear - Nothing to clear: member=%q", req.MemberName)
			handlers.RespondConflict(w, msgNoBookingsFound)

		default:
			h.logger.Error("POST /clear - Failed: member=%q, error=%v", req.MemberName, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// После успешной очистки возвращаем свежий лист
	sheet, err := h.sheetUseCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /clear - Cleared, but failed to reload sheet: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /clear - Success: member=%q", req.MemberName)
	handlers.RespondJSON(w, http.StatusOK, sheetHandler.FromUseCaseResponse(sheet))
}
