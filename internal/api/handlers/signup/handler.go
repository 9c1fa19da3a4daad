package signup

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TimeslotsService/internal/api/handlers"
	sheetHandler "github.com/m04kA/SMC-TimeslotsService/internal/api/handlers/get_sheet"
	signupUC "github.com/m04kA/SMC-TimeslotsService/internal/usecase/signup"
)

const (
	msgInvalidRequestBody = "Invalid or malformed request body"
	msgInvalidInput       = "Invalid or missing request arguments"
	msgNotEnoughTime      = "Not enough time in the given selection, please try another slot"
	msgSlotUnavailable    = "Unavailable slot in the given selection, please try another slot"
	msgNoTimeToCharge     = "Not enough time to charge, please try another slot"
)

type Handler struct {
	useCase      SignupUseCase
	sheetUseCase GetSheetUseCase
	logger       Logger
}

func NewHandler(useCase SignupUseCase, sheetUseCase GetSheetUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:      useCase,
		sheetUseCase: sheetUseCase,
		logger:       logger,
	}
}

// Handle POST /api/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	_, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, signupUC.ErrInvalidInput):
			h.logger.Warn("POST /signup - Invalid input: day=%d, slot=%d", req.DayIndex, req.SlotIndex)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, signupUC.ErrNotEnoughTime):
			h.logger.Warn("POST /signup - Not enough time: day=%d, slot=%d", req.DayIndex, req.SlotIndex)
			handlers.RespondConflict(w, msgNotEnoughTime)

		case errors.Is(err, signupUC.ErrSlotUnavailable):
			h.logger.Warn("POST /signup - Slot unavailable: day=%d, slot=%d", req.DayIndex, req.SlotIndex)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, signupUC.ErrNoTimeToCharge):
			h.logger.Warn("POST /signup - No time to charge: day=%d, slot=%d", req.DayIndex, req.SlotIndex)
			handlers.RespondConflict(w, msgNoTimeToCharge)

		default:
			// Сюда попадают ErrUnsupportedDuration и внутренние ошибки:
			// пользователю детали не раскрываются
			h.logger.Error("POST /signup - Failed: day=%d, slot=%d, error=%v", req.DayIndex, req.SlotIndex, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// После успешной записи возвращаем свежий лист
	sheet, err := h.sheetUseCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /signup - Booked, but failed to reload sheet: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /signup - Success: day=%d, slot=%d", req.DayIndex, req.SlotIndex)
	handlers.RespondJSON(w, http.StatusOK, sheetHandler.FromUseCaseResponse(sheet))
}
