package get_sheet

import (
	"net/http"

	"github.com/m04kA/SMC-TimeslotsService/internal/api/handlers"
)

type Handler struct {
	useCase GetSheetUseCase
	logger  Logger
}

func NewHandler(useCase GetSheetUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/sheet
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /sheet - Failed to build sheet: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
