package ping

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-TimeslotsService/internal/api/handlers"
)

// PingResponse тело ответа health-check эндпоинта
type PingResponse struct {
	Response string `json:"response"`
	Time     string `json:"time"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /api/ping
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, PingResponse{
		Response: "PONG!",
		Time:     time.Now().Format("2006/01/02 03:04:05 PM"),
	})
}
