package health

import (
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
)

// Response ответ проверки доступности
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Handle GET /api/health
func Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Message: "Server is running"})
}
