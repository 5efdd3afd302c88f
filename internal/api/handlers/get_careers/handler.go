package get_careers

import (
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
)

type Handler struct {
	service CareersService
}

func NewHandler(service CareersService) *Handler {
	return &Handler{service: service}
}

// HandlePositions GET /api/v1/careers/positions
func (h *Handler) HandlePositions(w http.ResponseWriter, r *http.Request) {
	handlers.RespondSuccess(w, http.StatusOK, "", h.service.Positions())
}

// HandleOpenings GET /api/v1/careers/openings
func (h *Handler) HandleOpenings(w http.ResponseWriter, r *http.Request) {
	openings := h.service.Openings()
	handlers.RespondList(w, openings, len(openings), len(openings), 1, 1)
}
