package get_pricing_catalog

import (
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/pricing/catalog
// Публичный endpoint: клиент строит предварительный расчет по этим таблицам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.Catalog()
	h.logger.Info("GET /pricing/catalog - version=%s", catalog.Version)
	handlers.RespondSuccess(w, http.StatusOK, "", catalog)
}

// HandleServices GET /api/v1/pricing/services
func (h *Handler) HandleServices(w http.ResponseWriter, r *http.Request) {
	handlers.RespondSuccess(w, http.StatusOK, "", h.service.Services())
}

// HandleDurations GET /api/v1/pricing/durations
func (h *Handler) HandleDurations(w http.ResponseWriter, r *http.Request) {
	handlers.RespondSuccess(w, http.StatusOK, "", h.service.Durations())
}
