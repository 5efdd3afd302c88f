package list_reviews

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
)

const msgInvalidParams = "Invalid query parameters"

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reviews
// Query params: service, rating, page, limit, sortBy. Только одобренные отзывы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "GET /reviews", h.service.ListPublic)
}

// HandleAdmin GET /api/v1/admin/reviews
// Дополнительно принимает status
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "GET /admin/reviews", h.service.ListAll)
}

func (h *Handler) list(
	w http.ResponseWriter,
	r *http.Request,
	route string,
	fetch func(ctx context.Context, req *models.ListReviewsRequest) (*models.ReviewListResponse, error),
) {
	result, err := fetch(r.Context(), ToServiceRequest(r))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("%s - Invalid parameters: %v", route, err)
			handlers.RespondInvalidInput(w, err, msgInvalidParams)

		default:
			h.logger.Error("%s - Failed to list reviews: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Reviews retrieved: count=%d, total=%d", route, len(result.Reviews), result.Total)
	handlers.RespondList(w, result.Reviews, len(result.Reviews), result.Total, result.TotalPages, result.CurrentPage)
}
