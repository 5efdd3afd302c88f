package delete_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
)

const (
	msgInvalidReviewID = "Invalid review ID"
	msgNotFound        = "Review not found"
	msgDeleted         = "Review deleted successfully"
)

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

// Handle DELETE /api/v1/reviews/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /reviews/{id} - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	if err := h.service.Delete(r.Context(), reviewID); err != nil {
		switch {
		case errors.Is(err, reviews.ErrReviewNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /reviews/{id} - Failed to delete review: review_id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reviews/{id} - Review deleted: review_id=%d", reviewID)
	handlers.RespondSuccess(w, http.StatusOK, msgDeleted, nil)
}
