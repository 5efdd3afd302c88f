package update_review_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
)

const (
	msgInvalidReviewID    = "Invalid review ID"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidStatus      = "Invalid status"
	msgNotFound           = "Review not found"
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

// Handle PUT /api/v1/reviews/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /reviews/{id}/status - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reviews/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.UpdateStatus(r.Context(), reviewID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			handlers.RespondInvalidInput(w, err, msgInvalidStatus)

		case errors.Is(err, reviews.ErrReviewNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /reviews/{id}/status - Failed to update review: review_id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reviews/{id}/status - review_id=%d, status=%s", reviewID, review.Status)
	handlers.RespondSuccess(w, http.StatusOK, "Review "+review.Status, review)
}
