package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidInput       = "Invalid review data"
	msgCreated            = "Thank you for your review! It has been submitted for approval."
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

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: %v", err)
			handlers.RespondInvalidInput(w, err, msgInvalidInput)

		default:
			h.logger.Error("POST /reviews - Failed to create review: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review submitted: review_id=%d", review.ID)
	handlers.RespondSuccess(w, http.StatusCreated, msgCreated, review)
}
