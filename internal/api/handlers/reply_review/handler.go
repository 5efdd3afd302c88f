package reply_review

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
	msgInvalidReply       = "Reply content is required"
	msgNotFound           = "Review not found"
	msgReplied            = "Reply added successfully"
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

// Handle POST /api/v1/reviews/{id}/reply
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reviewID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("POST /reviews/{id}/reply - Invalid review ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReviewID)
		return
	}

	var req models.ReplyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews/{id}/reply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Reply(r.Context(), reviewID, &req)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			handlers.RespondInvalidInput(w, err, msgInvalidReply)

		case errors.Is(err, reviews.ErrReviewNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /reviews/{id}/reply - Failed to add reply: review_id=%d, error=%v", reviewID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews/{id}/reply - Reply added: review_id=%d", reviewID)
	handlers.RespondSuccess(w, http.StatusOK, msgReplied, review)
}
