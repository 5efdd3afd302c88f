package subscribe_newsletter

import (
	"errors"
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/contact"
	"github.com/m04kA/LifeCare-BookingService/internal/service/contact/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidEmail       = "Please include a valid email"
	msgAlreadySubscribed  = "Email already subscribed to the newsletter."
	msgSubscribed         = "Thank you for subscribing to our newsletter!"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact/newsletter
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact/newsletter - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Subscribe(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalidInput):
			h.logger.Warn("POST /contact/newsletter - Invalid input: %v", err)
			handlers.RespondInvalidInput(w, err, msgInvalidEmail)

		case errors.Is(err, contact.ErrAlreadySubscribed):
			handlers.RespondBadRequest(w, msgAlreadySubscribed)

		default:
			h.logger.Error("POST /contact/newsletter - Failed to subscribe: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contact/newsletter - Subscribed: id=%d", result.ID)
	handlers.RespondSuccess(w, http.StatusCreated, msgSubscribed, result)
}
