package submit_application

import (
	"errors"
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/careers"
	"github.com/m04kA/LifeCare-BookingService/internal/service/careers/models"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidInput       = "Invalid application data"
	msgSubmitted          = "Application submitted successfully"
)

type Handler struct {
	service CareersService
	logger  Logger
}

func NewHandler(service CareersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/careers/applications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /careers/applications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, careers.ErrInvalidInput):
			h.logger.Warn("POST /careers/applications - Invalid input: %v", err)
			handlers.RespondInvalidInput(w, err, msgInvalidInput)

		default:
			h.logger.Error("POST /careers/applications - Failed to submit application: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /careers/applications - Application submitted: id=%d, position=%s", result.ID, result.Position)
	handlers.RespondSuccess(w, http.StatusCreated, msgSubmitted, result)
}
