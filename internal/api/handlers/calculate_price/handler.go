package calculate_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	calculatePrice "github.com/m04kA/LifeCare-BookingService/internal/usecase/calculate_price"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Please provide service, duration, and days"
	msgInvalidService     = "Invalid service type"
	msgInvalidDuration    = "Invalid duration"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/calculate-price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req calculatePrice.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/calculate-price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(&req)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInput):
			h.logger.Warn("POST /bookings/calculate-price - Invalid input: %v", err)
			handlers.RespondInvalidInput(w, err, msgMissingFields)

		case errors.Is(err, calculatePrice.ErrUnknownService):
			h.logger.Warn("POST /bookings/calculate-price - Unknown service: %s", req.Service)
			handlers.RespondBadRequest(w, msgInvalidService)

		case errors.Is(err, calculatePrice.ErrUnknownDuration):
			h.logger.Warn("POST /bookings/calculate-price - Unknown duration: %s", req.Duration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("POST /bookings/calculate-price - Failed to calculate price: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/calculate-price - service=%s, duration=%s, days=%d, price=%d",
		result.Service, result.Duration, result.Days, result.Price)
	handlers.RespondSuccess(w, http.StatusOK, "", result)
}
