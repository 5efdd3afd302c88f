package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/LifeCare-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/LifeCare-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidInput       = "Invalid booking data"
	msgCreated            = "Booking created successfully"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondInvalidInput(w, err, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: service=%s, error=%v", req.Service, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, price=%d", result.ID, result.Price)
	handlers.RespondSuccess(w, http.StatusCreated, msgCreated, result)
}
