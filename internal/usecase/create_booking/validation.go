package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/LifeCare-BookingService/internal/service/bookings/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

const msgDaysTooLarge = "days is too large for the selected service"

// sanitize очищает строковые поля формы от <script> и пробелов по краям
func sanitize(req *Request) {
	req.Name = validation.Sanitize(req.Name)
	req.Phone = validation.Sanitize(req.Phone)
	req.Email = validation.NormalizeEmail(validation.Sanitize(req.Email))
	req.Address = validation.Sanitize(req.Address)
	req.Service = validation.Sanitize(req.Service)
	req.Duration = validation.Sanitize(req.Duration)
	req.StartDate = validation.Sanitize(req.StartDate)
	req.Notes = validation.Sanitize(req.Notes)
}

// validateRequest проверяет форму и возвращает дату начала
func (uc *UseCase) validateRequest(req *Request) (time.Time, error) {
	if err := uc.validator.Struct(req); err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if !uc.engine.HasService(req.Service) {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidInput,
			validation.FieldErr("service", "Please select a valid service"))
	}

	if !uc.engine.HasDuration(req.Duration) {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidInput,
			validation.FieldErr("duration", "Please select a valid duration"))
	}

	startDate, err := models.ParseDate(req.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidInput,
			validation.FieldErr("startDate", "Please provide a valid start date"))
	}

	return startDate, nil
}
