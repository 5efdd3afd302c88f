package create_booking

import (
	createBooking "github.com/m04kA/LifeCare-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Service   string `json:"service"`
	Duration  string `json:"duration"`
	StartDate string `json:"startDate"` // "2025-10-15" или ISO timestamp
	Days      int    `json:"days"`
	Notes     string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		Service:   r.Service,
		Duration:  r.Duration,
		StartDate: r.StartDate,
		Days:      r.Days,
		Notes:     r.Notes,
	}
}
