package models

import (
	"time"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
)

// Request модели

// ListBookingsRequest параметры списка бронирований (строки из query)
type ListBookingsRequest struct {
	Page      int
	Limit     int
	Status    string
	Service   string
	StartDate string
	EndDate   string
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	Address         string     `json:"address"`
	Service         string     `json:"service"`
	ServiceTitle    string     `json:"serviceTitle"`
	Duration        string     `json:"duration"`
	StartDate       string     `json:"startDate"` // "2025-10-15"
	EndDate         string     `json:"endDate"`
	Days            int        `json:"days"`
	Notes           *string    `json:"notes,omitempty"`
	Price           int64      `json:"price"`
	Status          string     `json:"status"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Bookings    []BookingResponse `json:"bookings"`
	Total       int               `json:"total"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		Name:            b.Name,
		Phone:           b.Phone,
		Email:           b.Email,
		Address:         b.Address,
		Service:         b.Service,
		ServiceTitle:    b.ServiceTitle,
		Duration:        b.Duration,
		StartDate:       b.StartDate.Format(domain.DateFormat),
		EndDate:         b.EndDate().Format(domain.DateFormat),
		Days:            b.Days,
		Notes:           b.Notes,
		Price:           b.Price,
		Status:          string(b.Status),
		StatusUpdatedAt: b.StatusUpdatedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует страницу бронирований
func FromDomainBookingList(bookings []*domain.Booking, total int, page domain.Pagination) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings:    make([]BookingResponse, 0, len(bookings)),
		Total:       total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Page,
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ParseDate разбирает дату в формате YYYY-MM-DD или RFC 3339
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(domain.DateFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
