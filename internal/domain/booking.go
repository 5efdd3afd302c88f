package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// BookingStatuses все допустимые статусы бронирования
var BookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking represents a home-care booking request
type Booking struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	Address string

	Service      string // ID услуги из каталога
	ServiceTitle string // Денормализованное название на момент бронирования
	Duration     string // Код тарифа: часов ухода в день
	StartDate    time.Time
	Days         int
	Notes        *string

	// Цена фиксируется при создании и не пересчитывается
	Price int64

	Status          BookingStatus
	StatusUpdatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking is not cancelled or completed
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// EndDate returns the last day of care
func (b *Booking) EndDate() time.Time {
	if b.Days <= 1 {
		return b.StartDate
	}
	return b.StartDate.AddDate(0, 0, b.Days-1)
}

// BookingsFilter фильтр списка бронирований (все поля опциональны)
type BookingsFilter struct {
	Status    *BookingStatus
	Service   *string
	StartDate *time.Time // start_date >= StartDate
	EndDate   *time.Time // start_date <= EndDate
}
