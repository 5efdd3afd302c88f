package models

import (
	"time"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
)

// Request модели

// ContactRequest форма обратной связи
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=100"`
	Message string `json:"message" validate:"required,max=5000"`
}

// SubscribeRequest подписка на рассылку
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Response модели

// ContactResponse сохраненное обращение
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubscriberResponse оформленная подписка
type SubscriberResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainMessage конвертирует domain модель в DTO
func FromDomainMessage(m *domain.ContactMessage) *ContactResponse {
	return &ContactResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainSubscriber конвертирует domain модель в DTO
func FromDomainSubscriber(s *domain.Subscriber) *SubscriberResponse {
	return &SubscriberResponse{
		ID:        s.ID,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
	}
}
