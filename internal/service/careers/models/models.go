package models

import (
	"time"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
)

// Request модели

// ApplicationRequest отклик на вакансию. Файл резюме не принимается, только ссылка.
type ApplicationRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=50"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,len=10,digits"`
	Address      string `json:"address" validate:"required"`
	Position     string `json:"position" validate:"required"`
	Experience   string `json:"experience" validate:"required"`
	AadharNumber string `json:"aadharNumber" validate:"required,len=12,digits"`
	Message      string `json:"message" validate:"max=5000"`
	ResumeURL    string `json:"resumeUrl" validate:"omitempty,url"`
}

// Response модели

// PositionResponse позиция для формы отклика
type PositionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// JobOpeningResponse открытая вакансия
type JobOpeningResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	PostedDate   time.Time `json:"postedDate"`
}

// ApplicationResponse принятый отклик
type ApplicationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Position    string    `json:"position"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// FromDomainPositions конвертирует список позиций
func FromDomainPositions(positions []domain.Position) []PositionResponse {
	out := make([]PositionResponse, 0, len(positions))
	for _, p := range positions {
		out = append(out, PositionResponse{Value: p.Value, Label: p.Label})
	}
	return out
}

// FromDomainOpenings конвертирует список вакансий
func FromDomainOpenings(openings []domain.JobOpening) []JobOpeningResponse {
	out := make([]JobOpeningResponse, 0, len(openings))
	for _, o := range openings {
		out = append(out, JobOpeningResponse{
			ID:           o.ID,
			Title:        o.Title,
			Description:  o.Description,
			Requirements: append([]string(nil), o.Requirements...),
			Location:     o.Location,
			Type:         o.Type,
			PostedDate:   o.PostedDate,
		})
	}
	return out
}

// FromDomainApplication конвертирует отклик. Номер Aadhaar в ответ не попадает.
func FromDomainApplication(a *domain.JobApplication) *ApplicationResponse {
	return &ApplicationResponse{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		Position:    a.Position,
		Status:      string(a.Status),
		SubmittedAt: a.CreatedAt,
	}
}
