package models

import (
	"time"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
)

// Request модели

// ListReviewsRequest параметры списка отзывов (строки из query).
// Status учитывается только в админском списке.
type ListReviewsRequest struct {
	Page    int
	Limit   int
	Status  string
	Service string
	Rating  string
	SortBy  string
}

// CreateReviewRequest новый отзыв
type CreateReviewRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=50"`
	Email   string `json:"email" validate:"required,email"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Content string `json:"content" validate:"required,max=2000"`
	Service string `json:"service"`
}

// UpdateStatusRequest модерация отзыва
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}

// ReplyRequest ответ администрации
type ReplyRequest struct {
	Reply string `json:"reply" validate:"required,max=2000"`
}

// Response модели

// AdminReply ответ администрации на отзыв
type AdminReply struct {
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// ReviewResponse данные отзыва. Email отдается только в админских ответах.
type ReviewResponse struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email,omitempty"`
	Rating     int         `json:"rating"`
	Content    string      `json:"content"`
	Service    string      `json:"service"`
	Status     string      `json:"status"`
	AdminReply *AdminReply `json:"adminReply,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// ReviewListResponse страница отзывов
type ReviewListResponse struct {
	Reviews     []ReviewResponse `json:"reviews"`
	Total       int              `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review, withEmail bool) *ReviewResponse {
	resp := &ReviewResponse{
		ID:        r.ID,
		Name:      r.Name,
		Rating:    r.Rating,
		Content:   r.Content,
		Service:   r.Service,
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if withEmail {
		resp.Email = r.Email
	}
	if r.Reply != nil {
		reply := &AdminReply{Content: *r.Reply}
		if r.RepliedAt != nil {
			reply.Date = *r.RepliedAt
		}
		resp.AdminReply = reply
	}
	return resp
}

// FromDomainReviewList конвертирует страницу отзывов
func FromDomainReviewList(reviews []*domain.Review, total int, page domain.Pagination, withEmail bool) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews:     make([]ReviewResponse, 0, len(reviews)),
		Total:       total,
		TotalPages:  page.TotalPages(total),
		CurrentPage: page.Page,
	}
	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, *FromDomainReview(r, withEmail))
	}
	return resp
}
