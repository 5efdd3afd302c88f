package domain

import "time"

// ReviewStatus represents the moderation state of a review
type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
	ReviewRejected ReviewStatus = "rejected"
)

// IsValid returns true if the status is one of the known moderation states
func (s ReviewStatus) IsValid() bool {
	return s == ReviewPending || s == ReviewApproved || s == ReviewRejected
}

// GeneralReviewService отзыв не о конкретной услуге
const GeneralReviewService = "general"

// Review represents a customer testimonial
type Review struct {
	ID      int64
	Name    string
	Email   string
	Rating  int
	Content string
	Service string
	Status  ReviewStatus

	Reply     *string
	RepliedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPublic returns true if the review can be shown on the website
func (r *Review) IsPublic() bool {
	return r.Status == ReviewApproved
}

// ReviewSortField поле сортировки отзывов
type ReviewSortField string

const (
	ReviewSortCreatedAt ReviewSortField = "created_at"
	ReviewSortRating    ReviewSortField = "rating"
)

// ReviewSort порядок сортировки отзывов
type ReviewSort struct {
	Field ReviewSortField
	Desc  bool
}

// DefaultReviewSort новые отзывы первыми
var DefaultReviewSort = ReviewSort{Field: ReviewSortCreatedAt, Desc: true}

// ParseReviewSort разбирает параметр sortBy вида "-createdAt", "rating".
// Пустая строка дает сортировку по умолчанию, неизвестное поле - ok=false.
func ParseReviewSort(s string) (ReviewSort, bool) {
	if s == "" {
		return DefaultReviewSort, true
	}

	desc := false
	if s[0] == '-' {
		desc = true
		s = s[1:]
	}

	switch s {
	case "createdAt":
		return ReviewSort{Field: ReviewSortCreatedAt, Desc: desc}, true
	case "rating":
		return ReviewSort{Field: ReviewSortRating, Desc: desc}, true
	default:
		return ReviewSort{}, false
	}
}

// String возвращает параметр в формате запроса (для ключей кэша)
func (s ReviewSort) String() string {
	name := "createdAt"
	if s.Field == ReviewSortRating {
		name = "rating"
	}
	if s.Desc {
		return "-" + name
	}
	return name
}

// ReviewsFilter фильтр списка отзывов (все поля опциональны)
type ReviewsFilter struct {
	Status  *ReviewStatus
	Service *string
	Rating  *int
}
