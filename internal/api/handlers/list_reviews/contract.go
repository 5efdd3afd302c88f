package list_reviews

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	ListPublic(ctx context.Context, req *models.ListReviewsRequest) (*models.ReviewListResponse, error)
	ListAll(ctx context.Context, req *models.ListReviewsRequest) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
