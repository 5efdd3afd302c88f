package get_review

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	GetPublic(ctx context.Context, id int64) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
