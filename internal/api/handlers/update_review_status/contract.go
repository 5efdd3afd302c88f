package update_review_status

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
