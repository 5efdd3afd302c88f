package subscribe_newsletter

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/service/contact/models"
)

type ContactService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscriberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
