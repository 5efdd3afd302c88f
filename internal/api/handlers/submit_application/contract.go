package submit_application

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/service/careers/models"
)

type CareersService interface {
	Submit(ctx context.Context, req *models.ApplicationRequest) (*models.ApplicationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
