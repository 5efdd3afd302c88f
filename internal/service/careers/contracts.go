package careers

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
)

// ApplicationRepository интерфейс репозитория откликов
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error)
}

// Notifier письма по откликам
type Notifier interface {
	ApplicationReceived(ctx context.Context, app *domain.JobApplication)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
