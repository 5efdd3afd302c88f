package reviews

import (
	"context"
	"time"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	List(ctx context.Context, filter domain.ReviewsFilter, sort domain.ReviewSort, page domain.Pagination) ([]*domain.Review, int, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus, at time.Time) (*domain.Review, error)
	SetReply(ctx context.Context, id int64, reply string, at time.Time) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

// ListCache кэш публичных списков отзывов
type ListCache interface {
	Get(ctx context.Context, key string, dst interface{}) (version int64, hit bool, err error)
	Set(ctx context.Context, version int64, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

// ServiceCatalog проверка услуги по каталогу
type ServiceCatalog interface {
	HasService(serviceID string) bool
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
