package create_booking

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TxManager выполняет функцию внутри транзакции
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// PriceEngine расчет стоимости по каталогу
type PriceEngine interface {
	Quote(service, duration string, days int) (*pricing.Quote, error)
	HasService(serviceID string) bool
	HasDuration(code string) bool
}

// Notifier письма о новой заявке. Ошибки отправки не возвращаются.
type Notifier interface {
	BookingConfirmation(ctx context.Context, b *domain.Booking)
	AdminBooking(ctx context.Context, b *domain.Booking)
}

// Metrics бизнес-метрики
type Metrics interface {
	IncBookingCreated(service string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
