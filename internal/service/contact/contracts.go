package contact

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
)

// ContactRepository интерфейс репозитория обращений и подписок
type ContactRepository interface {
	CreateMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	CreateSubscriber(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error)
}

// Notifier письма по обращениям и подписке
type Notifier interface {
	ContactSubmission(ctx context.Context, msg *domain.ContactMessage)
	NewsletterConfirmation(ctx context.Context, email string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
