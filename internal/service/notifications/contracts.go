package notifications

import (
	"context"

	"github.com/m04kA/LifeCare-BookingService/internal/integrations/mailer"
)

// Sender отправитель писем (SMTP клиент или LogSender)
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Metrics счетчики отправленных писем
type Metrics interface {
	IncEmail(kind string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
