package calculate_price

import "github.com/m04kA/LifeCare-BookingService/internal/pricing"

// PriceEngine расчет стоимости по каталогу
type PriceEngine interface {
	Quote(service, duration string, days int) (*pricing.Quote, error)
}

// Metrics бизнес-метрики
type Metrics interface {
	IncPriceQuote(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
