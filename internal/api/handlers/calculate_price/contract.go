package calculate_price

import (
	calculatePrice "github.com/m04kA/LifeCare-BookingService/internal/usecase/calculate_price"
)

type CalculatePriceUseCase interface {
	Execute(req *calculatePrice.Request) (*calculatePrice.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
