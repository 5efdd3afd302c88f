package calculate_price

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

const (
	resultOK      = "ok"
	resultInvalid = "invalid"

	msgDaysTooLarge = "days is too large for the selected service"
)

var hundred = decimal.NewFromInt(100)

// UseCase предварительный расчет цены (тот же движок, что и при создании бронирования)
type UseCase struct {
	engine    PriceEngine
	metrics   Metrics
	validator *validation.Validator
	logger    Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(engine PriceEngine, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		engine:    engine,
		metrics:   metrics,
		validator: validation.New(),
		logger:    logger,
	}
}

// Execute считает цену без сохранения
func (uc *UseCase) Execute(req *Request) (*Response, error) {
	req.Service = validation.Sanitize(req.Service)
	req.Duration = validation.Sanitize(req.Duration)

	if err := uc.validator.Struct(req); err != nil {
		uc.observe(resultInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	quote, err := uc.engine.Quote(req.Service, req.Duration, req.Days)
	if err != nil {
		uc.observe(resultInvalid)
		switch {
		case errors.Is(err, pricing.ErrInvalidService):
			uc.logger.Warn("CalculatePrice: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownService, err)
		case errors.Is(err, pricing.ErrInvalidDuration):
			uc.logger.Warn("CalculatePrice: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrUnknownDuration, err)
		case errors.Is(err, pricing.ErrPriceOutOfRange):
			uc.logger.Warn("CalculatePrice: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, validation.FieldErr("days", msgDaysTooLarge))
		default:
			uc.logger.Error("CalculatePrice: engine error: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.observe(resultOK)

	return &Response{
		Service:  quote.Service,
		Duration: quote.Duration,
		Days:     quote.Days,
		Price:    quote.Price,
		Breakdown: Breakdown{
			ServiceTitle:    quote.ServiceTitle,
			BasePrice:       quote.BasePrice,
			Multiplier:      quote.Multiplier.String(),
			Subtotal:        quote.Subtotal.String(),
			DiscountFactor:  quote.DiscountFactor.String(),
			DiscountPercent: hundred.Sub(quote.DiscountFactor.Mul(hundred)).Round(0).IntPart(),
		},
	}, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.IncPriceQuote(result)
	}
}
