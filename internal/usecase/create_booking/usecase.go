package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
	"github.com/m04kA/LifeCare-BookingService/internal/service/bookings/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/ptr"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TxManager
	engine      PriceEngine
	notifier    Notifier
	metrics     Metrics
	validator   *validation.Validator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TxManager,
	engine PriceEngine,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		engine:      engine,
		notifier:    notifier,
		metrics:     metrics,
		validator:   validation.New(),
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Цена считается до сохранения и фиксируется в бронировании.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.BookingResponse, error) {
	// 1. Очистка и валидация формы
	sanitize(req)

	startDate, err := uc.validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: service=%s, duration=%s, days=%d, start=%s",
		req.Service, req.Duration, req.Days, startDate.Format(domain.DateFormat))

	// 2. Расчет цены
	quote, err := uc.engine.Quote(req.Service, req.Duration, req.Days)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidService) || errors.Is(err, pricing.ErrInvalidDuration) {
			uc.logger.Warn("CreateBooking: pricing rejected request: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		if errors.Is(err, pricing.ErrPriceOutOfRange) {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, validation.FieldErr("days", msgDaysTooLarge))
		}
		uc.logger.Error("CreateBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}

	// 3. Сохранение
	booking := &domain.Booking{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Service:      req.Service,
		ServiceTitle: quote.ServiceTitle,
		Duration:     req.Duration,
		StartDate:    startDate,
		Days:         req.Days,
		Price:        quote.Price,
		Status:       domain.StatusPending,
	}
	if req.Notes != "" {
		booking.Notes = ptr.Ptr(req.Notes)
	}

	// Письма уходят только после фиксации транзакции
	var created *domain.Booking
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = uc.bookingRepo.Create(ctx, booking)
		return err
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to save booking: %v", err)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(created.Service)
	}

	uc.logger.Info("CreateBooking: booking id=%d created, price=%d", created.ID, created.Price)

	// 4. Уведомления (ошибки логируются внутри)
	uc.notifier.BookingConfirmation(ctx, created)
	uc.notifier.AdminBooking(ctx, created)

	return models.FromDomainBooking(created), nil
}
