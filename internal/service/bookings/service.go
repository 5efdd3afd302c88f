package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/LifeCare-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/LifeCare-BookingService/internal/service/bookings/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/ptr"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	notifier     Notifier
	validator    *validation.Validator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		notifier:     notifier,
		validator:    validation.New(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает страницу бронирований с фильтрацией по статусу, услуге и периоду начала
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, err
	}

	page := domain.NewPagination(req.Page, req.Limit)

	bookings, total, err := s.bookingRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings (page=%d, limit=%d)", len(bookings), total, page.Page, page.Limit)
	return models.FromDomainBookingList(bookings, total, page), nil
}

// UpdateStatus меняет статус бронирования и уведомляет клиента
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	status := domain.BookingStatus(req.Status)

	booking, err := s.bookingRepo.UpdateStatus(ctx, id, status, s.timeProvider.Now())
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", id, status)
	s.notifier.BookingStatusUpdate(ctx, booking)

	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}

func toDomainFilter(req *models.ListBookingsRequest) (domain.BookingsFilter, error) {
	var filter domain.BookingsFilter

	if req.Status != "" {
		status := domain.BookingStatus(req.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("%w: %w", ErrInvalidInput,
				validation.FieldErr("status", "status must be one of: pending confirmed cancelled completed"))
		}
		filter.Status = &status
	}

	if req.Service != "" {
		filter.Service = ptr.Ptr(req.Service)
	}

	if req.StartDate != "" {
		t, err := models.ParseDate(req.StartDate)
		if err != nil {
			return filter, fmt.Errorf("%w: %w", ErrInvalidInput, validation.FieldErr("startDate", "Please provide a valid start date"))
		}
		filter.StartDate = &t
	}

	if req.EndDate != "" {
		t, err := models.ParseDate(req.EndDate)
		if err != nil {
			return filter, fmt.Errorf("%w: %w", ErrInvalidInput, validation.FieldErr("endDate", "Please provide a valid end date"))
		}
		filter.EndDate = &t
	}

	return filter, nil
}
