package careers

import (
	"context"
	"fmt"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/internal/service/careers/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/ptr"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

// Service сервис раздела карьеры
type Service struct {
	repo      ApplicationRepository
	notifier  Notifier
	validator *validation.Validator
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo ApplicationRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		repo:      repo,
		notifier:  notifier,
		validator: validation.New(),
		logger:    logger,
	}
}

// Positions возвращает позиции для формы отклика
func (s *Service) Positions() []models.PositionResponse {
	return models.FromDomainPositions(domain.Positions)
}

// Openings возвращает открытые вакансии
func (s *Service) Openings() []models.JobOpeningResponse {
	return models.FromDomainOpenings(domain.JobOpenings)
}

// Submit сохраняет отклик со статусом pending
func (s *Service) Submit(ctx context.Context, req *models.ApplicationRequest) (*models.ApplicationResponse, error) {
	req.Name = validation.Sanitize(req.Name)
	req.Email = validation.NormalizeEmail(validation.Sanitize(req.Email))
	req.Phone = validation.Sanitize(req.Phone)
	req.Address = validation.Sanitize(req.Address)
	req.Position = validation.Sanitize(req.Position)
	req.Experience = validation.Sanitize(req.Experience)
	req.AadharNumber = validation.Sanitize(req.AadharNumber)
	req.Message = validation.Sanitize(req.Message)
	req.ResumeURL = validation.Sanitize(req.ResumeURL)

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if !domain.IsKnownPosition(req.Position) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput,
			validation.FieldErr("position", "Please select a valid position"))
	}

	app := &domain.JobApplication{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Position:     req.Position,
		Experience:   req.Experience,
		AadharNumber: req.AadharNumber,
		Status:       domain.ApplicationPending,
	}
	if req.Message != "" {
		app.Message = ptr.Ptr(req.Message)
	}
	if req.ResumeURL != "" {
		app.ResumeURL = ptr.Ptr(req.ResumeURL)
	}

	created, err := s.repo.Create(ctx, app)
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: application id=%d for position %s", created.ID, created.Position)
	s.notifier.ApplicationReceived(ctx, created)

	return models.FromDomainApplication(created), nil
}
