package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	contactRepo "github.com/m04kA/LifeCare-BookingService/internal/infra/storage/contact"
	"github.com/m04kA/LifeCare-BookingService/internal/service/contact/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

// Service сервис обратной связи и рассылки
type Service struct {
	repo      ContactRepository
	notifier  Notifier
	validator *validation.Validator
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo ContactRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		repo:      repo,
		notifier:  notifier,
		validator: validation.New(),
		logger:    logger,
	}
}

// Submit сохраняет обращение и уведомляет администратора
func (s *Service) Submit(ctx context.Context, req *models.ContactRequest) (*models.ContactResponse, error) {
	req.Name = validation.Sanitize(req.Name)
	req.Email = validation.NormalizeEmail(validation.Sanitize(req.Email))
	req.Subject = validation.Sanitize(req.Subject)
	req.Message = validation.Sanitize(req.Message)

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msg, err := s.repo.CreateMessage(ctx, &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  domain.ContactStatusNew,
	})
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: contact message id=%d saved", msg.ID)
	s.notifier.ContactSubmission(ctx, msg)

	return models.FromDomainMessage(msg), nil
}

// Subscribe оформляет подписку на рассылку
func (s *Service) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscriberResponse, error) {
	req.Email = validation.NormalizeEmail(validation.Sanitize(req.Email))

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	sub, err := s.repo.CreateSubscriber(ctx, &domain.Subscriber{Email: req.Email})
	if err != nil {
		if errors.Is(err, contactRepo.ErrAlreadySubscribed) {
			s.logger.Warn("Subscribe: %s already subscribed", req.Email)
			return nil, ErrAlreadySubscribed
		}
		s.logger.Error("Subscribe: repository error: %v", err)
		return nil, fmt.Errorf("%w: Subscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: subscriber id=%d added", sub.ID)
	s.notifier.NewsletterConfirmation(ctx, sub.Email)

	return models.FromDomainSubscriber(sub), nil
}
