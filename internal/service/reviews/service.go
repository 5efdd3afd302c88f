package reviews

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	reviewRepo "github.com/m04kA/LifeCare-BookingService/internal/infra/storage/review"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/ptr"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

// Service сервис отзывов и их модерации
type Service struct {
	reviewRepo   ReviewRepository
	cache        ListCache
	catalog      ServiceCatalog
	validator    *validation.Validator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(reviewRepo ReviewRepository, cache ListCache, catalog ServiceCatalog, logger Logger) *Service {
	return &Service{
		reviewRepo:   reviewRepo,
		cache:        cache,
		catalog:      catalog,
		validator:    validation.New(),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListPublic возвращает страницу одобренных отзывов. Результат кэшируется.
func (s *Service) ListPublic(ctx context.Context, req *models.ListReviewsRequest) (*models.ReviewListResponse, error) {
	approved := domain.ReviewApproved
	filter, sort, err := s.parseList(req)
	if err != nil {
		return nil, err
	}
	filter.Status = &approved

	page := domain.NewPagination(req.Page, req.Limit)
	key := cacheKey(filter, sort, page)

	var cached models.ReviewListResponse
	version, hit, err := s.cache.Get(ctx, key, &cached)
	cacheOK := err == nil
	if !cacheOK {
		s.logger.Warn("ListPublic: cache read failed: %v", err)
	}
	if hit {
		return &cached, nil
	}

	reviews, total, err := s.reviewRepo.List(ctx, filter, sort, page)
	if err != nil {
		s.logger.Error("ListPublic: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPublic - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainReviewList(reviews, total, page, false)
	// Страница пишется под версией, прочитанной до запроса в БД
	if cacheOK {
		if err := s.cache.Set(ctx, version, key, resp); err != nil {
			s.logger.Warn("ListPublic: cache write failed: %v", err)
		}
	}

	return resp, nil
}

// ListAll админский список отзывов в любом статусе
func (s *Service) ListAll(ctx context.Context, req *models.ListReviewsRequest) (*models.ReviewListResponse, error) {
	filter, sort, err := s.parseList(req)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		status := domain.ReviewStatus(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput,
				validation.FieldErr("status", "status must be one of: pending approved rejected"))
		}
		filter.Status = &status
	}

	page := domain.NewPagination(req.Page, req.Limit)

	reviews, total, err := s.reviewRepo.List(ctx, filter, sort, page)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReviewList(reviews, total, page, true), nil
}

// GetPublic возвращает одобренный отзыв, остальные считаются отсутствующими
func (s *Service) GetPublic(ctx context.Context, id int64) (*models.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrReviewNotFound) {
			return nil, ErrReviewNotFound
		}
		s.logger.Error("GetPublic: repository error for review id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetPublic - repository error: %v", ErrInternal, err)
	}

	if !review.IsPublic() {
		s.logger.Warn("GetPublic: review id=%d is %s", id, review.Status)
		return nil, ErrReviewNotFound
	}

	return models.FromDomainReview(review, false), nil
}

// Create сохраняет отзыв на модерацию
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	req.Name = validation.Sanitize(req.Name)
	req.Email = validation.NormalizeEmail(validation.Sanitize(req.Email))
	req.Content = validation.Sanitize(req.Content)
	req.Service = validation.Sanitize(req.Service)
	if req.Service == "" {
		req.Service = domain.GeneralReviewService
	}

	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if req.Service != domain.GeneralReviewService && !s.catalog.HasService(req.Service) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput,
			validation.FieldErr("service", "Please select a valid service"))
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Content: req.Content,
		Service: req.Service,
		Status:  domain.ReviewPending,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: review id=%d submitted for moderation", review.ID)
	return models.FromDomainReview(review, true), nil
}

// UpdateStatus меняет статус модерации
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReviewResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	review, err := s.reviewRepo.UpdateStatus(ctx, id, domain.ReviewStatus(req.Status), s.timeProvider.Now())
	if err != nil {
		return nil, s.mapRepoError("UpdateStatus", id, err)
	}

	s.logger.Info("UpdateStatus: review id=%d is now %s", id, req.Status)
	s.invalidate(ctx)

	return models.FromDomainReview(review, true), nil
}

// Reply сохраняет ответ администрации
func (s *Service) Reply(ctx context.Context, id int64, req *models.ReplyRequest) (*models.ReviewResponse, error) {
	req.Reply = validation.Sanitize(req.Reply)

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	review, err := s.reviewRepo.SetReply(ctx, id, req.Reply, s.timeProvider.Now())
	if err != nil {
		return nil, s.mapRepoError("Reply", id, err)
	}

	s.logger.Info("Reply: reply added to review id=%d", id)
	s.invalidate(ctx)

	return models.FromDomainReview(review, true), nil
}

// Delete удаляет отзыв
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: review id=%d deleted", id)
	s.invalidate(ctx)

	return nil
}

func (s *Service) parseList(req *models.ListReviewsRequest) (domain.ReviewsFilter, domain.ReviewSort, error) {
	var filter domain.ReviewsFilter

	sort, ok := domain.ParseReviewSort(req.SortBy)
	if !ok {
		return filter, sort, fmt.Errorf("%w: %w", ErrInvalidInput,
			validation.FieldErr("sortBy", "sortBy must be one of: -createdAt createdAt -rating rating"))
	}

	if req.Service != "" {
		filter.Service = ptr.Ptr(req.Service)
	}

	if req.Rating != "" {
		rating, err := strconv.Atoi(req.Rating)
		if err != nil || rating < domain.MinRating || rating > domain.MaxRating {
			return filter, sort, fmt.Errorf("%w: %w", ErrInvalidInput,
				validation.FieldErr("rating", "rating must be between 1 and 5"))
		}
		filter.Rating = &rating
	}

	return filter, sort, nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, reviewRepo.ErrReviewNotFound) {
		s.logger.Warn("%s: review id=%d not found", op, id)
		return ErrReviewNotFound
	}
	s.logger.Error("%s: repository error for review id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Error("reviews cache invalidation failed: %v", err)
	}
}

// cacheKey ключ публичного списка (статус всегда approved)
func cacheKey(filter domain.ReviewsFilter, sort domain.ReviewSort, page domain.Pagination) string {
	return fmt.Sprintf("list:service=%s:rating=%d:sort=%s:page=%d:limit=%d",
		ptr.Value(filter.Service), ptr.Value(filter.Rating), sort.String(), page.Page, page.Limit)
}
