package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LifeCare-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const uniqueViolation = pq.ErrorCode("23505")

// Repository хранит сообщения формы обратной связи и подписчиков рассылки
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateMessage сохраняет сообщение обратной связи
func (r *Repository) CreateMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if msg.Status == "" {
		msg.Status = domain.ContactStatusNew
	}

	query, args, err := psqlbuilder.Insert("contact_messages").
		Columns("name", "email", "subject", "message", "status").
		Values(msg.Name, msg.Email, msg.Subject, msg.Message, msg.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMessage - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateMessage - execute insert: %v", ErrExecQuery, err)
	}

	return msg, nil
}

// CreateSubscriber добавляет подписчика. Дубликат e-mail - ErrAlreadySubscribed.
func (r *Repository) CreateSubscriber(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("newsletter_subscribers").
		Columns("email").
		Values(sub.Email).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSubscriber - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("%w: CreateSubscriber - execute insert: %v", ErrExecQuery, err)
	}

	return sub, nil
}
