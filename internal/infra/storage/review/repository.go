package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LifeCare-BookingService/pkg/psqlbuilder"
)

const table = "reviews"

var columns = []string{
	"id",
	"name",
	"email",
	"rating",
	"content",
	"service",
	"status",
	"reply",
	"replied_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий отзывов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новый отзыв
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "email", "rating", "content", "service", "status").
		Values(review.Name, review.Email, review.Rating, review.Content, review.Service, review.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// GetByID получает отзыв в любом статусе
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	review, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan review: %v", ErrScanRow, err)
	}

	return review, nil
}

// List возвращает страницу отзывов и общее количество по фильтру
func (r *Repository) List(ctx context.Context, filter domain.ReviewsFilter, sort domain.ReviewSort, page domain.Pagination) ([]*domain.Review, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.And{}
	if filter.Status != nil {
		where = append(where, squirrel.Eq{"status": *filter.Status})
	}
	if filter.Service != nil {
		where = append(where, squirrel.Eq{"service": *filter.Service})
	}
	if filter.Rating != nil {
		where = append(where, squirrel.Eq{"rating": *filter.Rating})
	}

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - count reviews: %v", ErrScanRow, err)
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy(orderBy(sort)...).
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0, page.Limit)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan review: %v", ErrScanRow, err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return reviews, total, nil
}

// UpdateStatus меняет статус модерации
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus, at time.Time) (*domain.Review, error) {
	return r.update(ctx, "UpdateStatus", id, map[string]interface{}{
		"status":     status,
		"updated_at": at,
	})
}

// SetReply сохраняет ответ администратора
func (r *Repository) SetReply(ctx context.Context, id int64, reply string, at time.Time) (*domain.Review, error) {
	return r.update(ctx, "SetReply", id, map[string]interface{}{
		"reply":      reply,
		"replied_at": at,
		"updated_at": at,
	})
}

func (r *Repository) update(ctx context.Context, op string, id int64, values map[string]interface{}) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		SetMap(values).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	review, err := scanReview(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return review, nil
}

// Delete удаляет отзыв
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReviewNotFound
	}

	return nil
}

// orderBy переводит сортировку в ORDER BY; id добавляется для стабильной пагинации
func orderBy(sort domain.ReviewSort) []string {
	column := "created_at"
	if sort.Field == domain.ReviewSortRating {
		column = "rating"
	}

	direction := "ASC"
	if sort.Desc {
		direction = "DESC"
	}

	return []string{column + " " + direction, "id " + direction}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (*domain.Review, error) {
	var (
		rv        domain.Review
		reply     sql.NullString
		repliedAt sql.NullTime
	)

	err := row.Scan(
		&rv.ID,
		&rv.Name,
		&rv.Email,
		&rv.Rating,
		&rv.Content,
		&rv.Service,
		&rv.Status,
		&reply,
		&repliedAt,
		&rv.CreatedAt,
		&rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if reply.Valid {
		rv.Reply = &reply.String
	}
	if repliedAt.Valid {
		t := repliedAt.Time
		rv.RepliedAt = &t
	}

	return &rv, nil
}
