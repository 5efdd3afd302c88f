package application

import (
	"context"
	"fmt"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LifeCare-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий откликов на вакансии
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отклик
func (r *Repository) Create(ctx context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("job_applications").
		Columns(
			"name",
			"email",
			"phone",
			"address",
			"position",
			"experience",
			"aadhar_number",
			"message",
			"resume_url",
			"status",
		).
		Values(
			app.Name,
			app.Email,
			app.Phone,
			app.Address,
			app.Position,
			app.Experience,
			app.AadharNumber,
			app.Message,
			app.ResumeURL,
			app.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return app, nil
}
