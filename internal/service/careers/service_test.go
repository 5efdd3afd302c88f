package careers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/internal/service/careers/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

type fakeRepo struct {
	saved []*domain.JobApplication
	err   error
}

func (r *fakeRepo) Create(_ context.Context, app *domain.JobApplication) (*domain.JobApplication, error) {
	if r.err != nil {
		return nil, r.err
	}
	app.ID = int64(len(r.saved) + 1)
	app.CreatedAt = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	r.saved = append(r.saved, app)
	return app, nil
}

type fakeNotifier struct {
	received []*domain.JobApplication
}

func (n *fakeNotifier) ApplicationReceived(_ context.Context, app *domain.JobApplication) {
	n.received = append(n.received, app)
}

func validApplication() *models.ApplicationRequest {
	return &models.ApplicationRequest{
		Name:         "Sunita Behera",
		Email:        "Sunita@Mail.com",
		Phone:        "9123456780",
		Address:      "Saheed Nagar, Bhubaneswar",
		Position:     "nurse",
		Experience:   "4 years ICU",
		AadharNumber: "123412341234",
	}
}

func TestPositionsAndOpenings(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeNotifier{}, logger.NewNop())

	positions := svc.Positions()
	require.Len(t, positions, len(domain.Positions))
	assert.Equal(t, "nurse", positions[0].Value)

	openings := svc.Openings()
	require.Len(t, openings, 3)
	assert.Equal(t, "Registered Nurse", openings[0].Title)

	// Ответ не должен разделять слайс со статической таблицей
	openings[0].Requirements[0] = "changed"
	assert.Equal(t, "Valid RN license", domain.JobOpenings[0].Requirements[0])
}

func TestSubmit(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier, logger.NewNop())

	req := validApplication()
	req.ResumeURL = "https://files.example.com/cv.pdf"

	resp, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "sunita@mail.com", resp.Email)
	assert.Equal(t, "pending", resp.Status)
	assert.False(t, resp.SubmittedAt.IsZero())

	require.Len(t, repo.saved, 1)
	assert.Nil(t, repo.saved[0].Message)
	require.NotNil(t, repo.saved[0].ResumeURL)
	assert.Len(t, notifier.received, 1)
}

func TestSubmit_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.ApplicationRequest)
		field  string
	}{
		{name: "aadhar short", mutate: func(r *models.ApplicationRequest) { r.AadharNumber = "12341234" }, field: "aadharNumber"},
		{name: "aadhar letters", mutate: func(r *models.ApplicationRequest) { r.AadharNumber = "1234abcd1234" }, field: "aadharNumber"},
		{name: "phone", mutate: func(r *models.ApplicationRequest) { r.Phone = "+919123456" }, field: "phone"},
		{name: "experience", mutate: func(r *models.ApplicationRequest) { r.Experience = "" }, field: "experience"},
		{name: "resume url", mutate: func(r *models.ApplicationRequest) { r.ResumeURL = "cv.pdf" }, field: "resumeUrl"},
		{name: "unknown position", mutate: func(r *models.ApplicationRequest) { r.Position = "surgeon" }, field: "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			notifier := &fakeNotifier{}
			svc := NewService(repo, notifier, logger.NewNop())

			req := validApplication()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Empty(t, repo.saved)
			assert.Empty(t, notifier.received)
		})
	}
}

func TestSubmit_RepositoryError(t *testing.T) {
	notifier := &fakeNotifier{}
	svc := NewService(&fakeRepo{err: errors.New("db down")}, notifier, logger.NewNop())

	_, err := svc.Submit(context.Background(), validApplication())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, notifier.received)
}
