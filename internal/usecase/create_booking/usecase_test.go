package create_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

type fakeRepo struct {
	created []*domain.Booking
	err     error
}

func (r *fakeRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b.ID = int64(len(r.created) + 1)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	r.created = append(r.created, b)
	return b, nil
}

type inlineTx struct {
	calls int
}

func (m *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	confirmations, admin int
}

func (n *fakeNotifier) BookingConfirmation(context.Context, *domain.Booking) { n.confirmations++ }
func (n *fakeNotifier) AdminBooking(context.Context, *domain.Booking)        { n.admin++ }

type fakeMetrics struct {
	created map[string]int
}

func (m *fakeMetrics) IncBookingCreated(service string) { m.created[service]++ }

func newUseCase(t *testing.T, repo *fakeRepo, n *fakeNotifier, m Metrics) *UseCase {
	t.Helper()
	engine, err := pricing.NewDefaultEngine()
	require.NoError(t, err)
	return NewUseCase(repo, &inlineTx{}, engine, n, m, logger.NewNop())
}

func validRequest() *Request {
	return &Request{
		Name:      "  Asha Das ",
		Phone:     "9876543210",
		Email:     " Asha@Example.COM ",
		Address:   "Plot 12, Jatni",
		Service:   "post_op",
		Duration:  "8",
		StartDate: "2026-05-01",
		Days:      10,
		Notes:     "Ring twice<script>alert(1)</script>",
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	notifier := &fakeNotifier{}
	m := &fakeMetrics{created: map[string]int{}}
	uc := newUseCase(t, repo, notifier, m)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(9500), resp.Price)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Post-Operative Care", resp.ServiceTitle)
	assert.Equal(t, "2026-05-01", resp.StartDate)

	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, "Asha Das", saved.Name)
	assert.Equal(t, "asha@example.com", saved.Email)
	require.NotNil(t, saved.Notes)
	assert.Equal(t, "Ring twice", *saved.Notes)
	assert.Equal(t, int64(9500), saved.Price)

	assert.Equal(t, 1, notifier.confirmations)
	assert.Equal(t, 1, notifier.admin)
	assert.Equal(t, 1, m.created["post_op"])
}

func TestExecute_AcceptsTimestampStartDate(t *testing.T) {
	uc := newUseCase(t, &fakeRepo{}, &fakeNotifier{}, nil)

	req := validRequest()
	req.StartDate = "2026-05-01T00:00:00.000Z"
	req.Notes = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2026-05-01", resp.StartDate)
	assert.Nil(t, resp.Notes)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
	}{
		{name: "short name", mutate: func(r *Request) { r.Name = "A" }, field: "name"},
		{name: "long name", mutate: func(r *Request) { r.Name = strings.Repeat("a", 51) }, field: "name"},
		{name: "phone letters", mutate: func(r *Request) { r.Phone = "98765abcde" }, field: "phone"},
		{name: "phone short", mutate: func(r *Request) { r.Phone = "98765" }, field: "phone"},
		{name: "email", mutate: func(r *Request) { r.Email = "asha" }, field: "email"},
		{name: "address", mutate: func(r *Request) { r.Address = "   " }, field: "address"},
		{name: "unknown service", mutate: func(r *Request) { r.Service = "massage" }, field: "service"},
		{name: "unknown duration", mutate: func(r *Request) { r.Duration = "6" }, field: "duration"},
		{name: "bad date", mutate: func(r *Request) { r.StartDate = "05/01/2026" }, field: "startDate"},
		{name: "zero days", mutate: func(r *Request) { r.Days = 0 }, field: "days"},
		{name: "days above column range", mutate: func(r *Request) { r.Days = domain.MaxBookingDays + 1 }, field: "days"},
		{name: "long notes", mutate: func(r *Request) { r.Notes = strings.Repeat("n", 501) }, field: "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			notifier := &fakeNotifier{}
			uc := newUseCase(t, repo, notifier, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)

			assert.Empty(t, repo.created)
			assert.Zero(t, notifier.confirmations)
		})
	}
}

func TestExecute_RepositoryError(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := newUseCase(t, &fakeRepo{err: errors.New("db down")}, notifier, nil)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, notifier.confirmations)
	assert.Zero(t, notifier.admin)
}
