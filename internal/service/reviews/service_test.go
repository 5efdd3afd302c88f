package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	reviewCache "github.com/m04kA/LifeCare-BookingService/internal/infra/cache/reviews"
	reviewRepo "github.com/m04kA/LifeCare-BookingService/internal/infra/storage/review"
	"github.com/m04kA/LifeCare-BookingService/internal/service/reviews/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

type fakeRepo struct {
	reviews   map[int64]*domain.Review
	nextID    int64
	listCalls int

	// afterList выполняется после чтения страницы (один раз)
	afterList func()

	lastFilter domain.ReviewsFilter
	lastSort   domain.ReviewSort
	lastPage   domain.Pagination
}

func newFakeRepo(reviews ...*domain.Review) *fakeRepo {
	r := &fakeRepo{reviews: map[int64]*domain.Review{}}
	for _, rv := range reviews {
		r.reviews[rv.ID] = rv
		if rv.ID > r.nextID {
			r.nextID = rv.ID
		}
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, review *domain.Review) (*domain.Review, error) {
	r.nextID++
	review.ID = r.nextID
	r.reviews[review.ID] = review
	return review, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, reviewRepo.ErrReviewNotFound
	}
	return rv, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.ReviewsFilter, sort domain.ReviewSort, page domain.Pagination) ([]*domain.Review, int, error) {
	r.listCalls++
	r.lastFilter, r.lastSort, r.lastPage = filter, sort, page

	var out []*domain.Review
	for _, rv := range r.reviews {
		if filter.Status != nil && rv.Status != *filter.Status {
			continue
		}
		out = append(out, rv)
	}
	if hook := r.afterList; hook != nil {
		r.afterList = nil
		hook()
	}
	return out, len(out), nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.ReviewStatus, at time.Time) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, reviewRepo.ErrReviewNotFound
	}
	rv.Status = status
	rv.UpdatedAt = at
	return rv, nil
}

func (r *fakeRepo) SetReply(_ context.Context, id int64, reply string, at time.Time) (*domain.Review, error) {
	rv, ok := r.reviews[id]
	if !ok {
		return nil, reviewRepo.ErrReviewNotFound
	}
	rv.Reply = &reply
	rv.RepliedAt = &at
	return rv, nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.reviews[id]; !ok {
		return reviewRepo.ErrReviewNotFound
	}
	delete(r.reviews, id)
	return nil
}

type catalogStub map[string]bool

func (c catalogStub) HasService(id string) bool { return c[id] }

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var now = time.Date(2026, time.March, 3, 10, 0, 0, 0, time.UTC)

func seedReviews() []*domain.Review {
	return []*domain.Review{
		{ID: 1, Name: "Meena", Email: "meena@mail.com", Rating: 5, Content: "Wonderful nurses", Service: "elderly_care", Status: domain.ReviewApproved},
		{ID: 2, Name: "Arjun", Email: "arjun@mail.com", Rating: 2, Content: "Late arrival", Service: "general", Status: domain.ReviewPending},
	}
}

func newService(t *testing.T, repo *fakeRepo) (*Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svc := NewService(repo, reviewCache.New(client, time.Minute), catalogStub{"elderly_care": true, "wound": true}, logger.NewNop())
	svc.timeProvider = fixedTime{t: now}
	return svc, mr
}

func TestListPublic_OnlyApprovedAndCached(t *testing.T) {
	repo := newFakeRepo(seedReviews()...)
	svc, _ := newService(t, repo)
	ctx := context.Background()

	resp, err := svc.ListPublic(ctx, &models.ListReviewsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Meena", resp.Reviews[0].Name)
	assert.Empty(t, resp.Reviews[0].Email)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 1, resp.CurrentPage)

	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.ReviewApproved, *repo.lastFilter.Status)
	assert.Equal(t, domain.DefaultReviewSort, repo.lastSort)

	// Второй запрос обслуживается из кэша
	again, err := svc.ListPublic(ctx, &models.ListReviewsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, resp.Total, again.Total)

	// Модерация сбрасывает кэш
	_, err = svc.UpdateStatus(ctx, 2, &models.UpdateStatusRequest{Status: "approved"})
	require.NoError(t, err)

	after, err := svc.ListPublic(ctx, &models.ListReviewsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	assert.Equal(t, 2, after.Total)
}

func TestListPublic_ModerationDuringReadIsNotCached(t *testing.T) {
	repo := newFakeRepo(seedReviews()...)
	svc, _ := newService(t, repo)
	ctx := context.Background()

	// Отзыв отклоняют, пока первая выборка еще не записана в кэш
	repo.afterList = func() {
		_, err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{Status: "rejected"})
		require.NoError(t, err)
	}

	first, err := svc.ListPublic(ctx, &models.ListReviewsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Total)

	second, err := svc.ListPublic(ctx, &models.ListReviewsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
	assert.Equal(t, 0, second.Total)
	assert.Empty(t, second.Reviews)
}

func TestListPublic_WorksWhenRedisIsDown(t *testing.T) {
	repo := newFakeRepo(seedReviews()...)
	svc, mr := newService(t, repo)
	mr.Close()

	resp, err := svc.ListPublic(context.Background(), &models.ListReviewsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestListPublic_Filters(t *testing.T) {
	repo := newFakeRepo(seedReviews()...)
	svc, _ := newService(t, repo)

	_, err := svc.ListPublic(context.Background(), &models.ListReviewsRequest{
		Page: 2, Limit: 5, Service: "wound", Rating: "4", SortBy: "rating",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Service)
	assert.Equal(t, "wound", *repo.lastFilter.Service)
	require.NotNil(t, repo.lastFilter.Rating)
	assert.Equal(t, 4, *repo.lastFilter.Rating)
	assert.Equal(t, domain.ReviewSort{Field: domain.ReviewSortRating}, repo.lastSort)
	assert.Equal(t, domain.Pagination{Page: 2, Limit: 5}, repo.lastPage)
}

func TestListPublic_InvalidParams(t *testing.T) {
	tests := []struct {
		name  string
		req   models.ListReviewsRequest
		field string
	}{
		{name: "bad sort", req: models.ListReviewsRequest{SortBy: "-name"}, field: "sortBy"},
		{name: "rating text", req: models.ListReviewsRequest{Rating: "five"}, field: "rating"},
		{name: "rating range", req: models.ListReviewsRequest{Rating: "6"}, field: "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t, newFakeRepo())

			_, err := svc.ListPublic(context.Background(), &tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
		})
	}
}

func TestListAll(t *testing.T) {
	repo := newFakeRepo(seedReviews()...)
	svc, _ := newService(t, repo)
	ctx := context.Background()

	resp, err := svc.ListAll(ctx, &models.ListReviewsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Nil(t, repo.lastFilter.Status)
	assert.NotEmpty(t, resp.Reviews[0].Email)

	resp, err = svc.ListAll(ctx, &models.ListReviewsRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.ListAll(ctx, &models.ListReviewsRequest{Status: "hidden"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPublic(t *testing.T) {
	svc, _ := newService(t, newFakeRepo(seedReviews()...))
	ctx := context.Background()

	resp, err := svc.GetPublic(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Wonderful nurses", resp.Content)

	_, err = svc.GetPublic(ctx, 2)
	assert.ErrorIs(t, err, ErrReviewNotFound)

	_, err = svc.GetPublic(ctx, 99)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestCreate(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newService(t, repo)
	ctx := context.Background()

	resp, err := svc.Create(ctx, &models.CreateReviewRequest{
		Name: "Kavya", Email: "KAVYA@mail.com", Rating: 4, Content: "Very caring staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "general", resp.Service)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "kavya@mail.com", resp.Email)

	resp, err = svc.Create(ctx, &models.CreateReviewRequest{
		Name: "Kavya", Email: "kavya@mail.com", Rating: 5, Content: "Great", Service: "wound",
	})
	require.NoError(t, err)
	assert.Equal(t, "wound", resp.Service)
}

func TestCreate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		req   models.CreateReviewRequest
		field string
	}{
		{name: "rating zero", req: models.CreateReviewRequest{Name: "Kavya", Email: "k@mail.com", Content: "ok"}, field: "rating"},
		{name: "rating six", req: models.CreateReviewRequest{Name: "Kavya", Email: "k@mail.com", Rating: 6, Content: "ok"}, field: "rating"},
		{name: "no content", req: models.CreateReviewRequest{Name: "Kavya", Email: "k@mail.com", Rating: 3}, field: "content"},
		{name: "unknown service", req: models.CreateReviewRequest{Name: "Kavya", Email: "k@mail.com", Rating: 3, Content: "ok", Service: "spa"}, field: "service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc, _ := newService(t, repo)

			_, err := svc.Create(context.Background(), &tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Empty(t, repo.reviews)
		})
	}
}

func TestModeration(t *testing.T) {
	repo := newFakeRepo(seedReviews()...)
	svc, _ := newService(t, repo)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateStatus(ctx, 42, &models.UpdateStatusRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrReviewNotFound)

	resp, err := svc.Reply(ctx, 1, &models.ReplyRequest{Reply: " Thank you, Meena! "})
	require.NoError(t, err)
	require.NotNil(t, resp.AdminReply)
	assert.Equal(t, "Thank you, Meena!", resp.AdminReply.Content)
	assert.Equal(t, now, resp.AdminReply.Date)

	_, err = svc.Reply(ctx, 1, &models.ReplyRequest{Reply: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, svc.Delete(ctx, 2))
	assert.ErrorIs(t, svc.Delete(ctx, 2), ErrReviewNotFound)
}
