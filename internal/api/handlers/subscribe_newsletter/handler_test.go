package subscribe_newsletter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/LifeCare-BookingService/internal/service/contact"
	"github.com/m04kA/LifeCare-BookingService/internal/service/contact/models"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

type fakeService struct {
	err error
}

func (s *fakeService) Subscribe(_ context.Context, req *models.SubscribeRequest) (*models.SubscriberResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SubscriberResponse{ID: 1, Email: req.Email}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		contains   string
	}{
		{name: "subscribed", body: `{"email":"a@b.in"}`, wantStatus: http.StatusCreated, contains: msgSubscribed},
		{name: "duplicate", body: `{"email":"a@b.in"}`, err: contact.ErrAlreadySubscribed, wantStatus: http.StatusBadRequest, contains: msgAlreadySubscribed},
		{
			name:       "invalid email",
			body:       `{"email":"nope"}`,
			err:        fmt.Errorf("%w: %w", contact.ErrInvalidInput, validation.FieldErr("email", "Please include a valid email")),
			wantStatus: http.StatusBadRequest,
			contains:   `"field":"email"`,
		},
		{name: "internal", body: `{"email":"a@b.in"}`, err: errors.New("db"), wantStatus: http.StatusInternalServerError},
		{name: "bad body", body: `email=a@b.in`, wantStatus: http.StatusBadRequest, contains: msgInvalidRequestBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/contact/newsletter", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}
