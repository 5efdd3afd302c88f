package calculate_price

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
	calculatePrice "github.com/m04kA/LifeCare-BookingService/internal/usecase/calculate_price"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
	"github.com/m04kA/LifeCare-BookingService/pkg/validation"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	engine, err := pricing.NewDefaultEngine()
	require.NoError(t, err)
	return NewHandler(calculatePrice.NewUseCase(engine, nil, logger.NewNop()), logger.NewNop())
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/calculate-price", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := post(newHandler(t), `{"service":"elderly_care","duration":"12","days":90}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                    `json:"success"`
		Data    calculatePrice.Response `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(85680), body.Data.Price)
	assert.Equal(t, int64(15), body.Data.Breakdown.DiscountPercent)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "bad json", body: `not json`, message: msgInvalidRequestBody},
		{name: "unknown service", body: `{"service":"spa","duration":"8","days":2}`, message: msgInvalidService},
		{name: "unknown duration", body: `{"service":"wound","duration":"10","days":2}`, message: msgInvalidDuration},
	}

	h := newHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"success":false,"message":"`+tt.message+`"}`, rec.Body.String())
		})
	}
}

func TestHandle_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{name: "missing days", body: `{"service":"wound","duration":"8"}`, field: "days", message: "days must be greater than or equal to 1"},
		{name: "negative days", body: `{"service":"wound","duration":"8","days":-4}`, field: "days", message: "days must be greater than or equal to 1"},
		{name: "days above range", body: `{"service":"physio","duration":"24","days":10000000000000000}`, field: "days", message: "days must be less than or equal to 2147483647"},
		{name: "missing service", body: `{"duration":"8","days":2}`, field: "service", message: "service is required"},
	}

	h := newHandler(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(h, tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body struct {
				Success bool                    `json:"success"`
				Message string                  `json:"message"`
				Errors  []validation.FieldError `json:"errors"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
			require.NotEmpty(t, body.Errors)
			assert.Equal(t, tt.field, body.Errors[0].Field)
		})
	}
}
