package get_pricing_catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
	"github.com/m04kA/LifeCare-BookingService/internal/service/catalog"
	"github.com/m04kA/LifeCare-BookingService/pkg/logger"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	engine, err := pricing.NewDefaultEngine()
	require.NoError(t, err)
	return NewHandler(catalog.NewService(engine), logger.NewNop())
}

func TestHandle_Catalog(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandler(t).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pricing/catalog", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data pricing.Catalog `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INR", body.Data.Currency)
	assert.Len(t, body.Data.Services, 6)
	assert.Equal(t, pricing.Discount{MinDays: 7, Factor: 0.95}, body.Data.Discounts[0])
}

func TestHandle_ServicesAndDurations(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.HandleServices(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pricing/services", nil))
	assert.Contains(t, rec.Body.String(), `{"id":"elderly_care","title":"Elderly Care","basePrice":800}`)

	rec = httptest.NewRecorder()
	h.HandleDurations(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pricing/durations", nil))
	assert.Contains(t, rec.Body.String(), `{"code":"24","label":"24 hours (live-in)","multiplier":2.5}`)
}
