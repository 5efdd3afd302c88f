package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
)

func TestService(t *testing.T) {
	engine, err := pricing.NewDefaultEngine()
	require.NoError(t, err)
	svc := NewService(engine)

	c := svc.Catalog()
	assert.Equal(t, engine.Version(), c.Version)
	assert.Equal(t, "INR", c.Currency)
	assert.Len(t, c.Services, 6)
	assert.Len(t, c.Durations, 4)
	assert.Len(t, c.Discounts, 3)

	services := svc.Services()
	require.NotEmpty(t, services)
	assert.Equal(t, "elderly_care", services[0].ID)

	// Изменение ответа не меняет каталог движка
	services[0].BasePrice = 1
	price, err := engine.CalculatePrice("elderly_care", "4", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(400), price)

	durations := svc.Durations()
	assert.Equal(t, "4", durations[0].Code)
}
