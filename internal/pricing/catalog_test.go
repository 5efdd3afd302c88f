package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, "2024.1", c.Version)
	assert.Equal(t, "INR", c.Currency)
	assert.Len(t, c.Services, 6)
	assert.Len(t, c.Durations, 4)
	assert.Equal(t, []Discount{
		{MinDays: 7, Factor: 0.95},
		{MinDays: 30, Factor: 0.90},
		{MinDays: 90, Factor: 0.85},
	}, c.Discounts)
	assert.Equal(t, Service{ID: "physio", Title: "Physical Therapy", BasePrice: 1200}, c.Services[3])
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "broken toml", data: `version = `},
		{name: "no version", data: `
[[services]]
id = "a"
base_price = 1
[[durations]]
code = "8"
multiplier = 1.0`},
		{name: "no services", data: `
version = "1"
[[durations]]
code = "8"
multiplier = 1.0`},
		{name: "no durations", data: `
version = "1"
[[services]]
id = "a"
base_price = 1`},
		{name: "duplicate service", data: `
version = "1"
[[services]]
id = "a"
base_price = 1
[[services]]
id = "a"
base_price = 2
[[durations]]
code = "8"
multiplier = 1.0`},
		{name: "zero base price", data: `
version = "1"
[[services]]
id = "a"
base_price = 0
[[durations]]
code = "8"
multiplier = 1.0`},
		{name: "negative multiplier", data: `
version = "1"
[[services]]
id = "a"
base_price = 10
[[durations]]
code = "8"
multiplier = -1.0`},
		{name: "factor not below one", data: `
version = "1"
[[services]]
id = "a"
base_price = 10
[[durations]]
code = "8"
multiplier = 1.0
[[discounts]]
min_days = 7
factor = 1.0`},
		{name: "zero threshold", data: `
version = "1"
[[services]]
id = "a"
base_price = 10
[[durations]]
code = "8"
multiplier = 1.0
[[discounts]]
min_days = 0
factor = 0.9`},
		{name: "longer stay gets smaller discount", data: `
version = "1"
[[services]]
id = "a"
base_price = 10
[[durations]]
code = "8"
multiplier = 1.0
[[discounts]]
min_days = 7
factor = 0.8
[[discounts]]
min_days = 30
factor = 0.9`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
version = "custom"
currency = "USD"
[[services]]
id = "night"
title = "Night Nurse"
base_price = 50
[[durations]]
code = "10"
multiplier = 1.2
`), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", c.Version)
	assert.Empty(t, c.Discounts)

	e, err := NewEngine(c)
	require.NoError(t, err)
	price, err := e.CalculatePrice("night", "10", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), price)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
