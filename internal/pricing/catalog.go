package pricing

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var defaultCatalogTOML []byte

// Service позиция каталога услуг
type Service struct {
	ID        string `toml:"id" json:"id"`
	Title     string `toml:"title" json:"title"`
	BasePrice int64  `toml:"base_price" json:"basePrice"`
}

// Duration тариф по количеству часов ухода в день
type Duration struct {
	Code       string  `toml:"code" json:"code"`
	Label      string  `toml:"label" json:"label"`
	Multiplier float64 `toml:"multiplier" json:"multiplier"`
}

// Discount скидка за длительное бронирование, действует при days >= MinDays
type Discount struct {
	MinDays int     `toml:"min_days" json:"minDays"`
	Factor  float64 `toml:"factor" json:"factor"`
}

// Catalog версионированный каталог цен (общий контракт для сервера и клиента)
type Catalog struct {
	Version   string     `toml:"version" json:"version"`
	Currency  string     `toml:"currency" json:"currency"`
	Services  []Service  `toml:"services" json:"services"`
	Durations []Duration `toml:"durations" json:"durations"`
	Discounts []Discount `toml:"discounts" json:"discounts"`
}

// Parse разбирает и валидирует каталог в формате TOML
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile читает каталог из файла
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrInvalidCatalog, path, err)
	}
	return Parse(data)
}

// DefaultCatalog возвращает встроенный каталог
func DefaultCatalog() (*Catalog, error) {
	return Parse(defaultCatalogTOML)
}

// Validate проверяет целостность каталога
func (c *Catalog) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidCatalog)
	}
	if len(c.Services) == 0 {
		return fmt.Errorf("%w: no services", ErrInvalidCatalog)
	}
	if len(c.Durations) == 0 {
		return fmt.Errorf("%w: no durations", ErrInvalidCatalog)
	}

	seenServices := make(map[string]struct{}, len(c.Services))
	for _, s := range c.Services {
		if s.ID == "" {
			return fmt.Errorf("%w: service without id", ErrInvalidCatalog)
		}
		if _, dup := seenServices[s.ID]; dup {
			return fmt.Errorf("%w: duplicate service %q", ErrInvalidCatalog, s.ID)
		}
		if s.BasePrice <= 0 {
			return fmt.Errorf("%w: service %q base price must be positive", ErrInvalidCatalog, s.ID)
		}
		seenServices[s.ID] = struct{}{}
	}

	seenDurations := make(map[string]struct{}, len(c.Durations))
	for _, d := range c.Durations {
		if d.Code == "" {
			return fmt.Errorf("%w: duration without code", ErrInvalidCatalog)
		}
		if _, dup := seenDurations[d.Code]; dup {
			return fmt.Errorf("%w: duplicate duration %q", ErrInvalidCatalog, d.Code)
		}
		if d.Multiplier <= 0 {
			return fmt.Errorf("%w: duration %q multiplier must be positive", ErrInvalidCatalog, d.Code)
		}
		seenDurations[d.Code] = struct{}{}
	}

	seenThresholds := make(map[int]struct{}, len(c.Discounts))
	for _, d := range c.Discounts {
		if d.MinDays < 1 {
			return fmt.Errorf("%w: discount threshold must be at least 1 day", ErrInvalidCatalog)
		}
		if _, dup := seenThresholds[d.MinDays]; dup {
			return fmt.Errorf("%w: duplicate discount threshold %d", ErrInvalidCatalog, d.MinDays)
		}
		if d.Factor <= 0 || d.Factor >= 1 {
			return fmt.Errorf("%w: discount factor for %d days must be in (0, 1)", ErrInvalidCatalog, d.MinDays)
		}
		seenThresholds[d.MinDays] = struct{}{}
	}

	// Более длинное бронирование не может получать меньшую скидку
	tiers := append([]Discount(nil), c.Discounts...)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinDays < tiers[j].MinDays })
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Factor > tiers[i-1].Factor {
			return fmt.Errorf("%w: discount for %d days is smaller than for %d days",
				ErrInvalidCatalog, tiers[i].MinDays, tiers[i-1].MinDays)
		}
	}

	return nil
}

// clone возвращает глубокую копию каталога
func (c *Catalog) clone() *Catalog {
	return &Catalog{
		Version:   c.Version,
		Currency:  c.Currency,
		Services:  append([]Service(nil), c.Services...),
		Durations: append([]Duration(nil), c.Durations...),
		Discounts: append([]Discount(nil), c.Discounts...),
	}
}
