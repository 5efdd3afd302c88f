package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Engine считает стоимость ухода по неизменяемому каталогу.
// Безопасен для конкурентного использования: после создания состояние не меняется.
type Engine struct {
	catalog     *Catalog
	services    map[string]Service
	multipliers map[string]decimal.Decimal
	discounts   []discountTier // по убыванию minDays
}

var maxPrice = decimal.NewFromInt(math.MaxInt64)

type discountTier struct {
	minDays int
	factor  decimal.Decimal
}

// Quote расчет цены с промежуточными значениями
type Quote struct {
	Service        string
	ServiceTitle   string
	Duration       string
	Days           int
	BasePrice      int64
	Multiplier     decimal.Decimal
	Subtotal       decimal.Decimal // basePrice * multiplier * days
	DiscountFactor decimal.Decimal // 1 если скидки нет
	Price          int64
}

// NewEngine создает движок из каталога. Каталог копируется.
func NewEngine(c *Catalog) (*Engine, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: catalog is nil", ErrInvalidCatalog)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	snapshot := c.clone()

	e := &Engine{
		catalog:     snapshot,
		services:    make(map[string]Service, len(snapshot.Services)),
		multipliers: make(map[string]decimal.Decimal, len(snapshot.Durations)),
		discounts:   make([]discountTier, 0, len(snapshot.Discounts)),
	}

	for _, s := range snapshot.Services {
		e.services[s.ID] = s
	}
	for _, d := range snapshot.Durations {
		e.multipliers[d.Code] = decimal.NewFromFloat(d.Multiplier)
	}
	for _, d := range snapshot.Discounts {
		e.discounts = append(e.discounts, discountTier{
			minDays: d.MinDays,
			factor:  decimal.NewFromFloat(d.Factor),
		})
	}
	sort.Slice(e.discounts, func(i, j int) bool {
		return e.discounts[i].minDays > e.discounts[j].minDays
	})

	return e, nil
}

// NewDefaultEngine создает движок по встроенному каталогу
func NewDefaultEngine() (*Engine, error) {
	c, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewEngine(c)
}

// CalculatePrice возвращает итоговую цену, округленную до целого (half up).
// days не проверяется, валидация выполняется вызывающей стороной.
func (e *Engine) CalculatePrice(service, duration string, days int) (int64, error) {
	q, err := e.Quote(service, duration, days)
	if err != nil {
		return 0, err
	}
	return q.Price, nil
}

// Quote считает цену и возвращает разбивку расчета
func (e *Engine) Quote(service, duration string, days int) (*Quote, error) {
	svc, ok := e.services[service]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidService, service)
	}

	multiplier, ok := e.multipliers[duration]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDuration, duration)
	}

	subtotal := decimal.NewFromInt(svc.BasePrice).
		Mul(multiplier).
		Mul(decimal.NewFromInt(int64(days)))

	factor := e.discountFactor(days)
	// Round округляет половину от нуля, для неотрицательных сумм это half up
	total := subtotal.Mul(factor).Round(0)
	if total.IsNegative() || total.GreaterThan(maxPrice) {
		return nil, fmt.Errorf("%w: %s/%s for %d days = %s", ErrPriceOutOfRange, service, duration, days, total.String())
	}

	return &Quote{
		Service:        service,
		ServiceTitle:   svc.Title,
		Duration:       duration,
		Days:           days,
		BasePrice:      svc.BasePrice,
		Multiplier:     multiplier,
		Subtotal:       subtotal,
		DiscountFactor: factor,
		Price:          total.IntPart(),
	}, nil
}

// discountFactor возвращает коэффициент самой большой подходящей скидки
func (e *Engine) discountFactor(days int) decimal.Decimal {
	for _, tier := range e.discounts {
		if days >= tier.minDays {
			return tier.factor
		}
	}
	return decimal.NewFromInt(1)
}

// ServiceTitle возвращает название услуги или сам идентификатор, если услуга неизвестна
func (e *Engine) ServiceTitle(serviceID string) string {
	if svc, ok := e.services[serviceID]; ok {
		return svc.Title
	}
	return serviceID
}

// HasService сообщает, есть ли услуга в каталоге
func (e *Engine) HasService(serviceID string) bool {
	_, ok := e.services[serviceID]
	return ok
}

// HasDuration сообщает, есть ли тариф в таблице длительностей
func (e *Engine) HasDuration(code string) bool {
	_, ok := e.multipliers[code]
	return ok
}

// Services возвращает копию списка услуг в порядке каталога
func (e *Engine) Services() []Service {
	return append([]Service(nil), e.catalog.Services...)
}

// Durations возвращает копию таблицы длительностей в порядке каталога
func (e *Engine) Durations() []Duration {
	return append([]Duration(nil), e.catalog.Durations...)
}

// Catalog возвращает копию всего каталога (для публикации клиенту)
func (e *Engine) Catalog() *Catalog {
	return e.catalog.clone()
}

// Version версия каталога
func (e *Engine) Version() string {
	return e.catalog.Version
}
