package catalog

import "github.com/m04kA/LifeCare-BookingService/internal/pricing"

// PriceEngine источник каталога цен
type PriceEngine interface {
	Catalog() *pricing.Catalog
	Services() []pricing.Service
	Durations() []pricing.Duration
}
