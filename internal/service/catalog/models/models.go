package models

import "github.com/m04kA/LifeCare-BookingService/internal/pricing"

// CatalogResponse каталог цен для клиента. Клиент считает предварительную
// цену по тем же таблицам, итоговую цену всегда считает сервер.
type CatalogResponse struct {
	Version   string             `json:"version"`
	Currency  string             `json:"currency"`
	Services  []pricing.Service  `json:"services"`
	Durations []pricing.Duration `json:"durations"`
	Discounts []pricing.Discount `json:"discounts"`
}

// FromCatalog конвертирует каталог в DTO
func FromCatalog(c *pricing.Catalog) *CatalogResponse {
	return &CatalogResponse{
		Version:   c.Version,
		Currency:  c.Currency,
		Services:  c.Services,
		Durations: c.Durations,
		Discounts: c.Discounts,
	}
}
