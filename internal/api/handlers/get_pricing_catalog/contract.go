package get_pricing_catalog

import (
	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
	"github.com/m04kA/LifeCare-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	Catalog() *models.CatalogResponse
	Services() []pricing.Service
	Durations() []pricing.Duration
}

type Logger interface {
	Info(format string, v ...interface{})
}
