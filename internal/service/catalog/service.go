package catalog

import (
	"github.com/m04kA/LifeCare-BookingService/internal/pricing"
	"github.com/m04kA/LifeCare-BookingService/internal/service/catalog/models"
)

// Service публикует каталог цен (только чтение)
type Service struct {
	engine PriceEngine
}

// NewService создает новый экземпляр сервиса каталога
func NewService(engine PriceEngine) *Service {
	return &Service{engine: engine}
}

// Catalog возвращает полный каталог
func (s *Service) Catalog() *models.CatalogResponse {
	return models.FromCatalog(s.engine.Catalog())
}

// Services возвращает список услуг в порядке каталога
func (s *Service) Services() []pricing.Service {
	return s.engine.Services()
}

// Durations возвращает тарифы по длительности в порядке каталога
func (s *Service) Durations() []pricing.Duration {
	return s.engine.Durations()
}
