package pricing

import "errors"

var (
	// ErrInvalidService возвращается, когда услуги нет в каталоге
	ErrInvalidService = errors.New("pricing: invalid service type")

	// ErrInvalidDuration возвращается, когда длительности нет в таблице тарифов
	ErrInvalidDuration = errors.New("pricing: invalid duration")

	// ErrPriceOutOfRange возвращается, когда итоговая цена не помещается в int64 или отрицательна
	ErrPriceOutOfRange = errors.New("pricing: price out of range")

	// ErrInvalidCatalog возвращается при некорректном описании каталога
	ErrInvalidCatalog = errors.New("pricing: invalid catalog")
)
