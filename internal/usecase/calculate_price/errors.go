package calculate_price

import "errors"

var (
	// ErrInvalidInput возвращается при пустых полях или days < 1
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrUnknownService услуги нет в каталоге
	ErrUnknownService = errors.New("calculate_price: invalid service type")

	// ErrUnknownDuration длительности нет в каталоге
	ErrUnknownDuration = errors.New("calculate_price: invalid duration")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("calculate_price: internal error")
)
