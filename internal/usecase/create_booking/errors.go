package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы.
	// Детали по полям доступны через errors.As(err, *validation.Error).
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
