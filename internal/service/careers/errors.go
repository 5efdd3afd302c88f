package careers

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных отклика
	ErrInvalidInput = errors.New("careers: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("careers: internal error")
)
