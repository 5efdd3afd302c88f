package contact

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("contact: invalid input data")

	// ErrAlreadySubscribed возвращается, если e-mail уже подписан на рассылку
	ErrAlreadySubscribed = errors.New("contact: email already subscribed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("contact: internal error")
)
