package reviews

import "errors"

var (
	// ErrReviewNotFound возвращается, если отзыв не найден или не опубликован
	ErrReviewNotFound = errors.New("reviews: review not found")

	// ErrInvalidInput возвращается при некорректных данных запроса
	ErrInvalidInput = errors.New("reviews: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews: internal error")
)
