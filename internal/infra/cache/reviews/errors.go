package reviews

import "errors"

var (
	ErrCacheRead  = errors.New("reviews.cache: failed to read")
	ErrCacheWrite = errors.New("reviews.cache: failed to write")
	ErrInvalidate = errors.New("reviews.cache: failed to invalidate")
)
