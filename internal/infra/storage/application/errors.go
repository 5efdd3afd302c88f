package application

import "errors"

var (
	ErrBuildQuery = errors.New("application.repository: failed to build query")
	ErrExecQuery  = errors.New("application.repository: failed to execute query")
)
