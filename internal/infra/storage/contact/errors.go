package contact

import "errors"

var (
	// ErrAlreadySubscribed возвращается при повторной подписке того же e-mail
	ErrAlreadySubscribed = errors.New("contact.repository: email already subscribed")

	ErrBuildQuery = errors.New("contact.repository: failed to build query")
	ErrExecQuery  = errors.New("contact.repository: failed to execute query")
)
