package mailer

import "errors"

var (
	// ErrInvalidMessage возвращается для письма без получателя или темы
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrConnect возвращается при ошибке соединения с SMTP сервером
	ErrConnect = errors.New("mailer: failed to connect")

	// ErrSend возвращается при ошибке на этапе SMTP диалога
	ErrSend = errors.New("mailer: failed to send")
)
