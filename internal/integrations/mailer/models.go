package mailer

// Message письмо в формате HTML
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
