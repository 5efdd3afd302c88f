package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// implicitTLSPort порт SMTPS, где TLS поднимается до SMTP диалога
const implicitTLSPort = 465

// Config параметры SMTP клиента
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	Timeout  time.Duration
}

// Client клиент для отправки писем через SMTP
type Client struct {
	cfg Config
	log Logger
}

// NewClient создает новый экземпляр SMTP клиента
func NewClient(cfg Config, log Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{cfg: cfg, log: log}
}

// Send отправляет письмо. На 465 порту используется implicit TLS,
// на остальных STARTTLS, если сервер его поддерживает.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if msg.To == "" || msg.Subject == "" {
		return fmt.Errorf("%w: recipient and subject are required", ErrInvalidMessage)
	}

	addr := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: dial %s: %v", ErrConnect, addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	tlsConfig := &tls.Config{ServerName: c.cfg.Host}
	if c.cfg.Port == implicitTLSPort {
		conn = tls.Client(conn, tlsConfig)
	}

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		return fmt.Errorf("%w: handshake: %v", ErrConnect, err)
	}
	defer client.Close()

	if c.cfg.Port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err := client.StartTLS(tlsConfig); err != nil {
				return fmt.Errorf("%w: starttls: %v", ErrConnect, err)
			}
		}
	}

	if c.cfg.Username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
			if err := client.Auth(auth); err != nil {
				return fmt.Errorf("%w: auth: %v", ErrSend, err)
			}
		}
	}

	if err := client.Mail(c.cfg.From); err != nil {
		return fmt.Errorf("%w: MAIL FROM: %v", ErrSend, err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("%w: RCPT TO %s: %v", ErrSend, msg.To, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: DATA: %v", ErrSend, err)
	}
	if _, err := w.Write(c.buildMessage(msg, time.Now())); err != nil {
		return fmt.Errorf("%w: write body: %v", ErrSend, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSend, err)
	}

	if err := client.Quit(); err != nil {
		c.log.Warn("Mailer: QUIT failed after sending to %s: %v", msg.To, err)
	}

	c.log.Info("Mailer: sent %q to %s", msg.Subject, msg.To)
	return nil
}

// buildMessage собирает RFC 5322 письмо с HTML телом
func (c *Client) buildMessage(msg Message, now time.Time) []byte {
	from := (&mail.Address{Name: c.cfg.FromName, Address: c.cfg.From}).String()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", msg.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", now.Format(time.RFC1123Z))
	fmt.Fprintf(&buf, "Message-ID: <%s@%s>\r\n", uuid.NewString(), c.cfg.Host)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(msg.HTML)

	return buf.Bytes()
}

// LogSender пишет письма в лог вместо отправки (SMTP выключен)
type LogSender struct {
	log Logger
}

func NewLogSender(log Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	if msg.To == "" || msg.Subject == "" {
		return fmt.Errorf("%w: recipient and subject are required", ErrInvalidMessage)
	}
	s.log.Info("Mailer (disabled): would send %q to %s", msg.Subject, msg.To)
	return nil
}
