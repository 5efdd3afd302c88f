package notifications

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/m04kA/LifeCare-BookingService/internal/domain"
	"github.com/m04kA/LifeCare-BookingService/internal/integrations/mailer"
)

//go:embed templates/*.html
var templatesFS embed.FS

const subjectSuffix = " - Life Care Home Nursing"

// Виды писем (метка kind в метриках)
const (
	KindBookingConfirmation = "booking_confirmation"
	KindAdminBooking        = "admin_booking"
	KindBookingStatus       = "booking_status"
	KindContactAdmin        = "contact_admin"
	KindContactAck          = "contact_ack"
	KindNewsletter          = "newsletter"
	KindApplicationAck      = "application_ack"
	KindApplicationAdmin    = "application_admin"
)

// Site реквизиты компании для подвала писем
type Site struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// DefaultSite реквизиты по умолчанию
var DefaultSite = Site{
	Name:    "Life Care Home Nursing",
	Address: "Plot No -1611, Gangapada, Gate, near Jatni, Bhubaneswar, Odisha 752054",
	Phone:   "+91 95836 04949",
	Email:   "info@lifecarehomenursing.com",
}

// Service отправляет уведомления. Ошибки отправки логируются и
// учитываются в метриках, но никогда не возвращаются вызывающему.
type Service struct {
	sender     Sender
	adminEmail string
	site       Site
	tmpl       *template.Template
	metrics    Metrics
	logger     Logger
}

// NewService создает сервис уведомлений. metrics может быть nil.
func NewService(sender Sender, adminEmail string, site Site, metrics Metrics, logger Logger) (*Service, error) {
	tmpl, err := template.New("emails").Funcs(template.FuncMap{
		"date":  func(t time.Time) string { return t.Format("January 2, 2006") },
		"money": func(v int64) string { return fmt.Sprintf("₹%d", v) },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("notifications: parse templates: %w", err)
	}

	return &Service{
		sender:     sender,
		adminEmail: adminEmail,
		site:       site,
		tmpl:       tmpl,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

type templateData struct {
	Site          Site
	Booking       *domain.Booking
	Contact       *domain.ContactMessage
	Application   *domain.JobApplication
	StatusTitle   string
	StatusMessage string
	PositionLabel string
}

// BookingConfirmation письмо клиенту о принятой заявке
func (s *Service) BookingConfirmation(ctx context.Context, b *domain.Booking) {
	s.send(ctx, KindBookingConfirmation, b.Email, "Booking Confirmation"+subjectSuffix,
		templateData{Booking: b})
}

// AdminBooking уведомление администратора о новой заявке
func (s *Service) AdminBooking(ctx context.Context, b *domain.Booking) {
	s.send(ctx, KindAdminBooking, s.adminEmail, "New Booking Notification"+subjectSuffix,
		templateData{Booking: b})
}

// BookingStatusUpdate письмо клиенту о смене статуса
func (s *Service) BookingStatusUpdate(ctx context.Context, b *domain.Booking) {
	title, message := statusText(b.Status)
	s.send(ctx, KindBookingStatus, b.Email, "Booking "+title+subjectSuffix,
		templateData{Booking: b, StatusTitle: title, StatusMessage: message})
}

// ContactSubmission пересылает сообщение администратору и подтверждает получение автору
func (s *Service) ContactSubmission(ctx context.Context, msg *domain.ContactMessage) {
	s.send(ctx, KindContactAdmin, s.adminEmail, "New Contact Form Submission: "+msg.Subject,
		templateData{Contact: msg})
	s.send(ctx, KindContactAck, msg.Email, "We've Received Your Message"+subjectSuffix,
		templateData{Contact: msg})
}

// NewsletterConfirmation подтверждение подписки на рассылку
func (s *Service) NewsletterConfirmation(ctx context.Context, email string) {
	s.send(ctx, KindNewsletter, email, "Newsletter Subscription Confirmation", templateData{})
}

// ApplicationReceived подтверждение кандидату и уведомление администратору
func (s *Service) ApplicationReceived(ctx context.Context, app *domain.JobApplication) {
	label := app.Position
	for _, p := range domain.Positions {
		if p.Value == app.Position {
			label = p.Label
			break
		}
	}

	data := templateData{Application: app, PositionLabel: label}
	s.send(ctx, KindApplicationAck, app.Email, "Application Received"+subjectSuffix, data)
	s.send(ctx, KindApplicationAdmin, s.adminEmail, "New Job Application: "+label+subjectSuffix, data)
}

func (s *Service) send(ctx context.Context, kind, to, subject string, data templateData) {
	data.Site = s.site

	var body bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&body, kind, data); err != nil {
		s.logger.Error("Notifications: render %s failed: %v", kind, err)
		s.count(kind, err)
		return
	}

	err := s.sender.Send(ctx, mailer.Message{To: to, Subject: subject, HTML: body.String()})
	s.count(kind, err)
	if err != nil {
		s.logger.Error("Notifications: send %s to %s failed: %v", kind, to, err)
		return
	}

	s.logger.Info("Notifications: %s sent to %s", kind, to)
}

func (s *Service) count(kind string, err error) {
	if s.metrics != nil {
		s.metrics.IncEmail(kind, err)
	}
}

func statusText(status domain.BookingStatus) (title, message string) {
	switch status {
	case domain.StatusConfirmed:
		return "Confirmed", "Your booking has been confirmed. Our team will arrive at your location on the scheduled date."
	case domain.StatusCancelled:
		return "Cancelled", "Your booking has been cancelled. If you did not request this cancellation, please contact us immediately."
	case domain.StatusCompleted:
		return "Completed", "Your service has been completed. We hope you were satisfied with our care. Please consider leaving a review about your experience."
	default:
		return "Updated", "There has been an update to your booking."
	}
}
