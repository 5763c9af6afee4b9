package mailer

import (
	"fmt"

	"pokerroom-booking/pkg/utils"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// ReservationEmail data untuk email konfirmasi / pembatalan.
type ReservationEmail struct {
	To        string
	Name      string
	RoomName  string
	Date      string
	StartTime string
	EndTime   string
	Total     float64
	Code      string
}

// Mailer sends reservation notifications. Delivery is best-effort:
// callers log failures and never block the reservation outcome on them.
type Mailer interface {
	SendReservationConfirmed(email ReservationEmail) error
	SendReservationCancelled(email ReservationEmail) error
	SendAdminNotice(subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	admin  string
	log    *zap.Logger
}

// NewMailer membuat SMTP mailer. Kalau SMTP_HOST kosong, fallback ke
// logging-only mailer supaya development tetap jalan tanpa SMTP server.
func NewMailer(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		log.Warn("SMTP not configured, emails will only be logged")
		return &logMailer{log: log.With(zap.String("mailer", "log"))}
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(config.Host, config.Port, config.User, config.Password),
		from:   config.From,
		admin:  config.AdminEmail,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

func (m *smtpMailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func (m *smtpMailer) SendReservationConfirmed(email ReservationEmail) error {
	subject := fmt.Sprintf("Reservation confirmed - %s", email.RoomName)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your poker room reservation has been received.\n\n"+
			"Room: %s\n"+
			"Date: %s\n"+
			"Time: %s - %s\n"+
			"Total: %.0f\n"+
			"Reservation code: %s\n\n"+
			"Keep the code above to look up or cancel your reservation.\n",
		email.Name, email.RoomName, email.Date, email.StartTime, email.EndTime,
		email.Total, email.Code,
	)
	return m.send(email.To, subject, body)
}

func (m *smtpMailer) SendReservationCancelled(email ReservationEmail) error {
	subject := fmt.Sprintf("Reservation cancelled - %s", email.RoomName)
	body := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your reservation below has been cancelled.\n\n"+
			"Room: %s\n"+
			"Date: %s\n"+
			"Time: %s - %s\n"+
			"Reservation code: %s\n",
		email.Name, email.RoomName, email.Date, email.StartTime, email.EndTime,
		email.Code,
	)
	return m.send(email.To, subject, body)
}

func (m *smtpMailer) SendAdminNotice(subject, body string) error {
	if m.admin == "" {
		return nil
	}
	return m.send(m.admin, subject, body)
}

// logMailer hanya menulis ke log, tidak mengirim apa-apa.
type logMailer struct {
	log *zap.Logger
}

func (m *logMailer) SendReservationConfirmed(email ReservationEmail) error {
	m.log.Info("Reservation confirmation email (not sent)",
		zap.String("to", email.To),
		zap.String("room", email.RoomName),
		zap.String("code", email.Code),
	)
	return nil
}

func (m *logMailer) SendReservationCancelled(email ReservationEmail) error {
	m.log.Info("Reservation cancellation email (not sent)",
		zap.String("to", email.To),
		zap.String("code", email.Code),
	)
	return nil
}

func (m *logMailer) SendAdminNotice(subject, body string) error {
	m.log.Info("Admin notice email (not sent)", zap.String("subject", subject))
	return nil
}
