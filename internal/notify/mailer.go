// File: internal/notify/mailer.go
package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"citas-api/internal/model"
	"citas-api/internal/service"
)

// Mailer sends a single message. Sends run on the worker pool, off the
// request path; a failure never affects the originating response.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers over plain-auth SMTP with STARTTLS, the way the
// standard library negotiates it.
type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.From, []string{to}, []byte(msg.String()))
}

// NoopMailer is used when SMTP is not configured.
type NoopMailer struct{}

func (NoopMailer) Send(string, string, string) error { return nil }

// FakeMailer records sends for tests.
type FakeMailer struct {
	SendFn func(to, subject, body string) error
}

func (f *FakeMailer) Send(to, subject, body string) error {
	if f.SendFn != nil {
		return f.SendFn(to, subject, body)
	}
	return nil
}

// BookingConfirmation composes the confirmation message for a new booking.
func BookingConfirmation(user *model.User, appt *model.AppointmentDetail) (subject, body string) {
	subject = "Appointment confirmed"
	reason := appt.Reason
	if reason == "" {
		reason = "no reason given"
	}
	body = fmt.Sprintf(
		"<p>Hi %s,</p><p>Your appointment on <b>%s</b> at <b>%s</b> (%s) is confirmed.</p>",
		user.FullName,
		appt.Date.Format(service.DateLayout),
		appt.Time,
		reason,
	)
	return subject, body
}
