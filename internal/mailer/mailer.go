// Package mailer sends transactional mail. Delivery is fire-and-forget:
// callers spawn Send in a goroutine and failures are logged, never surfaced
// to the HTTP client.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Sender delivers one message to one recipient.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender delivers through a plain SMTP submission endpoint.
type SMTPSender struct {
	addr string
	host string
	from string
	auth smtp.Auth
}

func NewSMTPSender(host string, port int, user, pass, from string) *SMTPSender {
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", host, port),
		host: host,
		from: from,
		auth: smtp.PlainAuth("", user, pass, host),
	}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, s.auth, envelopeFrom(s.from), []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}

// envelopeFrom strips a display name, "Name <addr>" -> "addr".
func envelopeFrom(from string) string {
	if i := strings.IndexByte(from, '<'); i >= 0 {
		if j := strings.IndexByte(from[i:], '>'); j > 0 {
			return from[i+1 : i+j]
		}
	}
	return from
}

// LogSender writes mail to the log instead of the wire. Used in development
// and whenever SMTP credentials are not configured.
type LogSender struct {
	Log *log.Logger
}

func (s *LogSender) Send(to, subject, body string) error {
	s.Log.Printf("mail (not sent) to=%s subject=%q", to, subject)
	return nil
}
