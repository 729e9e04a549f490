package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Sender интерфейс отправки писем
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender отправляет письма через SMTP без аутентификации
// (совместимо с Mailpit и типичными внутренними релеями)
type SMTPSender struct {
	addr string
	from string
}

// NewSMTPSender создает новый SMTP отправитель
func NewSMTPSender(host string, port int, from string) *SMTPSender {
	if strings.TrimSpace(from) == "" {
		from = "no-reply@sansan-reserve.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", strings.TrimSpace(host), port),
		from: from,
	}
}

// Send отправляет письмо единственному получателю
func (s *SMTPSender) Send(to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	if err := smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("mail: failed to send to %s: %w", to, err)
	}
	return nil
}

// buildMessage собирает минимальное RFC 5322 сообщение в UTF-8
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
