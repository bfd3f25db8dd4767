// Package mail renders and delivers the password reset mail over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/smtp"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nando-castro/api-financas/internal/config"
	"github.com/nando-castro/api-financas/internal/dto"
)

const resetSubject = "Password reset - Finanças App"

var resetTemplate = template.Must(template.New("reset").Parse(`<p>Hello <strong>{{.Name}}</strong>,</p>
<p>You asked to reset your password. Follow the link below:</p>
<p><a href="{{.Link}}" target="_blank">Reset password</a></p>
<p>This link expires at {{.ExpiresAt}}.</p>
`))

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender delivers mails through a single SMTP relay.
type Sender struct {
	addr        string
	auth        smtp.Auth
	from        string
	frontendURL string
	send        sendFunc
	logger      *slog.Logger
}

func NewSender(cfg *config.MailConfig, logger *slog.Logger) *Sender {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.SMTPHost)
	}
	return &Sender{
		addr:        net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		auth:        auth,
		from:        cfg.From,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		send:        smtp.SendMail,
		logger:      logger,
	}
}

// ResetLink is the frontend page that accepts the raw reset token.
func (s *Sender) ResetLink(token string) string {
	return s.frontendURL + "/reset-password?token=" + url.QueryEscape(token)
}

// SendPasswordReset renders and sends the reset mail. Its signature matches
// the queue consumer's handler.
func (s *Sender) SendPasswordReset(ctx context.Context, msg dto.PasswordResetMessage) error {
	body, err := s.renderPasswordReset(msg)
	if err != nil {
		return err
	}

	envelopeFrom := s.from
	if addr, err := parseAddress(s.from); err == nil {
		envelopeFrom = addr
	}

	if err := s.send(s.addr, s.auth, envelopeFrom, []string{msg.Email}, body); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}

	s.logger.InfoContext(ctx, "password reset mail sent", "to", msg.Email)
	return nil
}

func (s *Sender) renderPasswordReset(msg dto.PasswordResetMessage) ([]byte, error) {
	var html bytes.Buffer
	err := resetTemplate.Execute(&html, struct {
		Name      string
		Link      string
		ExpiresAt string
	}{
		Name:      msg.Name,
		Link:      s.ResetLink(msg.Token),
		ExpiresAt: msg.ExpiresAt.UTC().Format(time.RFC1123),
	})
	if err != nil {
		return nil, fmt.Errorf("render reset mail: %w", err)
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "From: %s\r\n", s.from)
	fmt.Fprintf(&out, "To: %s\r\n", msg.Email)
	fmt.Fprintf(&out, "Subject: %s\r\n", mimeHeader(resetSubject))
	out.WriteString("MIME-Version: 1.0\r\n")
	out.WriteString("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	out.Write(html.Bytes())
	return out.Bytes(), nil
}
