// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"
)

type IMailService interface {
	SendRegistrationConfirmation(to, name, retreatTitle, startDate, endDate string) error
	SendMailToResetPassword(email, token string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 for STARTTLS, 465 for SMTPS
	Username   string
	Password   string
	From       string // envelope from, e.g. "hello@lotusyoga.studio"
	FromName   string // display name, e.g. "Lotus Yoga"
	UseSSL     bool   // true for SMTPS 465
	RequireTLS bool   // if true, fail when STARTTLS is unavailable

	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("html").Parse(baseHTMLTemplate)),
		textTpl: template.Must(template.New("text").Parse(plainTextTemplate)),
	}, nil
}

type emailData struct {
	Title   string
	Intro   string
	LinkURL string
	LinkTxt string
	AppName string
	Year    int
}

func (s *smtpMailService) SendRegistrationConfirmation(to, name, retreatTitle, startDate, endDate string) error {
	subject := "You're booked: " + retreatTitle
	return s.sendRendered(to, subject, emailData{
		Title: subject,
		Intro: fmt.Sprintf(
			"Hi %s, your spot on %s (%s to %s) is reserved. We'll be in touch with payment and travel details shortly.",
			name, retreatTitle, startDate, endDate),
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))
	subject := "Reset your password"
	return s.sendRendered(to, subject, emailData{
		Title:   subject,
		Intro:   "We received a request to reset your password. Follow the link below to continue. If you didn't request this, you can safely ignore this email.",
		LinkURL: link,
		LinkTxt: "Reset Password",
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f6f3ee; color: #2f2a26;
      font-family: Georgia, "Times New Roman", serif; }
    .wrapper { width: 100%; padding: 32px 16px; box-sizing: border-box; }
    .container { max-width: 560px; margin: 0 auto; background: #ffffff;
      border-radius: 8px; overflow: hidden; border: 1px solid #e4ddd2; }
    .header { padding: 24px 28px; background: #4e6e58; }
    .brand { font-size: 20px; letter-spacing: 2px; color: #f6f3ee;
      text-transform: uppercase; }
    .hero { padding: 32px 28px; }
    h1 { margin: 0 0 14px; font-size: 24px; color: #2f2a26; }
    p { margin: 0 0 18px; line-height: 1.7; font-size: 15px; }
    .btn { display: inline-block; padding: 13px 26px; background: #4e6e58;
      color: #ffffff !important; text-decoration: none; border-radius: 6px; }
    .muted { color: #8a8178; font-size: 12px; }
    .footer { padding: 18px 28px; color: #8a8178; font-size: 12px;
      text-align: center; border-top: 1px solid #e4ddd2; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header"><div class="brand">{{.AppName}}</div></div>
      <div class="hero">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
        {{if .LinkURL}}
          <p><a class="btn" href="{{.LinkURL}}">{{.LinkTxt}}</a></p>
          <p class="muted">If the button doesn't work, copy this link into your browser:<br>{{.LinkURL}}</p>
        {{end}}
      </div>
      <div class="footer">&copy; {{.Year}} {{.AppName}}</div>
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}

{{if .LinkURL}}Open this link:
{{.LinkURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) sendRendered(to, subject string, data emailData) error {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()
		return s.transmit(conn, addr, auth, to, msg.Bytes(), false)
	}

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()
	return s.transmit(conn, addr, auth, to, msg.Bytes(), true)
}

func (s *smtpMailService) transmit(conn net.Conn, addr string, auth smtp.Auth, to string, msg []byte, tryStartTLS bool) error {
	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if tryStartTLS {
		if ok, _ := c.Extension("STARTTLS"); ok {
			tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mimeQuote(name), s.cfg.From)
}

// RFC 2047 encoding for non-ASCII display names.
func mimeQuote(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
		}
	}
	return s
}
