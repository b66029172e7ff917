package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"vitalis/internal/models/db_models"
	"vitalis/pkg/utils"
)

// IMailService dispatches the clinic's transactional email. Delivery is
// best effort: there is no retry, errors surface to the caller.
type IMailService interface {
	SendBookingReceived(booking *db_models.Booking) error
	SendBookingStatusUpdate(booking *db_models.Booking) error
	SendInquiryReceived(inquiry *db_models.MembershipInquiry) error
	SendMembershipConfirmed(member *db_models.Member) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@clinic.ph"
	FromName   string // display name
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail if STARTTLS not available

	ClinicName  string // used in header and footer
	ClinicEmail string // fixed business address CC'd on every notification
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("notifyHTML").Parse(baseHTMLTemplate)),
		textTpl: template.Must(template.New("plainText").Parse(plainTextTemplate)),
	}, nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendBookingReceived(booking *db_models.Booking) error {
	subject := "We received your booking"
	body := fmt.Sprintf(
		"Hi %s, thank you for booking %s on %s at %s. We will confirm your slot shortly.",
		booking.CustomerName, booking.Service, booking.PreferredDate, booking.PreferredTime)
	return s.notify(booking.CustomerEmail, subject, body)
}

func (s *smtpMailService) SendBookingStatusUpdate(booking *db_models.Booking) error {
	subject := fmt.Sprintf("Your booking is %s", booking.Status)
	body := fmt.Sprintf(
		"Hi %s, your booking for %s on %s at %s is now %s.",
		booking.CustomerName, booking.Service, booking.PreferredDate, booking.PreferredTime, booking.Status)
	return s.notify(booking.CustomerEmail, subject, body)
}

func (s *smtpMailService) SendInquiryReceived(inquiry *db_models.MembershipInquiry) error {
	subject := "Thanks for your membership inquiry"
	body := fmt.Sprintf(
		"Hi %s, we received your inquiry about the %s membership. Our team will reach out soon.",
		inquiry.Name, inquiry.DesiredTier)
	return s.notify(inquiry.Email, subject, body)
}

func (s *smtpMailService) SendMembershipConfirmed(member *db_models.Member) error {
	subject := fmt.Sprintf("Welcome to your %s membership", member.MembershipType)

	code := ""
	if member.ReferralCode != nil {
		code = *member.ReferralCode
	}
	expiry := ""
	if member.MembershipExpiryDate != nil {
		expiry = utils.FormatDateClinic(*member.MembershipExpiryDate)
	}
	body := fmt.Sprintf(
		"Hi %s, your %s membership is now active until %s. Share your referral code %s with friends to earn rewards.",
		member.Name, member.MembershipType, expiry, code)
	return s.notify(member.Email, subject, body)
}

func (s *smtpMailService) notify(to, subject, body string) error {
	html, text, err := s.renderEmail(emailData{
		Title:      subject,
		Intro:      body,
		ClinicName: s.cfg.ClinicName,
		Year:       time.Now().Year(),
	})
	if err != nil {
		return err
	}

	if err := s.send(to, subject, html, text); err != nil {
		return err
	}
	// The clinic inbox gets its own copy of every notification.
	if s.cfg.ClinicEmail != "" && !strings.EqualFold(s.cfg.ClinicEmail, to) {
		return s.send(s.cfg.ClinicEmail, subject, html, text)
	}
	return nil
}

// ------------------- Rendering -------------------

type emailData struct {
	Title      string
	Intro      string
	ClinicName string
	Year       int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f5f7f4; color: #1f2d24;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .wrapper { width: 100%; padding: 32px 16px; box-sizing: border-box; }
    .container { max-width: 560px; margin: 0 auto; background: #ffffff;
      border-radius: 12px; overflow: hidden; border: 1px solid #dde5dc; }
    .header { padding: 24px 28px; background: #28513a; }
    .brand { font-weight: 700; letter-spacing: 1px; font-size: 20px;
      color: #f2f7f0; text-transform: uppercase; }
    .hero { padding: 32px 28px; }
    h1 { margin: 0 0 14px; font-size: 24px; color: #1f2d24; line-height: 1.3; }
    p { margin: 0 0 18px; line-height: 1.7; color: #3c4a41; font-size: 15px; }
    .footer { padding: 20px 28px; color: #7a8a7e; font-size: 12px;
      text-align: center; border-top: 1px solid #dde5dc; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header">
        <div class="brand">{{.ClinicName}}</div>
      </div>
      <div class="hero">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
      </div>
      <div class="footer">
        © {{.Year}} {{.ClinicName}}. All rights reserved.
      </div>
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}

— {{.ClinicName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data emailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", fromHeader)
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

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.deliver(c, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.deliver(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) deliver(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
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
	return fmt.Sprintf("%s <%s>", name, s.cfg.From)
}
