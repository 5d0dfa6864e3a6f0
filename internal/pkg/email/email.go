package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Reminder describes an upcoming appointment for a reminder email
type Reminder struct {
	RecipientName string
	OtherParty    string
	ScheduledAt   time.Time
	Duration      time.Duration
	Location      string
}

// EmailService defines the interface for email operations
type EmailService interface {
	SendAppointmentReminder(toEmail string, reminder Reminder) error
}

// SMTPConfig holds configuration for SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	UseTLS    bool
}

// Configured reports whether enough settings are present to deliver mail
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

// EmailServiceImpl implements EmailService
type EmailServiceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewEmailService creates a new EmailService
func NewEmailService(config SMTPConfig, logger zerolog.Logger) EmailService {
	return &EmailServiceImpl{
		config: config,
		logger: logger,
	}
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Upcoming appointment</h2>
				<p>Hello {{.RecipientName}},</p>
				<p>This is a reminder of your appointment with <strong>{{.OtherParty}}</strong>.</p>
				<ul>
					<li>When: {{.When}}</li>
					<li>Duration: {{.Minutes}} minutes</li>
					{{if .Location}}<li>Where: {{.Location}}</li>{{end}}
				</ul>
				<p>Best regards,<br>The Injury Desk Team</p>
			</div>
		</body>
		</html>
	`))

// RenderReminder builds the subject and HTML body of a reminder email
func RenderReminder(reminder Reminder) (subject, body string, err error) {
	var buf bytes.Buffer
	err = reminderTemplate.Execute(&buf, struct {
		Reminder
		When    string
		Minutes int
	}{
		Reminder: reminder,
		When:     reminder.ScheduledAt.UTC().Format("Mon 02 Jan 2006 15:04 MST"),
		Minutes:  int(reminder.Duration / time.Minute),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render reminder: %w", err)
	}
	subject = fmt.Sprintf("Reminder: appointment at %s", reminder.ScheduledAt.UTC().Format("15:04 MST"))
	return subject, buf.String(), nil
}

// SendAppointmentReminder emails one participant about an upcoming appointment
func (s *EmailServiceImpl) SendAppointmentReminder(toEmail string, reminder Reminder) error {
	subject, body, err := RenderReminder(reminder)
	if err != nil {
		return err
	}

	// Without credentials the reminder is only logged (development)
	if !s.config.Configured() {
		s.logger.Info().
			Str("toEmail", toEmail).
			Str("subject", subject).
			Time("scheduledAt", reminder.ScheduledAt).
			Msg("SMTP not configured - reminder email not sent")
		return nil
	}

	return s.sendHTMLEmail(toEmail, subject, body)
}

func (s *EmailServiceImpl) buildMessage(toEmail, subject, htmlBody string) []byte {
	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		"To":           toEmail,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=UTF-8",
	}
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var msg bytes.Buffer
	for _, key := range keys {
		fmt.Fprintf(&msg, "%s: %s\r\n", key, headers[key])
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	return msg.Bytes()
}

// sendHTMLEmail sends an HTML email
func (s *EmailServiceImpl) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	message := s.buildMessage(toEmail, subject, htmlBody)
	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if !s.config.UseTLS {
		if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, message); err != nil {
			s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to send email")
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	conn, err := tls.Dial("tcp", serverAddress, &tls.Config{ServerName: s.config.Host})
	if err != nil {
		s.logger.Error().Err(err).Str("server", serverAddress).Msg("Failed to connect to SMTP server")
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	if err = client.Auth(auth); err != nil {
		s.logger.Error().Err(err).Msg("SMTP authentication failed")
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}
	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write email message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}
	return nil
}
