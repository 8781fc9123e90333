package mail

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// ContactMessage is a note a school sends to the operator.
type ContactMessage struct {
	FromName   string
	SchoolName string
	SchoolCode string
	Body       string
}

type Mailer interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

type SendGridMailer struct {
	client *sendgrid.Client
	from   string
	to     string
}

func NewSendGridMailer(apiKey, from, to string) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		from:   from,
		to:     to,
	}
}

func (m *SendGridMailer) SendContact(ctx context.Context, msg ContactMessage) error {
	subject := fmt.Sprintf("[Weighroom] Message from %s", msg.SchoolName)
	plainText, htmlText := renderContact(msg)

	message := mail.NewSingleEmail(
		mail.NewEmail("Weighroom Contact", m.from),
		subject,
		mail.NewEmail("", m.to),
		plainText,
		htmlText,
	)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: %d - %s", response.StatusCode, response.Body)
	}
	return nil
}

// LogMailer writes messages to the log instead of sending them. It is used
// when no SendGrid key is configured.
type LogMailer struct {
	log *zap.Logger
}

func NewLogMailer(log *zap.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendContact(_ context.Context, msg ContactMessage) error {
	m.log.Info("contact message",
		zap.String("from", msg.FromName),
		zap.String("school", msg.SchoolName),
		zap.String("code", msg.SchoolCode),
		zap.Int("length", len(msg.Body)),
	)
	return nil
}

func renderContact(msg ContactMessage) (string, string) {
	plainText := "From: " + msg.FromName +
		"\nSchool: " + msg.SchoolName + " (" + msg.SchoolCode + ")\n\n" + msg.Body

	htmlText := "<strong>From:</strong> " + html.EscapeString(msg.FromName) +
		"<br><strong>School:</strong> " + html.EscapeString(msg.SchoolName) +
		" (" + html.EscapeString(msg.SchoolCode) + ")<br><br>" +
		strings.ReplaceAll(html.EscapeString(msg.Body), "\n", "<br>")

	return plainText, htmlText
}

var (
	_ Mailer = (*SendGridMailer)(nil)
	_ Mailer = (*LogMailer)(nil)
)
