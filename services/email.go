package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"
	texttemplate "text/template"
	"triggerby_web/config"
	"triggerby_web/models"

	"github.com/microcosm-cc/bluemonday"
	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("✅ Email logged successfully (development mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("\n--- HTML BODY (first 500 chars) ---\n%s...", truncate(email.HTMLBody, 500))
	log.Printf("%s\n", separator)
}

// truncate truncates a string to a maximum length
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}

// SendEmailAsync sends an email from a goroutine so the HTTP response is not blocked
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

const auditAckSubject = "Your AI Audit is Being Processed"

// emailHTMLPolicy is applied to rendered HTML bodies before they leave the process
var emailHTMLPolicy = bluemonday.UGCPolicy()

var auditAckHTML = template.Must(template.New("audit_ack.html").Parse(`<h2>Thanks for requesting your AI audit!</h2>
<p>We're analyzing your store: <strong>{{.URL}}</strong></p>
<p>You'll receive your detailed diagnostic report within 30 minutes.</p>
<p>Best regards,<br>The TriggerBy Team</p>
`))

var auditAckText = texttemplate.Must(texttemplate.New("audit_ack.txt").Parse(`Thanks for requesting your AI audit!

We're analyzing your store: {{.URL}}
You'll receive your detailed diagnostic report within 30 minutes.

Best regards,
The TriggerBy Team
`))

// BuildAuditAcknowledgementEmail creates the acknowledgement sent to the requester
func BuildAuditAcknowledgementEmail(req models.AuditRequest) (*Email, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := auditAckHTML.Execute(&htmlBuf, req); err != nil {
		return nil, fmt.Errorf("failed to execute audit acknowledgement template: %w", err)
	}
	if err := auditAckText.Execute(&textBuf, req); err != nil {
		return nil, fmt.Errorf("failed to execute audit acknowledgement template: %w", err)
	}

	return &Email{
		To:       []string{req.Email},
		Subject:  auditAckSubject,
		HTMLBody: emailHTMLPolicy.Sanitize(htmlBuf.String()),
		TextBody: textBuf.String(),
	}, nil
}

// AcknowledgementEmailHook emails the requester once their audit request is accepted
type AcknowledgementEmailHook struct {
	cfg  *config.Config
	send func(cfg *config.Config, email *Email)
}

// NewAcknowledgementEmailHook returns a hook that sends through Resend asynchronously
func NewAcknowledgementEmailHook(cfg *config.Config) *AcknowledgementEmailHook {
	return &AcknowledgementEmailHook{cfg: cfg, send: SendEmailAsync}
}

func (h *AcknowledgementEmailHook) Name() string {
	return "acknowledgement-email"
}

func (h *AcknowledgementEmailHook) AuditRequested(ctx context.Context, req models.AuditRequest) error {
	email, err := BuildAuditAcknowledgementEmail(req)
	if err != nil {
		return err
	}
	h.send(h.cfg, email)
	return nil
}
