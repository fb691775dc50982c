package services

import (
	"context"
	"testing"
	"triggerby_web/config"
	"triggerby_web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmail_TestMode(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: true,
	}
	email := &Email{
		To:       []string{"jane@store.com"},
		Subject:  "Test",
		TextBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.NoError(t, err)
}

func TestSendEmail_MissingAPIKey(t *testing.T) {
	cfg := &config.Config{
		EmailTestMode: false,
		ResendAPIKey:  "",
	}
	email := &Email{
		To:       []string{"jane@store.com"},
		Subject:  "Test",
		TextBody: "Body",
	}

	err := SendEmail(cfg, email)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY not configured")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}

func TestBuildAuditAcknowledgementEmail(t *testing.T) {
	email, err := BuildAuditAcknowledgementEmail(models.AuditRequest{
		Email: "jane@store.com",
		URL:   "https://jane-store.myshopify.com/?a=<b>",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"jane@store.com"}, email.To)
	assert.Equal(t, "Your AI Audit is Being Processed", email.Subject)
	assert.Contains(t, email.HTMLBody, "https://jane-store.myshopify.com/?a=&lt;b&gt;")
	assert.NotContains(t, email.HTMLBody, "<b>")
	assert.Contains(t, email.TextBody, "https://jane-store.myshopify.com/?a=<b>")
	assert.Contains(t, email.TextBody, "within 30 minutes")
	assert.Contains(t, email.HTMLBody, "<strong>")
}

func TestBuildAuditAcknowledgementEmail_StripsScripts(t *testing.T) {
	email, err := BuildAuditAcknowledgementEmail(models.AuditRequest{
		Email: "jane@store.com",
		URL:   `https://store.com/"><script>alert(1)</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, email.HTMLBody, "<script>")
	assert.Contains(t, email.HTMLBody, "<h2>")
	assert.Contains(t, email.TextBody, "<script>alert(1)</script>")
}

func TestAcknowledgementEmailHook(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}
	var sent []*Email
	hook := &AcknowledgementEmailHook{
		cfg: cfg,
		send: func(c *config.Config, email *Email) {
			assert.Same(t, cfg, c)
			sent = append(sent, email)
		},
	}

	err := hook.AuditRequested(context.Background(), models.AuditRequest{
		Email: "jane@store.com",
		URL:   "https://jane-store.myshopify.com",
	})
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"jane@store.com"}, sent[0].To)
	assert.Equal(t, "acknowledgement-email", hook.Name())

	t.Run("Constructor uses async sender", func(t *testing.T) {
		h := NewAcknowledgementEmailHook(cfg)
		assert.NotNil(t, h.send)
	})
}
