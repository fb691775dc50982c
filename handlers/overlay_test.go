package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"triggerby_web/services/overlay"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postOverlay(t *testing.T, svc overlay.Submitter, email, storeURL string) (int, string) {
	t.Helper()
	form := url.Values{}
	form.Add("email", email)
	form.Add("url", storeURL)

	_, c, rec := setupEcho(http.MethodPost, "/overlay/audit", strings.NewReader(form.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c.Set("csrf", "test-token")

	require.NoError(t, OverlaySubmitHandler(svc)(c))
	return rec.Code, rec.Body.String()
}

func TestOverlaySubmitHandler(t *testing.T) {
	t.Run("Success shows confirmation", func(t *testing.T) {
		svc, logs := newTestAuditService()
		code, body := postOverlay(t, svc, "jane@store.com", "https://store.com")

		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "data-overlay-submitted")
		assert.Contains(t, body, "<strong>jane@store.com</strong>")
		assert.NotContains(t, body, "<form")
		assert.Contains(t, logs.String(), "jane@store.com")
	})

	t.Run("Rejected request keeps values and shows retry message", func(t *testing.T) {
		svc, logs := newTestAuditService()
		code, body := postOverlay(t, svc, "jane@store.com", "store.com")

		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, body, "<form")
		assert.Contains(t, body, `value="jane@store.com"`)
		assert.Contains(t, body, `value="store.com"`)
		assert.Contains(t, body, overlay.RetryMessage)
		assert.Contains(t, body, `data-overlay-error="">`)
		assert.NotContains(t, body, "data-overlay-submitted")
		assert.NotContains(t, body, "readonly")
		assert.Empty(t, logs.String())
	})

	t.Run("Unreachable intake is called once", func(t *testing.T) {
		svc := &failingSubmitter{}
		_, body := postOverlay(t, svc, "jane@store.com", "https://store.com")

		assert.Equal(t, 1, svc.calls)
		assert.Contains(t, body, `data-overlay-error="">`)
		assert.Contains(t, body, `name="_csrf" value="test-token"`)
	})

	t.Run("Empty fields render the idle form", func(t *testing.T) {
		svc := &failingSubmitter{}
		code, body := postOverlay(t, svc, "", "")

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, 0, svc.calls)
		assert.Contains(t, body, "<form")
		assert.Contains(t, body, "Get Free AI Audit")
		assert.Contains(t, body, `data-overlay-error="" hidden>`)
	})
}
