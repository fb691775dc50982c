package handlers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"net/http/httptest"
	"triggerby_web/config"
	"triggerby_web/models"
	"triggerby_web/services"

	"github.com/labstack/echo/v4"
)

const testAppURL = "https://triggerby.test"

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
		AppURL:      testAppURL,
	})

	return e, c, rec
}

// newTestAuditService returns a service that logs into the returned buffer
func newTestAuditService(hooks ...services.AuditHook) (*services.AuditService, *bytes.Buffer) {
	var buf bytes.Buffer
	return services.NewAuditService(log.New(&buf, "", 0), hooks...), &buf
}

type panicHook struct{}

func (panicHook) Name() string { return "panic" }

func (panicHook) AuditRequested(context.Context, models.AuditRequest) error {
	panic("boom")
}

// failingSubmitter stands in for an intake that cannot be reached
type failingSubmitter struct{ calls int }

func (f *failingSubmitter) RequestAudit(context.Context, models.AuditRequest) (*models.AuditResponse, error) {
	f.calls++
	return nil, errors.New("connection refused")
}
