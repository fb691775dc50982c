package services

import (
	"context"
	"log"
	"triggerby_web/models"
)

// AuditAcceptedMessage is returned to the client for every accepted request
const AuditAcceptedMessage = "Audit request received successfully"

// AuditHook is an integration point that runs after a request has been accepted.
// Hooks cannot reject a request: a hook error is logged and the client still
// receives the acknowledgement.
type AuditHook interface {
	Name() string
	AuditRequested(ctx context.Context, req models.AuditRequest) error
}

type requestIDKey struct{}

// WithRequestID attaches the HTTP request ID used to correlate audit log lines
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID stored by WithRequestID, or "-"
func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return "-"
}

// AuditService accepts audit requests. It keeps no state between requests:
// an accepted request is only written to the diagnostic log.
type AuditService struct {
	logger *log.Logger
	hooks  []AuditHook
}

// NewAuditService creates the intake service. Passing a nil logger uses the
// standard logger.
func NewAuditService(logger *log.Logger, hooks ...AuditHook) *AuditService {
	if logger == nil {
		logger = log.Default()
	}
	return &AuditService{
		logger: logger,
		hooks:  hooks,
	}
}

// Hooks returns the names of the registered integration hooks
func (s *AuditService) Hooks() []string {
	names := make([]string, 0, len(s.hooks))
	for _, h := range s.hooks {
		names = append(names, h.Name())
	}
	return names
}

// RequestAudit validates and records an audit request.
// Validation failures are returned as-is and produce no log entry.
func (s *AuditService) RequestAudit(ctx context.Context, req models.AuditRequest) (*models.AuditResponse, error) {
	if err := ValidateAuditRequest(req); err != nil {
		return nil, err
	}

	// Quoted so control characters and markup are recorded verbatim on one line
	s.logger.Printf("[INFO] Audit requested for %q - Store: %q (request %s)",
		req.Email, req.URL, RequestIDFrom(ctx))

	// Report generation and the analysis queue are not built yet; they plug in here
	for _, h := range s.hooks {
		if err := h.AuditRequested(ctx, req); err != nil {
			s.logger.Printf("[WARNING] Audit hook %s failed: %v", h.Name(), err)
		}
	}

	return &models.AuditResponse{
		OK:      true,
		Message: AuditAcceptedMessage,
	}, nil
}
