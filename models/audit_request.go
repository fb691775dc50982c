package models

// AuditRequest is the transient lead-capture submission.
// It lives for a single request/response cycle and is never stored.
type AuditRequest struct {
	Email string `json:"email" form:"email"`
	URL   string `json:"url" form:"url"`
}

// AuditResponse acknowledges an accepted audit request
type AuditResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response of the intake endpoint
type ErrorResponse struct {
	Error string `json:"error"`
}
