package services

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
	"triggerby_web/models"
)

// Validation errors of the audit intake; the message is shown to the client verbatim
var (
	ErrAuditFieldsRequired = errors.New("Email and URL are required")
	ErrInvalidEmail        = errors.New("Invalid email format")
	ErrInvalidURL          = errors.New("Invalid URL format")
)

// local part, "@", domain containing a dot; no whitespace anywhere.
// \v, the Unicode separators and U+FEFF count as whitespace alongside \s.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// Schemes whose URLs must carry a host to be well formed
var hierarchicalSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
}

// IsAuditValidationError reports whether err is one of the client input errors
func IsAuditValidationError(err error) bool {
	return errors.Is(err, ErrAuditFieldsRequired) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidURL)
}

// ValidateAuditRequest checks presence, email shape and URL well-formedness, in that order
func ValidateAuditRequest(req models.AuditRequest) error {
	if req.Email == "" || req.URL == "" {
		return ErrAuditFieldsRequired
	}
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if !IsAbsoluteURL(req.URL) {
		return ErrInvalidURL
	}
	return nil
}

// IsAbsoluteURL reports whether raw parses as a well-formed absolute URL.
// Hierarchical schemes need a non-empty hostname; the "//" after their
// scheme may be missing or doubled up, as in "http:store.com".
func IsAbsoluteURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() {
		return false
	}
	if !hierarchicalSchemes[u.Scheme] || u.Hostname() != "" {
		return true
	}

	rest := strings.TrimLeft(raw[len(u.Scheme)+1:], `/\`)
	if rest == "" {
		return false
	}
	u, err = url.Parse(u.Scheme + "://" + rest)
	return err == nil && u.Hostname() != ""
}
