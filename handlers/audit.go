package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"triggerby_web/models"
	"triggerby_web/services"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// auditPayload accepts any JSON value per field; toRequest coerces them
type auditPayload struct {
	Email any `json:"email"`
	URL   any `json:"url"`
}

func (p auditPayload) toRequest() models.AuditRequest {
	return models.AuditRequest{Email: coerceField(p.Email), URL: coerceField(p.URL)}
}

// coerceField turns a decoded JSON value into the string that is validated.
// Falsy values (null, false, 0, "") become "" and so count as missing;
// numbers and booleans use their literal text, arrays join their elements
// with "," and objects become "[object Object]".
func coerceField(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
		return "true"
	case float64:
		if val == 0 {
			return ""
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			if item == nil {
				continue
			}
			if b, ok := item.(bool); ok && !b {
				parts[i] = "false"
				continue
			}
			if f, ok := item.(float64); ok && f == 0 {
				parts[i] = "0"
				continue
			}
			parts[i] = coerceField(item)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// AuditHandler serves POST /api/audit.
//
//	200 {"ok":true,"message":...}  request accepted
//	400 {"error":...}              missing field, malformed email or URL
//	500 {"error":"Internal server error"}  anything else
func AuditHandler(svc *services.AuditService) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				c.Logger().Errorf("Audit API error: %v", r)
				err = c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
			}
		}()

		var payload auditPayload
		if decodeErr := c.Echo().JSONSerializer.Deserialize(c, &payload); decodeErr != nil {
			// A well-formed body that is not an object has no fields
			var typeErr *json.UnmarshalTypeError
			if !errors.As(decodeErr, &typeErr) {
				c.Logger().Errorf("Audit API error: %v", decodeErr)
				return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
			}
			payload = auditPayload{}
		}

		resp, reqErr := svc.RequestAudit(c.Request().Context(), payload.toRequest())
		if reqErr != nil {
			if services.IsAuditValidationError(reqErr) {
				return c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: reqErr.Error()})
			}
			c.Logger().Errorf("Audit API error: %v", reqErr)
			return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: internalErrorMessage})
		}

		return c.JSON(http.StatusOK, resp)
	}
}
