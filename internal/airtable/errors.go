package airtable

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind classifies an API failure so callers can branch without
// parsing the message.
type Kind string

const (
	KindAuthentication Kind = "AuthenticationError"
	KindPermission     Kind = "PermissionError"
	KindNotFound       Kind = "NotFoundError"
	KindValidation     Kind = "ValidationError"
	KindRateLimit      Kind = "RateLimitError"
	KindServer         Kind = "ServerError"
	KindTransport      Kind = "TransportError"
)

// Error is a failed Airtable API call. StatusCode is 0 for transport
// failures that never produced a response.
type Error struct {
	Kind       Kind
	StatusCode int
	Type       string // Airtable error type, e.g. "TABLE_NOT_FOUND"
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s - %s", e.Kind, e.Message)
}

func kindForStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized:
		return KindAuthentication
	case code == http.StatusForbidden:
		return KindPermission
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusUnprocessableEntity:
		return KindValidation
	case code == http.StatusTooManyRequests:
		return KindRateLimit
	case code >= 500:
		return KindServer
	default:
		return KindValidation
	}
}

// errorFromResponse maps a non-2xx response to an *Error.
// Airtable error bodies come in two shapes:
//
//	{"error": {"type": "TABLE_NOT_FOUND", "message": "..."}}
//	{"error": "NOT_FOUND"}
func errorFromResponse(code int, body []byte) *Error {
	e := &Error{Kind: kindForStatus(code), StatusCode: code}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(body, &envelope) == nil && len(envelope.Error) > 0 {
		var detail struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &detail) == nil && (detail.Type != "" || detail.Message != "") {
			e.Type = detail.Type
			e.Message = detail.Message
		} else {
			var s string
			if json.Unmarshal(envelope.Error, &s) == nil {
				e.Type = s
			}
		}
	}

	if e.Message == "" {
		if e.Type != "" {
			e.Message = e.Type
		} else {
			e.Message = http.StatusText(code)
		}
	}
	return e
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error()}
}
