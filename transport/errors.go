package transport

import (
	"encoding/json"
	"errors"
	"fmt"
)

// StatusError is returned when the backend responds with a non-2xx status.
// Payload is the raw response body exactly as received.
type StatusError struct {
	Status  int
	Payload []byte
}

func (e *StatusError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

// Message extracts the human-readable error from the server payload.
// Django REST Framework style bodies carry either an "error" or a "detail"
// field; anything else yields "".
func (e *StatusError) Message() string {
	var body struct {
		Err    string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(e.Payload, &body); err != nil {
		return ""
	}
	if body.Err != "" {
		return body.Err
	}
	return body.Detail
}

// IsStatus reports whether err is a StatusError carrying the given code.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}
