package errors

import (
	"errors"
	"net/http"
)

// Exception carries a stable transport status alongside the message so
// the HTTP boundary can map service failures without type switches.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
