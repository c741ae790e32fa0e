package errors

import "net/http"

func NewValidation(message string) *Exception {
	return &Exception{
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}
