package errors

import "net/http"

var ErrColumnNotFound = &Exception{
	Message:    "Column not found",
	StatusCode: http.StatusNotFound,
}
