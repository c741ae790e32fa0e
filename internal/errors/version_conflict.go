package errors

import "net/http"

var ErrVersionConflict = &Exception{
	Message:    "Conflict detected. Task has been modified by another user.",
	StatusCode: http.StatusConflict,
}
