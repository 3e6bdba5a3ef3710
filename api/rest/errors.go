package rest

import (
	"fmt"
	"net/http"
)

// Err is an error carrying the http status code and the message shown to the client.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

func (e *Err) Error() string {
	return e.Message
}

var errInternal = &Err{
	StatusCode: http.StatusInternalServerError,
	Message:    "Internal server error",
}
