package utils

import (
	"net/http"
)

// HTTPError carries the status code a handler should answer with.
type HTTPError struct {
	Code    int    `json:"-"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func NewHTTPError(code int, message string) error {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// BadRequest creates a 400 Bad Request error
func BadRequest(message string) error {
	return NewHTTPError(http.StatusBadRequest, message)
}

// BadGateway creates a 502 error, used when the rent roll source cannot be read
func BadGateway(message string) error {
	return NewHTTPError(http.StatusBadGateway, message)
}
