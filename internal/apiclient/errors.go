package apiclient

import (
	"errors"
	"fmt"
)

// HTTPError is returned for any response outside the 2xx/3xx range. The
// response body is not inspected.
type HTTPError struct {
	StatusCode int
	Method     string
	Endpoint   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("Error %d", e.StatusCode)
}

// IsStatus reports whether err is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}
