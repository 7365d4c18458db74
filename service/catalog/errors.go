package catalog

import "fmt"

// StatusError is returned when the catalog API could not be reached, answered
// outside the 2xx range, or sent a body that is not JSON. StatusCode is 0 when
// no response was received.
type StatusError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("catalog API %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("catalog API %s: status %d: %v", e.URL, e.StatusCode, e.Err)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
