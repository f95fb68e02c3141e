package fetch

import "fmt"

// NetworkError indicates the transport failed or the server answered
// with a non-2xx status.
type NetworkError struct {
	URL    string
	Status int // HTTP status code, 0 when the transport itself failed
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError indicates the response body could not be interpreted as
// a syndication document.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
