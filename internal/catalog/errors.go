package catalog

import "fmt"

// FetchError reports a failed catalog fetch: transport, HTTP status or body
// decoding.
type FetchError struct {
	Op  string // "request", "status" or "decode"
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch catalog %s %s: %v", e.Op, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
