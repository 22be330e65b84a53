package download

import "fmt"

// DownloadError reports a failed image download. Op is "request", "status",
// "mkdir", "write" or "rename".
type DownloadError struct {
	Op   string
	URL  string
	Path string
	Err  error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s %s -> %s: %v", e.Op, e.URL, e.Path, e.Err)
}

func (e *DownloadError) Unwrap() error {
	return e.Err
}
