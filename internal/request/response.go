package request

import (
	"io"
	"net/http"
)

// Response is what comes back from the transport. The model does not
// interpret it beyond the status line and headers; the body is handed to the
// caller as-is and must be closed by them.
type Response struct {
	Proto      string
	Status     string
	StatusCode int
	Header     http.Header

	ContentLength int64
	Body          io.ReadCloser
}
