package request

import (
	"fmt"
	"strings"
)

// Parse replaces the structured fields with the contents of raw wire text.
// CRLF and bare LF line endings are both accepted. The text must contain a
// request line of exactly three tokens and a Host header.
//
// A failed Parse leaves the request partially updated; discard the instance
// instead of continuing to use it.
func (r *Request) Parse(raw string) error {
	raw = strings.ReplaceAll(raw, "\r", "")
	raw = strings.TrimSpace(raw)

	requestLine, rest, _ := strings.Cut(raw, "\n")
	tokens := strings.Split(requestLine, " ")
	if len(tokens) != 3 {
		return fmt.Errorf("%w: %q", ErrMalformedRequestLine, requestLine)
	}
	r.Method, r.Path, r.Version = tokens[0], tokens[1], tokens[2]
	if path, qs, ok := strings.Cut(r.Path, "?"); ok {
		r.Path = path
		r.Query = ParseQuery(qs)
	}

	headerBlock, body, ok := strings.Cut(rest, "\n\n")
	if !ok {
		headerBlock, body = rest, ""
	}
	r.Body = body

	for _, line := range strings.Split(headerBlock, "\n") {
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("%w: %q", ErrMalformedHeaderLine, line)
		}
		r.Headers.Set(strings.TrimSpace(name), strings.TrimSpace(value))
	}

	if !r.Headers.Has("Host") {
		return ErrMissingHostHeader
	}
	return nil
}
