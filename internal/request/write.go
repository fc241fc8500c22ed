package request

import (
	"io"
	"strings"
)

// String renders the canonical wire text: request line, headers in insertion
// order, blank line, body. Every line break in the produced string is
// normalized to CRLF, including breaks inside the body. Bodies that must stay
// byte-exact cannot survive this; it is a documented property of the format,
// not an accident.
func (r *Request) String() string {
	target := r.Path
	if r.Query.Len() > 0 {
		target += "?" + r.Query.Encode()
	}
	if r.Fragment != "" {
		target += "#" + r.Fragment
	}

	var b strings.Builder
	b.WriteString(r.Method)
	b.WriteByte(' ')
	b.WriteString(target)
	b.WriteByte(' ')
	b.WriteString(r.Version)
	b.WriteByte('\n')
	r.Headers.VisitAll(func(name, value string) {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteByte('\n')
	})
	b.WriteByte('\n')
	b.WriteString(r.Body)

	raw := strings.ReplaceAll(b.String(), "\r", "")
	return strings.ReplaceAll(raw, "\n", "\r\n")
}

// Bytes returns the wire text as the exact payload to put on a connection.
func (r *Request) Bytes() []byte {
	return []byte(r.String())
}

func (r *Request) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
