// package request models a single HTTP/1.1 request as three mutually
// consistent representations: the structured fields on [Request], a URL
// string, and the raw wire text. Accessors recompute derived values from the
// stored fields on every call; nothing is cached.
package request

import (
	"os"
)

// DefaultSchemePorts maps schemes to the port implied when the Host header
// carries none. A [Request] takes its own reference at construction time so
// alternate tables can be substituted per instance.
var DefaultSchemePorts = map[string]int{
	"http":  80,
	"https": 443,
}

// Request is a plain mutable value. It is not safe for concurrent mutation;
// callers sharing one across goroutines must serialize access themselves.
//
// Host, port and url are not stored: they are derived from the Host header
// entry (and Scheme) on every access. A Request without a Host header cannot
// answer host/port/url queries and sending it will fail.
type Request struct {
	Method   string
	Path     string
	Query    *Args
	Fragment string // no leading "#"
	Version  string
	Scheme   string
	Headers  *Headers
	Body     string

	// SchemePorts is the default-port table consulted by Host/Port/URL.
	// Treat it as read-only after construction.
	SchemePorts map[string]int
}

// Option configures a Request at construction time.
type Option func(*Request)

// WithScheme overrides the default "https" scheme.
func WithScheme(scheme string) Option {
	return func(r *Request) { r.Scheme = scheme }
}

// WithSchemePorts substitutes the default-port table.
func WithSchemePorts(ports map[string]int) Option {
	return func(r *Request) { r.SchemePorts = ports }
}

// New returns a GET / HTTP/1.1 request with empty headers and body. The
// caller must supply a Host header (directly or through SetURL/Parse) before
// host, port or url can be derived.
func New(opts ...Option) *Request {
	r := &Request{
		Method:      "GET",
		Path:        "/",
		Query:       &Args{},
		Version:     "HTTP/1.1",
		Scheme:      "https",
		Headers:     NewHeaders(),
		SchemePorts: DefaultSchemePorts,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromURL constructs a request targeting rawURL. The URL must carry a scheme.
func FromURL(rawURL string, opts ...Option) (*Request, error) {
	r := New(opts...)
	if err := r.SetURL(rawURL); err != nil {
		return nil, err
	}
	return r, nil
}

// FromRaw constructs a request by parsing wire text. The text must contain a
// Host header.
func FromRaw(raw string, opts ...Option) (*Request, error) {
	r := New(opts...)
	if err := r.Parse(raw); err != nil {
		return nil, err
	}
	return r, nil
}

// FromFile reads path in full and parses its contents as wire text. I/O
// errors are returned as-is.
func FromFile(path string, opts ...Option) (*Request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return FromRaw(string(b), opts...)
}
