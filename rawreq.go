// Package rawreq models a single HTTP/1.1 request as three mutually
// consistent representations (structured fields, a URL string, and the raw
// wire text) and sends the exact serialized bytes over a pluggable dialer.
package rawreq

import (
	"github.com/rawsend/rawreq/internal"
	"github.com/rawsend/rawreq/internal/request"
)

type Client = internal.Client
type Handler = internal.Handler
type Middleware = internal.Middleware

type Request = request.Request
type Response = request.Response
type Headers = request.Headers
type Args = request.Args
type Option = request.Option

type BodyEncoding = request.BodyEncoding

const (
	EncodingUnsupported = request.EncodingUnsupported
	EncodingJSONObject  = request.EncodingJSONObject
	EncodingFormURL     = request.EncodingFormURL
)

var (
	ErrMissingHostHeader       = request.ErrMissingHostHeader
	ErrInvalidURL              = request.ErrInvalidURL
	ErrMalformedRequestLine    = request.ErrMalformedRequestLine
	ErrMalformedHeaderLine     = request.ErrMalformedHeaderLine
	ErrUnsupportedBodyEncoding = request.ErrUnsupportedBodyEncoding
	ErrKeyNotFound             = request.ErrKeyNotFound
	ErrUnknownDefaultPort      = request.ErrUnknownDefaultPort
)

// New returns an empty GET / HTTP/1.1 request, see [request.New].
func New(opts ...Option) *Request { return request.New(opts...) }

// FromURL constructs a request targeting a URL, which must carry a scheme.
func FromURL(rawURL string, opts ...Option) (*Request, error) {
	return request.FromURL(rawURL, opts...)
}

// FromRaw constructs a request from wire text containing a Host header.
func FromRaw(raw string, opts ...Option) (*Request, error) { return request.FromRaw(raw, opts...) }

// FromFile reads a file in full and parses its contents as wire text.
func FromFile(path string, opts ...Option) (*Request, error) { return request.FromFile(path, opts...) }

func WithScheme(scheme string) Option { return request.WithScheme(scheme) }

func WithSchemePorts(ports map[string]int) Option { return request.WithSchemePorts(ports) }
