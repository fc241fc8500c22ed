package request

import "errors"

// Error kinds surfaced by the model. Call sites wrap them with context, so
// match with [errors.Is] rather than equality.
var (
	ErrMissingHostHeader       = errors.New("missing Host header")
	ErrInvalidURL              = errors.New("invalid url")
	ErrMalformedRequestLine    = errors.New("malformed request line")
	ErrMalformedHeaderLine     = errors.New("malformed header line")
	ErrUnsupportedBodyEncoding = errors.New("unsupported body encoding")
	ErrKeyNotFound             = errors.New("body field not found")
	ErrUnknownDefaultPort      = errors.New("no default port for scheme")
)
