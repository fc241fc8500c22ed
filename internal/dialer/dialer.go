package dialer

import (
	"context"
	"crypto/tls"
	"io"

	"github.com/rawsend/rawreq/internal/request"
)

// Dialers handle everything related to the actual connection: proxies,
// resolvers, TLS. They derive the dial target from the request's scheme and
// Host header.
type Dialer interface {
	// Dial returns a stream the serialized request is written to and the
	// response is read from.
	Dial(ctx context.Context, r *request.Request) (io.ReadWriteCloser, error)
	Unwrap() Dialer
}

// CoreDialer is the default [Dialer]. It opens one fresh connection per
// request; a raw sender must control the exact bytes on the wire, so
// connections are never pooled or reused across sends.
type CoreDialer struct {
	ResolveConfig *ResolveConfig

	TLSConfig *tls.Config // used for https targets, SNI defaults to the request host

	GetProxy    func(ctx context.Context, r *request.Request) (string, error)
	ProxyConfig *ProxyConfig
}

func (d *CoreDialer) Clone() *CoreDialer {
	return &CoreDialer{
		ResolveConfig: d.ResolveConfig.Clone(),
		TLSConfig:     d.TLSConfig.Clone(),
		GetProxy:      d.GetProxy,
		ProxyConfig:   d.ProxyConfig.Clone(),
	}
}

func (d *CoreDialer) Unwrap() Dialer {
	return nil
}
