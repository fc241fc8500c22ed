package dialer

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	"strconv"

	"github.com/rawsend/rawreq/internal/request"
)

var zeroDialer net.Dialer
var customDNSDialer = net.Dialer{
	Resolver: &customServerResolver,
}

func (d *CoreDialer) Dial(ctx context.Context, r *request.Request) (io.ReadWriteCloser, error) {
	host, err := r.Host()
	if err != nil {
		return nil, err
	}
	port, err := r.Port()
	if err != nil {
		return nil, err
	}
	portStr := strconv.Itoa(port)
	hp := net.JoinHostPort(host, portStr)

	conn, err := d.tryDialProxy(ctx, r, host, portStr)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		network, dialer, dialctx, dst := "tcp", &zeroDialer, ctx, hp
		if cfg := d.ResolveConfig; cfg != nil {
			if cfg.Network == "ip4" {
				network = "tcp4"
			} else if cfg.Network == "ip6" {
				network = "tcp6"
			}
			if static, ok := cfg.StaticHosts[host]; ok {
				dst = net.JoinHostPort(static, portStr)
			}
			if dns := cfg.CustomDNSServer; dns != "" {
				dialctx = dnsServerCtx{dialctx, dns}
				dialer = &customDNSDialer
			}
		}
		conn, err = dialer.DialContext(dialctx, network, dst)
		if err != nil {
			return nil, err
		}
	}
	if r.Scheme == "https" {
		config := d.TLSConfig.Clone()
		if config == nil {
			config = &tls.Config{}
		}
		if config.ServerName == "" {
			config.ServerName = host
		}
		c := tls.Client(conn, config)
		if err := c.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		conn = c
	}
	return conn, nil
}
