package dialer

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/url"

	"github.com/rawsend/rawreq/internal/request"
	"github.com/rawsend/rawreq/internal/transport"
)

// ProxyConfig carries connection options for the proxy hop itself. It is
// passed through to the wire untouched; the request being tunneled is not
// rewritten for the proxy.
type ProxyConfig struct {
	TLSConfig      *tls.Config // used with an https proxy, falls back to [CoreDialer.TLSConfig]
	ResolveLocally bool
	ResolveConfig  *ResolveConfig // overrides the resolver config when resolving for the proxy
}

func (c *ProxyConfig) Clone() *ProxyConfig {
	if c == nil {
		return nil
	}
	return &ProxyConfig{
		TLSConfig:      c.TLSConfig.Clone(),
		ResolveLocally: c.ResolveLocally,
		ResolveConfig:  c.ResolveConfig.Clone(),
	}
}

var h1Transport = transport.HTTP1{}

var proxyPorts = map[string]string{"http": "80", "https": "443"}

func (d *CoreDialer) tryDialProxy(ctx context.Context, r *request.Request, host, port string) (net.Conn, error) {
	if d.GetProxy == nil {
		return nil, nil
	}
	proxy, err := d.GetProxy(ctx, r)
	if err != nil {
		return nil, err
	}
	if proxy == "" {
		return nil, nil
	}
	proxyU, err := url.Parse(proxy)
	if err != nil {
		return nil, err
	}
	return d.DialContextOverProxy(ctx, host, port, proxyU)
}

// DialContextOverProxy opens a CONNECT tunnel to host:port through an
// http/https proxy. This part of logic may be reused when wrapping
// *[CoreDialer] into a new custom [Dialer].
func (d *CoreDialer) DialContextOverProxy(ctx context.Context, host, port string, proxy *url.URL) (net.Conn, error) {
	if proxy.Scheme != "http" && proxy.Scheme != "https" { // TODO: socks
		return nil, errors.New("unsupported proxy scheme:" + proxy.Scheme)
	}
	hp := proxy.Host
	if proxy.Port() == "" {
		hp = net.JoinHostPort(proxy.Hostname(), proxyPorts[proxy.Scheme])
	}

	conn, err := zeroDialer.DialContext(ctx, "tcp", hp)
	if err != nil {
		return nil, err
	}

	if proxy.Scheme == "https" {
		tlsCfg := d.TLSConfig
		if d.ProxyConfig != nil && d.ProxyConfig.TLSConfig != nil {
			tlsCfg = d.ProxyConfig.TLSConfig
		}
		c := tls.Client(conn, tlsCfg)
		if err := c.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, err
		}
		conn = c
	}

	addr := host
	if d.ProxyConfig != nil && d.ProxyConfig.ResolveLocally {
		dnsCfg := d.ProxyConfig.ResolveConfig.Merge(d.ResolveConfig)
		if res, ok := dnsCfg.staticHost(addr); ok {
			addr = res
		} else {
			ips, err := d.lookup(ctx, dnsCfg, addr)
			if err != nil {
				conn.Close()
				return nil, err
			}
			addr = ips[rand.Intn(len(ips))].String()
		}
	}

	connReq := request.New(request.WithScheme("http"))
	connReq.Method = "CONNECT"
	connReq.Path = net.JoinHostPort(addr, port)
	connReq.Headers.Set("Host", net.JoinHostPort(host, port))
	if auth := proxy.User.String(); auth != "" {
		connReq.Headers.Set("Proxy-Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(auth)))
	}
	if err := h1Transport.Write(conn, connReq); err != nil {
		conn.Close()
		return nil, err
	}
	resp := &request.Response{}
	if err := h1Transport.Read(conn, resp); err != nil {
		conn.Close()
		return nil, err
	}
	if resp.StatusCode != 200 {
		s, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("proxy server returned error. status:%d, body:%s", resp.StatusCode, string(s))
	}
	return conn, nil
}

func (c *ResolveConfig) staticHost(host string) (string, bool) {
	if c == nil {
		return "", false
	}
	res, ok := c.StaticHosts[host]
	return res, ok
}
