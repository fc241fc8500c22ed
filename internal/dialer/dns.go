package dialer

import (
	"context"
	"net"
)

// ResolveConfig overrides how target hostnames are resolved. The standard
// library only follows the system configuration (e.g. /etc/resolv.conf), so a
// custom DNS server has to be smuggled to a Go resolver through its
// [net.Resolver.Dial] hook.
type ResolveConfig struct {
	CustomDNSServer string
	Network         string            // one of "ip4", "ip6", default is "ip"
	StaticHosts     map[string]string // resembles /etc/hosts
}

func (c *ResolveConfig) Clone() *ResolveConfig {
	if c == nil {
		return nil
	}
	return &ResolveConfig{
		CustomDNSServer: c.CustomDNSServer,
		Network:         c.Network,
		StaticHosts:     c.StaticHosts,
	}
}

func (c *ResolveConfig) Merge(base *ResolveConfig) *ResolveConfig {
	if c == nil {
		return base.Clone()
	}
	merged := c.Clone()
	if base == nil {
		return merged
	}
	if merged.CustomDNSServer == "" {
		merged.CustomDNSServer = base.CustomDNSServer
	}
	if merged.Network == "" {
		merged.Network = base.Network
	}
	if merged.StaticHosts == nil {
		merged.StaticHosts = base.StaticHosts
	}
	return merged
}

// this type should not be used outside this file.
// prevents non-custom DNS server contexts to iterate through all keys
type dnsServerCtx struct {
	context.Context
	server string
}

var dnsServerCtxKey = &dnsServerCtx{nil, "dns-server"} // non-nil pointer to any object, definitely unique

func (c dnsServerCtx) Value(key interface{}) interface{} {
	if key == dnsServerCtxKey {
		return c.server
	}
	return c.Context.Value(key)
}

var customServerResolver = net.Resolver{
	PreferGo: true,
	Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
		if v, ok := ctx.Value(dnsServerCtxKey).(string); ok && v != "" {
			return zeroDialer.DialContext(ctx, network, v)
		}
		return zeroDialer.DialContext(ctx, network, address)
	},
}

// lookup resolves host with a Go resolver, honoring the Network and
// CustomDNSServer overrides of cfg when set.
func (d *CoreDialer) lookup(ctx context.Context, cfg *ResolveConfig, host string) ([]net.IP, error) {
	network, dns := "ip", ""
	if cfg != nil {
		if cfg.Network != "" {
			network = cfg.Network
		}
		dns = cfg.CustomDNSServer
	}
	return customServerResolver.LookupIP(dnsServerCtx{ctx, dns}, network, host)
}
