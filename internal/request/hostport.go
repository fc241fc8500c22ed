package request

import (
	"fmt"
	"strconv"
	"strings"
)

// Host returns the part of the Host header before the first colon.
func (r *Request) Host() (string, error) {
	hv, ok := r.Headers.Get("Host")
	if !ok {
		return "", ErrMissingHostHeader
	}
	host, _, _ := strings.Cut(hv, ":")
	return host, nil
}

// SetHost rewrites the host part of the Host header, keeping the current
// port. A port equal to the scheme default stays suppressed.
func (r *Request) SetHost(host string) error {
	port, err := r.Port()
	if err != nil {
		return err
	}
	r.setHostHeader(host, port)
	return nil
}

// Port returns the port from the Host header, or the scheme default when the
// header carries none.
func (r *Request) Port() (int, error) {
	hv, ok := r.Headers.Get("Host")
	if !ok {
		return 0, ErrMissingHostHeader
	}
	if _, p, ok := strings.Cut(hv, ":"); ok {
		port, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid port in Host header %q: %w", hv, err)
		}
		return port, nil
	}
	port, ok := r.SchemePorts[r.Scheme]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownDefaultPort, r.Scheme)
	}
	return port, nil
}

// SetPort rewrites the port part of the Host header. Setting the scheme
// default drops the port segment entirely.
func (r *Request) SetPort(port int) error {
	host, err := r.Host()
	if err != nil {
		return err
	}
	r.setHostHeader(host, port)
	return nil
}

func (r *Request) setHostHeader(host string, port int) {
	if def, ok := r.SchemePorts[r.Scheme]; ok && port == def {
		r.Headers.Set("Host", host)
	} else {
		r.Headers.Set("Host", host+":"+strconv.Itoa(port))
	}
}
