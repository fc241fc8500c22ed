package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// URL synthesizes scheme://host[:port]path[?query][#fragment] from the
// stored fields. The port segment appears only when it differs from the
// scheme default. Query values are written as stored, without re-encoding.
func (r *Request) URL() (string, error) {
	host, err := r.Host()
	if err != nil {
		return "", err
	}
	port, err := r.Port()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(r.Scheme)
	b.WriteString("://")
	b.WriteString(host)
	if def, ok := r.SchemePorts[r.Scheme]; !ok || port != def {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(port))
	}
	b.WriteString(r.Path)
	if r.Query.Len() > 0 {
		b.WriteByte('?')
		b.WriteString(r.Query.Encode())
	}
	if r.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(r.Fragment)
	}
	return b.String(), nil
}

// SetURL parses rawURL and replaces scheme, Host header, path, query and
// fragment as one group. The authority becomes the Host header verbatim.
// Fails with ErrInvalidURL when the URL carries no scheme.
func (r *Request) SetURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" {
		return fmt.Errorf("%w: no scheme in %q", ErrInvalidURL, rawURL)
	}
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	query := ParseQuery(u.RawQuery)

	// all five dependent fields commit together
	r.Scheme = u.Scheme
	r.Headers.Set("Host", u.Host)
	r.Path = path
	r.Query = query
	r.Fragment = u.EscapedFragment()
	return nil
}
