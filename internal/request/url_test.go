package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawsend/rawreq/internal/request"
)

func TestFromURLDefaultPortOmitted(t *testing.T) {
	r, err := request.FromURL("https://example.com/a")
	require.NoError(t, err)

	host, ok := r.Headers.Get("Host")
	require.True(t, ok)
	assert.Equal(t, "example.com", host)
	assert.Equal(t, "https", r.Scheme)
	assert.Equal(t, "/a", r.Path)
}

func TestFromURLExplicitPortKept(t *testing.T) {
	r, err := request.FromURL("https://example.com:8443/a")
	require.NoError(t, err)

	host, _ := r.Headers.Get("Host")
	assert.Equal(t, "example.com:8443", host)

	port, err := r.Port()
	require.NoError(t, err)
	assert.Equal(t, 8443, port)
}

func TestSetURLReplacesAllDerivedFields(t *testing.T) {
	r, err := request.FromURL("http://old.example.com:8080/old?a=1#top")
	require.NoError(t, err)
	require.NoError(t, r.SetURL("https://new.example.com/new?b=2#bottom"))

	host, _ := r.Headers.Get("Host")
	assert.Equal(t, "new.example.com", host)
	assert.Equal(t, "https", r.Scheme)
	assert.Equal(t, "/new", r.Path)
	assert.Equal(t, "bottom", r.Fragment)

	v, ok := r.Query.Get("b")
	require.True(t, ok)
	assert.Equal(t, "2", v)
	assert.False(t, r.Query.Has("a"), "old query must be gone")
}

func TestSetURLWithoutScheme(t *testing.T) {
	r := request.New()
	err := r.SetURL("example.com/path")
	assert.ErrorIs(t, err, request.ErrInvalidURL)
}

func TestURLSynthesis(t *testing.T) {
	r, err := request.FromURL("https://example.com:8443/search?q=go&lang=en#results")
	require.NoError(t, err)

	u, err := r.URL()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com:8443/search?q=go&lang=en#results", u)

	// dropping the port back to the scheme default removes the segment
	require.NoError(t, r.SetPort(443))
	u, err = r.URL()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/search?q=go&lang=en#results", u)
}

func TestURLWithoutHostHeader(t *testing.T) {
	r := request.New()
	_, err := r.URL()
	assert.ErrorIs(t, err, request.ErrMissingHostHeader)
}

func TestURLUnknownSchemeNoDefaultPort(t *testing.T) {
	r := request.New(request.WithScheme("gopher"))
	r.Headers.Set("Host", "example.com")
	_, err := r.URL()
	assert.ErrorIs(t, err, request.ErrUnknownDefaultPort)
}

func TestSchemePortsSubstitution(t *testing.T) {
	r, err := request.FromURL("gopher://example.com/doc",
		request.WithSchemePorts(map[string]int{"gopher": 70}))
	require.NoError(t, err)

	port, err := r.Port()
	require.NoError(t, err)
	assert.Equal(t, 70, port)

	u, err := r.URL()
	require.NoError(t, err)
	assert.Equal(t, "gopher://example.com/doc", u)
}

func TestEmptyPathDefaultsToSlash(t *testing.T) {
	r, err := request.FromURL("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "/", r.Path)
}
