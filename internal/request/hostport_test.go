package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawsend/rawreq/internal/request"
)

func TestHostPortDerivedFromHostHeader(t *testing.T) {
	r := request.New()
	r.Headers.Set("Host", "example.com:8080")

	host, err := r.Host()
	require.NoError(t, err)
	assert.Equal(t, "example.com", host)

	port, err := r.Port()
	require.NoError(t, err)
	assert.Equal(t, 8080, port)
}

func TestPortFallsBackToSchemeDefault(t *testing.T) {
	r := request.New() // scheme https
	r.Headers.Set("Host", "example.com")

	port, err := r.Port()
	require.NoError(t, err)
	assert.Equal(t, 443, port)

	r.Scheme = "http"
	port, err = r.Port()
	require.NoError(t, err)
	assert.Equal(t, 80, port)
}

func TestPortUnknownScheme(t *testing.T) {
	r := request.New(request.WithScheme("gopher"))
	r.Headers.Set("Host", "example.com")
	_, err := r.Port()
	assert.ErrorIs(t, err, request.ErrUnknownDefaultPort)
}

func TestSetPortSuppressesDefault(t *testing.T) {
	r := request.New() // https
	r.Headers.Set("Host", "example.com:8080")

	require.NoError(t, r.SetPort(443))
	host, _ := r.Headers.Get("Host")
	assert.Equal(t, "example.com", host)

	// and setting it again is a no-op
	require.NoError(t, r.SetPort(443))
	host, _ = r.Headers.Get("Host")
	assert.Equal(t, "example.com", host)
}

func TestSetPortNonDefault(t *testing.T) {
	r := request.New()
	r.Headers.Set("Host", "example.com")

	require.NoError(t, r.SetPort(8443))
	host, _ := r.Headers.Get("Host")
	assert.Equal(t, "example.com:8443", host)
}

func TestSetHostKeepsNonDefaultPort(t *testing.T) {
	r := request.New()
	r.Headers.Set("Host", "example.com:8443")

	require.NoError(t, r.SetHost("other.com"))
	host, _ := r.Headers.Get("Host")
	assert.Equal(t, "other.com:8443", host)
}

func TestSetHostDropsDefaultPort(t *testing.T) {
	r := request.New()
	r.Headers.Set("Host", "example.com")

	require.NoError(t, r.SetHost("other.com"))
	host, _ := r.Headers.Get("Host")
	assert.Equal(t, "other.com", host)
}

func TestHostPortWithoutHostHeader(t *testing.T) {
	r := request.New()

	_, err := r.Host()
	assert.ErrorIs(t, err, request.ErrMissingHostHeader)
	_, err = r.Port()
	assert.ErrorIs(t, err, request.ErrMissingHostHeader)
	assert.ErrorIs(t, r.SetHost("example.com"), request.ErrMissingHostHeader)
	assert.ErrorIs(t, r.SetPort(80), request.ErrMissingHostHeader)
}

func TestPortInvalidInHostHeader(t *testing.T) {
	r := request.New()
	r.Headers.Set("Host", "example.com:abc")
	_, err := r.Port()
	assert.Error(t, err)
}
