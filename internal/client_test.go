package internal_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawsend/rawreq/internal"
	"github.com/rawsend/rawreq/internal/dialer"
	"github.com/rawsend/rawreq/internal/request"
)

// fakeConn serves a canned response and records everything written to it.
type fakeConn struct {
	io.Reader
	wrote  bytes.Buffer
	closed bool
}

func (c *fakeConn) Write(p []byte) (int, error) { return c.wrote.Write(p) }
func (c *fakeConn) Close() error                { c.closed = true; return nil }

type fakeDialer struct {
	conn *fakeConn
}

func (d *fakeDialer) Dial(ctx context.Context, r *request.Request) (io.ReadWriteCloser, error) {
	return d.conn, nil
}

func (d *fakeDialer) Unwrap() dialer.Dialer { return nil }

func clientWith(conn *fakeConn) *internal.Client {
	c := &internal.Client{}
	c.UseDialer(func(dialer.Dialer) dialer.Dialer {
		return &fakeDialer{conn}
	})
	return c
}

func TestCtxDoWritesExactWireBytes(t *testing.T) {
	raw := "POST /login HTTP/1.1\n" +
		"Host: example.com\n" +
		"Content-Type: application/x-www-form-urlencoded\n" +
		"\n" +
		"user=admin"
	req, err := request.FromRaw(raw)
	require.NoError(t, err)

	conn := &fakeConn{Reader: strings.NewReader("HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nok")}
	resp, err := clientWith(conn).CtxDo(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t,
		"POST /login HTTP/1.1\r\n"+
			"Host: example.com\r\n"+
			"Content-Type: application/x-www-form-urlencoded\r\n"+
			"Content-Length: 10\r\n"+
			"\r\n"+
			"user=admin",
		conn.wrote.String())

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, int64(2), resp.ContentLength)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
	require.NoError(t, resp.Body.Close())
	assert.True(t, conn.closed)
}

func TestCtxDoRequiresHostHeader(t *testing.T) {
	req := request.New()
	_, err := (&internal.Client{}).CtxDo(context.Background(), req)
	assert.ErrorIs(t, err, request.ErrMissingHostHeader)
}

func TestCtxDoRejectsInvalidHostHeader(t *testing.T) {
	req := request.New()
	req.Headers.Set("Host", "exa mple.com")
	_, err := (&internal.Client{}).CtxDo(context.Background(), req)
	assert.Error(t, err)
}

func TestCtxDoMiddlewareOrder(t *testing.T) {
	req, err := request.FromRaw("GET / HTTP/1.1\nHost: example.com\n")
	require.NoError(t, err)

	conn := &fakeConn{Reader: strings.NewReader("HTTP/1.1 204 No Content\r\nContent-Length: 0\r\n\r\n")}
	c := clientWith(conn)

	var order []string
	mw := func(name string) internal.Middleware {
		return func(next internal.Handler) internal.Handler {
			return func(ctx context.Context, req *request.Request) (*request.Response, error) {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}
	c.Use(mw("first"), mw("second"))

	_, err = c.CtxDo(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}
