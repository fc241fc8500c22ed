package internal

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"

	"github.com/rawsend/rawreq/internal/dialer"
	"github.com/rawsend/rawreq/internal/request"
	"github.com/rawsend/rawreq/internal/transport"
)

type Handler = func(ctx context.Context, req *request.Request) (*request.Response, error)
type Middleware func(next Handler) Handler

var h1 = transport.HTTP1{}

// Client sends the exact serialized bytes of a [request.Request] over a
// connection obtained from its [dialer.Dialer]. A zero value Client is ready
// to use: it dials directly and logs nowhere.
type Client struct {
	middlewares []Middleware
	dialer      dialer.Dialer
	logger      *zerolog.Logger
}

// Use appends mws to the chain. Middlewares run in the order they were added,
// wrapping the dial-write-read core.
func (c *Client) Use(mws ...Middleware) {
	c.middlewares = append(c.middlewares, mws...)
}

// UseDialer replaces the dialer with wrap(current). wrap receives a
// *[dialer.CoreDialer] when no dialer was set before.
func (c *Client) UseDialer(wrap func(dialer.Dialer) dialer.Dialer) {
	if c.dialer == nil {
		c.dialer = &dialer.CoreDialer{}
	}
	c.dialer = wrap(c.dialer)
}

// UseLogger routes send-path debug logs to l.
func (c *Client) UseLogger(l zerolog.Logger) {
	c.logger = &l
}

func (c *Client) log() *zerolog.Logger {
	if c.logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return c.logger
}

var defaultDialer = &dialer.CoreDialer{}

func (c *Client) dial(ctx context.Context, req *request.Request) (io.ReadWriteCloser, error) {
	if c.dialer != nil {
		return c.dialer.Dial(ctx, req)
	}
	return defaultDialer.Dial(ctx, req)
}

// CtxDo sends req and reads one response. It requires a Host header, sets
// Content-Length to the byte length of the body, and hands the wire text to
// the connection verbatim. The response body holds the connection open until
// closed.
func (c *Client) CtxDo(ctx context.Context, req *request.Request) (*request.Response, error) {
	hv, ok := req.Headers.Get("Host")
	if !ok {
		return nil, request.ErrMissingHostHeader
	}
	if !httpguts.ValidHostHeader(hv) {
		return nil, fmt.Errorf("invalid Host header %q", hv)
	}
	req.Headers.Set("Content-Length", strconv.Itoa(len(req.Body)))

	next := func(ctx context.Context, req *request.Request) (*request.Response, error) {
		u, err := req.URL()
		if err != nil {
			return nil, err
		}
		id := uuid.NewString()
		c.log().Debug().Str("id", id).Str("method", req.Method).Str("url", u).Msg("sending raw request")
		conn, err := c.dial(ctx, req)
		if err != nil {
			return nil, err
		}
		if err := h1.Write(conn, req); err != nil {
			conn.Close()
			return nil, err
		}
		resp := &request.Response{}
		if err := h1.Read(conn, resp); err != nil {
			conn.Close()
			return nil, err
		}
		c.log().Debug().Str("id", id).Int("status", resp.StatusCode).Msg("response received")
		return resp, nil
	}
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		next = c.middlewares[i](next)
	}
	return next(ctx, req)
}
