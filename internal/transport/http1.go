package transport

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"

	"github.com/rawsend/rawreq/internal/request"
)

type bodyCloser struct {
	io.Reader
	close func() error
}

func (b bodyCloser) Close() error { return b.close() }

type HTTP1 struct{}

// Write puts the request's serialized wire text on w, byte for byte.
func (t HTTP1) Write(w io.Writer, req *request.Request) error {
	_, err := req.WriteTo(w)
	return err
}

// Read parses an HTTP/1.1 response from r into resp. The body is bounded by
// Content-Length when one is present, otherwise it runs to EOF; closing
// resp.Body closes r when r is a Closer.
func (t HTTP1) Read(r io.Reader, resp *request.Response) error {
	closer := io.NopCloser
	if cr, ok := r.(io.Closer); ok {
		closer = func(r io.Reader) io.ReadCloser { return bodyCloser{r, cr.Close} }
	}
	tp := textproto.NewReader(bufio.NewReader(r))

	line, err := tp.ReadLine()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	proto, status, ok := strings.Cut(line, " ")
	if !ok {
		return errors.New("malformed HTTP response")
	}
	resp.Proto = proto
	resp.Status = strings.TrimLeft(status, " ")

	statusCode, _, _ := strings.Cut(resp.Status, " ")
	if len(statusCode) != 3 {
		return errors.New("malformed HTTP status code " + statusCode)
	}
	resp.StatusCode, err = strconv.Atoi(statusCode)
	if err != nil || resp.StatusCode < 0 {
		return errors.New("malformed HTTP status code")
	}

	mimeHeader, err := tp.ReadMIMEHeader()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	resp.Header = http.Header(mimeHeader)

	return t.readTransfer(tp.R, resp, closer)
}

func (t HTTP1) readTransfer(r io.Reader, resp *request.Response, closer func(io.Reader) io.ReadCloser) error {
	contentLens := resp.Header["Content-Length"]

	// Hardening against response smuggling, taken from the standard library:
	// multiple Content-Length headers must agree (RFC 7230 Section 3.3.2).
	if len(contentLens) > 1 {
		first := textproto.TrimString(contentLens[0])
		for _, ct := range contentLens[1:] {
			if first != textproto.TrimString(ct) {
				return fmt.Errorf("http: message cannot contain multiple Content-Length headers; got %q", contentLens)
			}
		}
		resp.Header.Del("Content-Length")
		resp.Header.Add("Content-Length", first)
		contentLens = resp.Header["Content-Length"]
	}

	cl := int64(-1)
	if len(contentLens) > 0 {
		if n, err := strconv.ParseUint(contentLens[0], 10, 63); err == nil {
			cl = int64(n)
		}
	}

	resp.ContentLength = cl
	switch {
	case cl > 0:
		resp.Body = closer(io.LimitReader(r, cl))
	case cl == 0:
		closer(nil).Close()
		resp.Body = http.NoBody
	default:
		// no Content-Length: hand over the raw stream. chunked responses are
		// not decoded, the caller sees the chunk framing as-is.
		resp.Body = closer(r)
	}
	return nil
}
