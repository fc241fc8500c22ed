package transport

import (
	"io"

	"github.com/rawsend/rawreq/internal/request"
)

type Transport interface {
	Write(w io.Writer, req *request.Request) error
	Read(r io.Reader, resp *request.Response) error
}
