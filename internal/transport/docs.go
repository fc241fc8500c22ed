// package transport puts request bytes on a stream and reads HTTP/1.1
// responses back (RFC9112 message syntax, minus chunked decoding).
//
// the request side is deliberately thin: the whole point of a raw sender is
// that the serialized request text IS the payload, so Write copies the bytes
// verbatim instead of re-assembling the message the way net/http would.
package transport
