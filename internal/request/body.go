package request

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// BodyEncoding identifies how the body can be addressed by key. Dispatch is
// keyed on the exact Content-Type header value; parameters such as charset
// are not stripped.
type BodyEncoding int

const (
	EncodingUnsupported BodyEncoding = iota
	EncodingJSONObject
	EncodingFormURL
)

// BodyEncoding reports the keyed encoding of the current body.
func (r *Request) BodyEncoding() BodyEncoding {
	ct, _ := r.Headers.Get("Content-Type")
	switch ct {
	case contentTypeJSON:
		return EncodingJSONObject
	case contentTypeForm:
		return EncodingFormURL
	default:
		return EncodingUnsupported
	}
}

// GetBodyField reads a top-level body field. A missing key is reported
// through the bool, not as an error. Fails with ErrUnsupportedBodyEncoding
// unless the Content-Type is exactly application/json or
// application/x-www-form-urlencoded.
func (r *Request) GetBodyField(key string) (string, bool, error) {
	switch r.BodyEncoding() {
	case EncodingJSONObject:
		if err := r.checkJSONBody(); err != nil {
			return "", false, err
		}
		res := gjson.Get(r.Body, escapeJSONKey(key))
		if !res.Exists() {
			return "", false, nil
		}
		return res.String(), true, nil
	case EncodingFormURL:
		v, ok := r.parseForm().Get(key)
		return v, ok, nil
	default:
		return "", false, r.unsupportedBody()
	}
}

// SetBodyField writes a top-level body field and re-encodes the whole body.
// Form bodies are rewritten from the collapsed mapping in insertion order.
func (r *Request) SetBodyField(key, value string) error {
	switch r.BodyEncoding() {
	case EncodingJSONObject:
		if err := r.checkJSONBody(); err != nil {
			return err
		}
		body, err := sjson.Set(r.Body, escapeJSONKey(key), value)
		if err != nil {
			return fmt.Errorf("set body field %q: %w", key, err)
		}
		r.Body = body
		return nil
	case EncodingFormURL:
		form := r.parseForm()
		form.Set(key, value)
		r.Body = form.Encode()
		return nil
	default:
		return r.unsupportedBody()
	}
}

// DeleteBodyField removes a top-level body field. Fails with ErrKeyNotFound
// when the key is absent.
func (r *Request) DeleteBodyField(key string) error {
	switch r.BodyEncoding() {
	case EncodingJSONObject:
		if err := r.checkJSONBody(); err != nil {
			return err
		}
		path := escapeJSONKey(key)
		if !gjson.Get(r.Body, path).Exists() {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		body, err := sjson.Delete(r.Body, path)
		if err != nil {
			return fmt.Errorf("delete body field %q: %w", key, err)
		}
		r.Body = body
		return nil
	case EncodingFormURL:
		form := r.parseForm()
		if !form.Del(key) {
			return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		r.Body = form.Encode()
		return nil
	default:
		return r.unsupportedBody()
	}
}

// parseForm decodes the body as &-joined key=value pairs. Unlike query-string
// parsing, a duplicate key keeps its first occurrence. Keys and values are
// percent-decoded with + treated as space; pairs that fail to decode are kept
// raw.
func (r *Request) parseForm() *Args {
	form := &Args{}
	if r.Body == "" {
		return form
	}
	for _, pair := range strings.Split(r.Body, "&") {
		k, v, _ := strings.Cut(pair, "=")
		k = queryUnescape(k)
		if form.Has(k) {
			continue // first occurrence wins
		}
		form.Set(k, queryUnescape(v))
	}
	return form
}

func queryUnescape(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

func (r *Request) checkJSONBody() error {
	if r.Body == "" {
		return nil
	}
	if !gjson.Valid(r.Body) || !gjson.Parse(r.Body).IsObject() {
		return fmt.Errorf("body is not a valid json object")
	}
	return nil
}

func (r *Request) unsupportedBody() error {
	ct, _ := r.Headers.Get("Content-Type")
	return fmt.Errorf("%w: Content-Type %q", ErrUnsupportedBodyEncoding, ct)
}

// gjson/sjson treat some characters as path syntax; body keys are literal.
var jsonKeyEscaper = strings.NewReplacer(
	"\\", "\\\\", ".", "\\.", "*", "\\*", "?", "\\?", "|", "\\|", "#", "\\#", "@", "\\@",
)

func escapeJSONKey(key string) string {
	return jsonKeyEscaper.Replace(key)
}
