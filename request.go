package wren

import "github.com/goccy/go-json"

// Request is one parsed HTTP request. A Request is immutable once parsing
// completes; accessors return internal state that callers must not modify.
type Request struct {
	method   Method
	path     string
	protocol string
	params   map[string]string
	cookies  map[string]string
	headers  Header
	body     []byte
	raw      []byte
}

// Method returns the request method.
func (r *Request) Method() Method {
	return r.method
}

// Path returns the raw request-target, including any query string.
func (r *Request) Path() string {
	return r.path
}

// Protocol returns the protocol version literal, e.g. "HTTP/1.1".
func (r *Request) Protocol() string {
	return r.protocol
}

// Param returns the query parameter value for name, or "" if absent.
func (r *Request) Param(name string) string {
	return r.params[name]
}

// Params returns the parsed query parameters.
func (r *Request) Params() map[string]string {
	return r.params
}

// Cookie returns the cookie value for name, or "" if absent.
func (r *Request) Cookie(name string) string {
	return r.cookies[name]
}

// Cookies returns the cookies parsed from the Cookie header.
func (r *Request) Cookies() map[string]string {
	return r.cookies
}

// Headers returns the request headers.
func (r *Request) Headers() Header {
	return r.headers
}

// Body returns the request body bytes. The body is empty unless the request
// carried a parseable Content-Length.
func (r *Request) Body() []byte {
	return r.body
}

// Raw returns the exact byte sequence consumed from the wire, start-line
// through body. It is the payload transmitted when forwarding.
func (r *Request) Raw() []byte {
	return r.raw
}

// BindJSON decodes the request body into obj.
func (r *Request) BindJSON(obj interface{}) error {
	return json.Unmarshal(r.body, obj)
}

// appendHeaderLine parses one header line into the header map. Lines
// without a colon are skipped; names and values are whitespace-trimmed and
// values have embedded CR/LF stripped. A Cookie header is additionally
// parsed into the cookie map.
func (r *Request) appendHeaderLine(line string) {
	kv := splitHeaderLine(line)
	if kv == nil {
		return
	}
	name, value := kv[0], kv[1]
	r.headers.Set(name, value)
	if name == "Cookie" {
		r.cookies = parseCookies(value)
	}
}
