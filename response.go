package wren

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/valyala/bytebufferpool"
)

// Response is one HTTP response. Handlers may mutate a Response freely
// until Serialize is invoked; afterwards the raw bytes are authoritative.
type Response struct {
	protocol      string
	statusCode    string
	statusMsg     string
	headers       Header
	body          []byte
	contentLength int64
	raw           []byte
}

// NewResponse returns an empty 200 OK response speaking the given protocol.
// An empty protocol defaults to "HTTP/1.1".
func NewResponse(protocol string) *Response {
	if protocol == "" {
		protocol = "HTTP/1.1"
	}
	return &Response{
		protocol:   protocol,
		statusCode: statusCodeString(StatusOK),
		statusMsg:  StatusMessage(StatusOK),
		headers:    make(Header),
	}
}

// Protocol returns the protocol version literal.
func (r *Response) Protocol() string {
	return r.protocol
}

// StatusCode returns the numeric status code in its wire form, e.g. "200".
func (r *Response) StatusCode() string {
	return r.statusCode
}

// StatusMsg returns the reason phrase.
func (r *Response) StatusMsg() string {
	return r.statusMsg
}

// SetStatus sets the status code and its standard reason phrase.
func (r *Response) SetStatus(code int) *Response {
	r.statusCode = statusCodeString(code)
	r.statusMsg = StatusMessage(code)
	return r
}

// Headers returns the response headers.
func (r *Response) Headers() Header {
	return r.headers
}

// SetHeader sets a response header, replacing any existing value.
func (r *Response) SetHeader(name, value string) *Response {
	r.headers.Set(name, value)
	return r
}

// SetCookie adds a Set-Cookie header for c.
func (r *Response) SetCookie(c *Cookie) *Response {
	r.headers.Set("Set-Cookie", c.String())
	return r
}

// Body returns the response body bytes.
func (r *Response) Body() []byte {
	return r.body
}

// SetBody replaces the response body.
func (r *Response) SetBody(body []byte) *Response {
	r.body = body
	return r
}

// SetBodyString replaces the response body with s.
func (r *Response) SetBodyString(s string) *Response {
	r.body = []byte(s)
	return r
}

// AppendBody appends bytes to the response body.
func (r *Response) AppendBody(body []byte) *Response {
	r.body = append(r.body, body...)
	return r
}

// JSON encodes v as the response body and sets the Content-Type header.
func (r *Response) JSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	r.body = b
	r.headers.Set("Content-Type", "application/json")
	return nil
}

// ContentLength returns the content length parsed from an inbound response,
// or the serialized body length after Serialize.
func (r *Response) ContentLength() int64 {
	return r.contentLength
}

// Raw returns the serialized response bytes. It is nil until the response
// has been parsed from the wire or Serialize has run.
func (r *Response) Raw() []byte {
	return r.raw
}

// Serialize produces the canonical wire form of the response:
//
//	<protocol> <code> <msg> \r\n
//	Content-Length:<len(body)> \r\n
//	<name>:<value> \r\n ...
//	\r\n
//	<body>
//
// Any pre-existing Content-Length header is overwritten with the body
// length. The order of the remaining headers is unspecified. The result is
// stored as the response's raw bytes and returned.
func (r *Response) Serialize() []byte {
	r.contentLength = int64(len(r.body))
	r.headers.Set("Content-Length", strconv.FormatInt(r.contentLength, 10))

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	proto := r.protocol
	if proto == "" {
		proto = "HTTP/1.1"
	}
	buf.WriteString(proto)
	buf.WriteString(" ")
	buf.WriteString(r.statusCode)
	buf.WriteString(" ")
	buf.WriteString(r.statusMsg)
	buf.WriteString(" \r\n")

	buf.WriteString("Content-Length:")
	buf.WriteString(strconv.FormatInt(r.contentLength, 10))
	buf.WriteString(" \r\n")

	for name, value := range r.headers {
		if name == "Content-Length" {
			continue
		}
		buf.WriteString(name)
		buf.WriteString(":")
		buf.WriteString(value)
		buf.WriteString(" \r\n")
	}

	buf.WriteString("\r\n")
	buf.Write(r.body)

	r.raw = append([]byte(nil), buf.B...)
	return r.raw
}

// appendHeaderLine parses one header line into the header map, mirroring
// the request side. Content-Length is additionally tracked numerically.
func (r *Response) appendHeaderLine(line string) {
	kv := splitHeaderLine(line)
	if kv == nil {
		return
	}
	name, value := kv[0], kv[1]
	r.headers.Set(name, value)
	if name == "Content-Length" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil && n >= 0 {
			r.contentLength = n
		}
	}
}
