package wren

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

// TestIsHTTPRequest tests the request start-line predicate.
func TestIsHTTPRequest(t *testing.T) {
	valid := []string{
		"GET / HTTP/1.1\r\n",
		"GET /index.html HTTP/1.0\r\n",
		"POST /u HTTP/1.1\r\n",
		"HEAD /a.b.c HTTP/2.0\r\n",
		"PUT /data HTTP/1.1\r\n",
		"DELETE /x HTTP/1.1\r\n",
		"CONNECT /t HTTP/1.1\r\n",
		"OPTIONS / HTTP/1.1\r\n",
		"TRACE / HTTP/1.1\r\n",
		"GET /search?q=1&lang=en HTTP/1.1\r\n",
	}
	for _, line := range valid {
		assert.True(t, IsHTTPRequest(line), "expected %q to be accepted", line)
	}

	invalid := []string{
		"",
		"HELLO\r\n",
		"GET /\r\n",
		"GET / HTTP/3.0\r\n",
		"GET / HTTP/1.1",
		"get / HTTP/1.1\r\n",
		"GET  / HTTP/1.1\r\n",
		"GARBAGE\r\n",
	}
	for _, line := range invalid {
		assert.False(t, IsHTTPRequest(line), "expected %q to be rejected", line)
	}
}

// TestIsHTTPResponse tests the response status-line predicate.
func TestIsHTTPResponse(t *testing.T) {
	assert.True(t, IsHTTPResponse("HTTP/1.1 200 OK\r\n"))
	assert.True(t, IsHTTPResponse("HTTP/1.0 404 Not Found\r\n"))
	assert.True(t, IsHTTPResponse("HTTP/1.1 503 Service Unavailable\r\n"))

	assert.False(t, IsHTTPResponse("HTTP/1.1 999 Nope\r\n"))
	assert.False(t, IsHTTPResponse("HTTP/3.0 200 OK\r\n"))
	assert.False(t, IsHTTPResponse("200 OK\r\n"))
}

// TestReadRequestStartLine tests start-line splitting into method, path and
// protocol.
func TestReadRequestStartLine(t *testing.T) {
	req, err := ReadRequest(newReader("GET /index.html HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	assert.Equal(t, MethodGet, req.Method())
	assert.Equal(t, "/index.html", req.Path())
	assert.Equal(t, "HTTP/1.1", req.Protocol())
	assert.Empty(t, req.Body())
}

// TestReadRequestNotHTTP tests that non-HTTP bytes yield ErrNotHTTPRequest.
func TestReadRequestNotHTTP(t *testing.T) {
	for _, input := range []string{"GARBAGE\r\n", "GET /\r\n", "", "\r\n"} {
		_, err := ReadRequest(newReader(input))
		assert.ErrorIs(t, err, ErrNotHTTPRequest, "input %q", input)
	}
}

// TestReadRequestHeaders tests header trimming, duplicate handling and
// lines without a colon.
func TestReadRequestHeaders(t *testing.T) {
	raw := "GET / HTTP/1.1\r\n" +
		"Host:  example  \r\n" +
		"X-Empty:\r\n" +
		"junk line without colon\r\n" +
		"Dup: one\r\n" +
		"Dup: two\r\n" +
		"\r\n"
	req, err := ReadRequest(newReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "example", req.Headers().Get("Host"))
	assert.True(t, req.Headers().Has("X-Empty"))
	assert.Equal(t, "", req.Headers().Get("X-Empty"))
	assert.Equal(t, "two", req.Headers().Get("Dup"))
	assert.False(t, req.Headers().Has("junk line without colon"))
}

// TestReadRequestQueryParams tests ?name=value parsing with last-write-wins
// duplicates.
func TestReadRequestQueryParams(t *testing.T) {
	req, err := ReadRequest(newReader("GET /search?q=1&lang=en&q=2 HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	assert.Equal(t, "/search?q=1&lang=en&q=2", req.Path())
	assert.Equal(t, "2", req.Param("q"))
	assert.Equal(t, "en", req.Param("lang"))
	assert.Equal(t, "", req.Param("missing"))
}

// TestReadRequestCookies tests Cookie header parsing into the cookie map.
func TestReadRequestCookies(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nCookie: a=1; b=2; c=3\r\n\r\n"
	req, err := ReadRequest(newReader(raw))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, req.Cookies())
	assert.Equal(t, "2", req.Cookie("b"))
}

// TestReadRequestBodyLength tests that exactly Content-Length bytes are
// consumed even when more bytes follow on the stream.
func TestReadRequestBodyLength(t *testing.T) {
	raw := "POST /u HTTP/1.1\r\nContent-Length: 5\r\n\r\nhelloTRAILING"
	r := newReader(raw)
	req, err := ReadRequest(r)
	require.NoError(t, err)

	assert.Equal(t, []byte("hello"), req.Body())

	rest := make([]byte, 16)
	n, _ := r.Read(rest)
	assert.Equal(t, "TRAILING", string(rest[:n]))
}

// TestReadRequestBodyNonPost tests that any recognized method with a
// Content-Length carries a body.
func TestReadRequestBodyNonPost(t *testing.T) {
	raw := "PUT /data HTTP/1.1\r\nContent-Length: 4\r\n\r\nabcd"
	req, err := ReadRequest(newReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), req.Body())
}

// TestReadRequestBadContentLength tests that an unparseable Content-Length
// ends parsing with an empty body instead of blocking.
func TestReadRequestBadContentLength(t *testing.T) {
	raw := "POST /u HTTP/1.1\r\nContent-Length: banana\r\n\r\nhello"
	req, err := ReadRequest(newReader(raw))
	require.NoError(t, err)
	assert.Empty(t, req.Body())
}

// TestReadRequestTruncatedHeaders tests that a short read at the header
// boundary keeps whatever was parsed.
func TestReadRequestTruncatedHeaders(t *testing.T) {
	raw := "GET / HTTP/1.1\r\nHost: x\r\n" // stream ends mid-headers
	req, err := ReadRequest(newReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "x", req.Headers().Get("Host"))
}

// TestReadRequestRaw tests that the raw bytes reproduce the wire input.
func TestReadRequestRaw(t *testing.T) {
	raw := "POST /u HTTP/1.1\r\nContent-Length: 5\r\nHost: x\r\n\r\nhello"
	req, err := ReadRequest(newReader(raw))
	require.NoError(t, err)
	assert.Equal(t, raw, string(req.Raw()))
}

// TestReadResponse tests status-line and body parsing of a backend reply.
func TestReadResponse(t *testing.T) {
	raw := "HTTP/1.1 200 OK\r\nContent-Length:3\r\nX-Tag: v\r\n\r\nabc"
	res, err := ReadResponse(newReader(raw))
	require.NoError(t, err)

	assert.Equal(t, "HTTP/1.1", res.Protocol())
	assert.Equal(t, "200", res.StatusCode())
	assert.Equal(t, "OK", res.StatusMsg())
	assert.Equal(t, []byte("abc"), res.Body())
	assert.Equal(t, int64(3), res.ContentLength())
	assert.Equal(t, "v", res.Headers().Get("X-Tag"))
}

// TestReadResponseNotHTTP tests rejection of non-HTTP replies.
func TestReadResponseNotHTTP(t *testing.T) {
	for _, input := range []string{"NOPE\r\n", "HTTP/1.1 299 Custom\r\n\r\n", ""} {
		_, err := ReadResponse(newReader(input))
		assert.ErrorIs(t, err, ErrNotHTTPResponse, "input %q", input)
	}
}

// TestParseMethod tests method token mapping.
func TestParseMethod(t *testing.T) {
	assert.Equal(t, MethodGet, ParseMethod("GET"))
	assert.Equal(t, MethodPost, ParseMethod("POST"))
	assert.Equal(t, MethodTrace, ParseMethod("TRACE"))
	assert.Equal(t, MethodDefault, ParseMethod("BREW"))
	assert.Equal(t, "GET", MethodGet.String())
	assert.Equal(t, "DEFAULT", MethodDefault.String())
}
