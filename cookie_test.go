package wren

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseCookies tests Cookie request-header parsing.
func TestParseCookies(t *testing.T) {
	cookies := parseCookies("a=1; b=2; c=3")
	assert.Equal(t, map[string]string{"a": "1", "b": "2", "c": "3"}, cookies)
}

// TestParseCookiesMalformed tests that empty and malformed parts are
// skipped.
func TestParseCookiesMalformed(t *testing.T) {
	cookies := parseCookies("a=1;; novalue ;=orphan; b=x=y")
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y"}, cookies)
}

// TestParseCookiesEmpty tests the empty header value.
func TestParseCookiesEmpty(t *testing.T) {
	assert.Empty(t, parseCookies(""))
}
