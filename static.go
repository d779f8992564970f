package wren

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// notFoundBody is the literal body of every static 404 response.
	notFoundBody = "<h1>404 Not Found</h1>"

	// postDefaultBody is the fixed body the default responder returns for
	// POST requests.
	postDefaultBody = "response test"
)

// initialResponse builds the default response for a request: the static
// file under root for GET, the fixed POST body for POST, an empty 200 for
// everything else. Handler dispatch passes this response to the registered
// handler, so an untouched response keeps the default behavior.
func initialResponse(root string, req *Request) *Response {
	res := NewResponse(req.Protocol())
	switch req.Method() {
	case MethodGet:
		body, err := readStaticFile(root, req.Path())
		if err != nil {
			res.SetStatus(StatusNotFound)
			res.SetBodyString(notFoundBody)
			return res
		}
		res.SetBody(body)
	case MethodPost:
		res.SetBodyString(postDefaultBody)
	}
	return res
}

// readStaticFile maps a request path under root and reads the file bytes.
// A request path with any ".." segment is refused, and the joined path is
// cleaned and must stay inside root. A refused path returns fs.ErrPermission
// and a missing file fs.ErrNotExist; the responder answers both with 404.
func readStaticFile(root, reqPath string) ([]byte, error) {
	if root == "" || !strings.HasPrefix(reqPath, "/") {
		return nil, fs.ErrNotExist
	}
	for _, seg := range strings.Split(reqPath, "/") {
		if seg == ".." {
			return nil, fs.ErrPermission
		}
	}
	target := filepath.Join(root, reqPath[1:])
	rootClean := filepath.Clean(root)
	prefix := rootClean
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if target != rootClean && !strings.HasPrefix(target, prefix) {
		return nil, fs.ErrPermission
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, "index.html")
	}
	return os.ReadFile(target)
}
