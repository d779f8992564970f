package wren

import "sync"

// Router maps exact request paths to handlers. Matching is byte-for-byte
// equality against the parsed request path; there is no prefix, wildcard or
// method distinction.
//
// The table is meant to be filled before Run and treated as read-only while
// serving. The lock makes concurrent registration safe in the data-race
// sense, but registering during serving is not supported behavior.
type Router struct {
	mu     sync.RWMutex
	routes map[string]Handler
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{routes: make(map[string]Handler)}
}

// Register inserts the path-to-handler mapping. A handler already
// registered for path is replaced silently.
func (r *Router) Register(path string, h Handler) {
	r.mu.Lock()
	r.routes[path] = h
	r.mu.Unlock()
}

// Lookup returns the handler registered for an exact path match.
func (r *Router) Lookup(path string) (Handler, bool) {
	r.mu.RLock()
	h, ok := r.routes[path]
	r.mu.RUnlock()
	return h, ok
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	r.mu.RLock()
	n := len(r.routes)
	r.mu.RUnlock()
	return n
}
