package wren

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/wrenhttp/wren/log"
)

// Server is an embeddable HTTP/1.x application server. Handlers are
// registered against exact paths before Run; Run binds the listener and
// serves one request/response per TCP connection until the process ends or
// the server is shut down.
type Server struct {
	cfg    Config
	router *Router

	mu       sync.Mutex
	listener net.Listener
	pollStop func(context.Context) error
}

// New creates a server with the given configuration, or DefaultConfig when
// none is supplied. Zero-valued fields fall back to their defaults.
func New(cfg ...Config) *Server {
	c := DefaultConfig()
	if len(cfg) > 0 {
		c = normalizeConfig(cfg[0])
	}
	return &Server{
		cfg:    c,
		router: NewRouter(),
	}
}

// normalizeConfig fills zero-valued fields from DefaultConfig.
func normalizeConfig(c Config) Config {
	d := DefaultConfig()
	if c.ListenAddr == "" {
		c.ListenAddr = d.ListenAddr
	}
	if c.Port == "" {
		c.Port = d.Port
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	return c
}

// Config returns the server's configuration.
func (s *Server) Config() Config {
	return s.cfg
}

// Router returns the server's router.
func (s *Server) Router() *Router {
	return s.router
}

// Register maps an exact request path to a handler. Registration must
// happen before Run; a handler already registered for path is replaced.
func (s *Server) Register(path string, h Handler) {
	s.router.Register(path, h)
}

// Run binds the listen socket and serves until the server is shut down. A
// bind failure is fatal and returned without retry. Run does not return
// nil while the server is healthy.
func (s *Server) Run() error {
	initLogger(log.InfoLevel)

	addr := net.JoinHostPort(s.cfg.ListenAddr, s.cfg.Port)
	if !s.cfg.DisableStartupMessage {
		displayStartupMessage(addr, s.cfg.NetModel)
	}

	if s.cfg.NetModel == EventPoll {
		return s.serveEventPoll(addr)
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error().Err(err).Msgf("bind %s failed", addr)
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()
	return s.serveMultithread(ln)
}

// Shutdown stops the serving loop. In multithread mode the listener is
// closed and in-flight connections finish on their own; in event-poll mode
// the poll engine is stopped with ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	ln := s.listener
	stop := s.pollStop
	s.mu.Unlock()

	if stop != nil {
		return stop(ctx)
	}
	if ln != nil {
		return ln.Close()
	}
	return nil
}

func (s *Server) setPollStop(stop func(context.Context) error) {
	s.mu.Lock()
	s.pollStop = stop
	s.mu.Unlock()
}

// respond builds the response for a parsed request: the static responder's
// initial response, replaced by the registered handler's result when the
// path has one. A handler panic yields nil and the caller drops the
// connection without writing.
func (s *Server) respond(req *Request) (res *Response) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Msgf("handler panic on %s: %v", req.Path(), r)
			res = nil
		}
	}()

	res = initialResponse(s.cfg.RootPath, req)
	if h, ok := s.router.Lookup(req.Path()); ok {
		res = h(req, res)
	}
	return res
}

// std is the process-wide default server used by the package-level
// Register and Run functions.
var std = New()

// Register maps a path to a handler on the default server.
func Register(path string, h Handler) {
	std.Register(path, h)
}

// Run starts the default server, optionally replacing its configuration
// first.
func Run(cfg ...Config) error {
	if len(cfg) > 0 {
		std.cfg = normalizeConfig(cfg[0])
	}
	return std.Run()
}
