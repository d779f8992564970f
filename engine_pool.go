package wren

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/panjf2000/ants/v2"
)

// serveMultithread runs the task-per-connection engine: an accept loop
// handing each connection to a fixed-size worker pool. Each worker parses
// one request, dispatches it, writes the response and closes the
// connection.
//
// Accept timeouts are control flow, not errors; other accept errors are
// logged and the loop continues. A closed listener ends the loop.
func (s *Server) serveMultithread(ln net.Listener) error {
	pool, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		ln.Close()
		return fmt.Errorf("worker pool: %w", err)
	}
	defer pool.Release()

	for {
		conn, err := ln.Accept()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			if errors.Is(err, net.ErrClosed) {
				return ErrServerClosed
			}
			logger.Error().Err(err).Msg("accept failed")
			continue
		}

		c := conn
		if err := pool.Submit(func() { s.serveConn(c) }); err != nil {
			logger.Error().Err(err).Msg("submit connection to worker pool failed")
			c.Close()
		}
	}
}

// serveConn drives one request/response cycle on conn and closes it.
// Bytes that do not parse as an HTTP request drop the connection silently.
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	if s.cfg.ReadTimeout > 0 {
		conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
	}
	req, err := ReadRequest(bufio.NewReader(conn))
	if err != nil {
		return
	}

	res := s.respond(req)
	if res == nil {
		return
	}

	if s.cfg.WriteTimeout > 0 {
		conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	}
	if _, err := conn.Write(res.Serialize()); err != nil {
		logger.Error().Err(err).Msgf("write response to %s failed", conn.RemoteAddr())
	}
}
