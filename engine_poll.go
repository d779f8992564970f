package wren

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"net"
	"sync/atomic"

	"github.com/evanphx/wildcat"
	"github.com/panjf2000/gnet/v2"

	"github.com/wrenhttp/wren/log"
)

// connState is the per-connection state in event-poll mode: the token
// issued when the connection was registered with the poller and the
// head-completeness parser.
type connState struct {
	token  uint64
	parser *wildcat.HTTPParser
}

// pollEngine is the readiness-poll connection engine. All connections are
// driven from gnet's event loop; per-connection work happens between poll
// returns in the order the notifier delivers events.
type pollEngine struct {
	gnet.BuiltinEventEngine

	srv    *Server
	eng    gnet.Engine
	tokens atomic.Uint64
}

func (e *pollEngine) OnBoot(eng gnet.Engine) gnet.Action {
	e.eng = eng
	e.srv.setPollStop(func(ctx context.Context) error {
		return eng.Stop(ctx)
	})
	return gnet.None
}

func (e *pollEngine) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	c.SetContext(&connState{
		token:  e.tokens.Add(1),
		parser: wildcat.NewHTTPParser(),
	})
	return nil, gnet.None
}

// OnTraffic handles a readable connection: parse one request from the
// buffered bytes, dispatch, write the serialized response and close. The
// first readiness event is expected to carry a parseable request; anything
// that fails the request grammar drops the connection without a response.
// An incomplete header block is parsed as-is, the short read counting as
// end-of-headers.
func (e *pollEngine) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Peek(-1)
	st, _ := c.Context().(*connState)

	// Bytes wildcat rejects outright cannot become a request no matter how
	// much more arrives.
	if st != nil {
		if _, err := st.parser.Parse(buf); err != nil && err != wildcat.ErrMissingData {
			return gnet.Close
		}
	}

	req, err := ReadRequest(bufio.NewReader(bytes.NewReader(buf)))
	if err != nil {
		return gnet.Close
	}
	if st != nil {
		logger.Debug().Msgf("conn token %d: %s %s", st.token, req.Method(), req.Path())
	}

	res := e.srv.respond(req)
	if res == nil {
		return gnet.Close
	}

	if err := c.AsyncWrite(res.Serialize(), closeAfterWrite); err != nil {
		logger.Error().Err(err).Msgf("write response to %s failed", c.RemoteAddr())
		return gnet.Close
	}
	return gnet.None
}

// closeAfterWrite closes the connection once its single response has been
// flushed.
func closeAfterWrite(c gnet.Conn, err error) error {
	if err != nil {
		logger.Error().Err(err).Msg("async response write failed")
	}
	return c.Close()
}

// serveEventPoll runs the readiness-poll engine on addr. The listen socket
// is probed first so that a bind failure stays fatal and unretried, while a
// failure to initialize the poller itself gets exactly one retry.
func (s *Server) serveEventPoll(addr string) error {
	probe, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error().Err(err).Msgf("bind %s failed", addr)
		return fmt.Errorf("bind %s: %w", addr, err)
	}
	probe.Close()

	h := &pollEngine{srv: s}
	opts := []gnet.Option{
		gnet.WithLogger(log.NewPrintfAdapter(nil)),
		gnet.WithReuseAddr(true),
	}

	err = gnet.Run(h, "tcp://"+addr, opts...)
	if err != nil {
		logger.Warn().Err(err).Msg("event poll engine failed to start, retrying once")
		err = gnet.Run(h, "tcp://"+addr, opts...)
	}
	return err
}
