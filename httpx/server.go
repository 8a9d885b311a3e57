package httpx

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"dqx0.com/go/h1serve/httpx/internal/http1"
	"dqx0.com/go/h1serve/internal/obs"
)

// Server accepts connections and serves each on its own goroutine. Its
// fields must not change once Serve is called.
type Server struct {
	Addr       string
	Router     *Router
	Middleware []Middleware

	Logger obs.Logger
	Meter  obs.Meter
	// UserAgentParser, if set, adds the client's browser family to
	// access log lines.
	UserAgentParser UserAgentParser

	mu     sync.Mutex
	ln     net.Listener
	closed bool
}

func (s *Server) ListenAndServe() error {
	addr := s.Addr
	if addr == "" {
		addr = "127.0.0.1:4221"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts on l until it fails or Close is called, in which case
// it returns ErrServerClosed.
func (s *Server) Serve(l net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		l.Close()
		return ErrServerClosed
	}
	s.ln = l
	s.mu.Unlock()

	defer l.Close()
	s.logf(obs.Info, "listening on %s", l.Addr())
	for {
		c, err := l.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			return err
		}
		go s.serveConn(c)
	}
}

// Close stops accepting connections. Connections already being served
// run until their client closes or asks to close.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.ln != nil {
		return s.ln.Close()
	}
	return nil
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Server) serveConn(c net.Conn) {
	defer c.Close()
	id := uuid.NewString()
	s.logf(obs.Debug, "conn=%s accepted from %s", id, c.RemoteAddr())
	s.meter().Counter("h1serve_connections_total", 1)

	rr := &http1.Reader{BR: bufio.NewReader(c)}
	bw := bufio.NewWriter(c)
	for {
		pr, err := rr.ReadRequest()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logf(obs.Debug, "conn=%s closed by peer", id)
			} else {
				s.logf(obs.Warn, "conn=%s dropped: %v", id, err)
			}
			return
		}
		start := time.Now()
		r := fromParsed(pr)
		r.ConnID = id

		res := s.handle(r)
		closing := strings.EqualFold(r.Header.Get("connection"), "close")
		if closing {
			res.Header["Connection"] = "close"
		}

		wire := res.Bytes()
		if _, err := bw.Write(wire); err != nil {
			s.logf(obs.Warn, "conn=%s write failed: %v", id, err)
			return
		}
		if err := bw.Flush(); err != nil {
			s.logf(obs.Warn, "conn=%s flush failed: %v", id, err)
			return
		}
		s.access(r, res, len(wire), time.Since(start))
		if closing {
			s.logf(obs.Debug, "conn=%s closing on request", id)
			return
		}
	}
}

// handle runs the matched handler inside the middleware chain. Any
// handler error is logged and answered with the router's not-found
// handler so the client never sees it.
func (s *Server) handle(r *Request) *Response {
	rt := s.Router
	if rt == nil {
		rt = NewRouter(nil)
	}
	res, err := Chain(rt.Dispatch(r), s.Middleware...).Serve(r)
	if err == nil && res != nil {
		if res.Header == nil {
			res.Header = map[string]string{}
		}
		return res
	}
	if err != nil {
		s.logf(obs.Info, "conn=%s %s %s: %v", r.ConnID, r.StartLine.Method, r.StartLine.Path, err)
		s.meter().Counter("h1serve_handler_errors_total", 1, obs.Label{Key: "method", Value: r.StartLine.Method})
	}
	res, err = rt.NotFoundHandler().Serve(r)
	if err != nil || res == nil {
		res = NewResponse(StatusNotFound)
	}
	if res.Header == nil {
		res.Header = map[string]string{}
	}
	return res
}

func (s *Server) access(r *Request, res *Response, n int, d time.Duration) {
	status := strconv.Itoa(res.Status.Code)
	m := s.meter()
	m.Counter("h1serve_requests_total", 1,
		obs.Label{Key: "method", Value: r.StartLine.Method}, obs.Label{Key: "status", Value: status})
	m.Histogram("h1serve_request_duration_seconds", d.Seconds(),
		obs.Label{Key: "method", Value: r.StartLine.Method})

	family := ""
	if s.UserAgentParser != nil {
		family = s.UserAgentParser(r.Header.Get("user-agent"))
	}
	s.logf(obs.Info, "conn=%s %s %s %s %dB %s ua=%q",
		r.ConnID, r.StartLine.Method, r.StartLine.Path, status, n, d, family)
}

func (s *Server) logf(level obs.Level, format string, args ...interface{}) {
	if s.Logger == nil {
		return
	}
	s.Logger.Logf(level, format, args...)
}

func (s *Server) meter() obs.Meter {
	if s.Meter == nil {
		return obs.NopMeter{}
	}
	return s.Meter
}
