package httpx

import (
	"bytes"
	"compress/gzip"
	"strconv"
	"strings"
)

// Middleware wraps a handler and returns one with the same contract.
type Middleware interface {
	Wrap(Handler) Handler
}

type MiddlewareFunc func(Handler) Handler

func (f MiddlewareFunc) Wrap(next Handler) Handler {
	return f(next)
}

// Chain wraps h with mws so that mws[0] is the outermost layer and sees
// the final response of everything inside it.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i].Wrap(h)
	}
	return h
}

// Gzip compresses non-empty response bodies when the request's
// Accept-Encoding lists gzip. Handler errors pass through unchanged.
func Gzip() Middleware {
	return MiddlewareFunc(func(next Handler) Handler {
		return HandlerFunc(func(r *Request) (*Response, error) {
			res, err := next.Serve(r)
			if err != nil {
				return nil, err
			}
			if len(res.Body) == 0 || !acceptsGzip(r.Header.Get("accept-encoding")) {
				return res, nil
			}
			var buf bytes.Buffer
			zw := gzip.NewWriter(&buf)
			if _, err := zw.Write(res.Body); err != nil {
				return nil, err
			}
			if err := zw.Close(); err != nil {
				return nil, err
			}
			if res.Header == nil {
				res.Header = map[string]string{}
			}
			res.Body = buf.Bytes()
			res.Header["Content-Encoding"] = "gzip"
			res.Header["Content-Length"] = strconv.Itoa(len(res.Body))
			return res, nil
		})
	})
}

func acceptsGzip(v string) bool {
	for _, tok := range strings.Split(v, ",") {
		if strings.TrimSpace(tok) == "gzip" {
			return true
		}
	}
	return false
}
