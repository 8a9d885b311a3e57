// Package httpx is a small HTTP/1.1 server written directly on top of
// net.Conn byte streams.
//
// A Server reads each request with a strict line-based parser (CRLF
// only, no folded headers), picks a Handler through an ordered Router,
// runs it inside a Middleware chain and writes the Response back in
// wire form. Connections stay open until the client sends
// "Connection: close" or the stream ends.
//
// Any handler error is answered with 404 Not Found; parse errors drop
// the connection without a response.
//
// Quick start:
//
//	s := &httpx.Server{
//	    Addr:       "127.0.0.1:4221",
//	    Router:     httpx.NewDefaultRouter("/tmp/"),
//	    Middleware: []httpx.Middleware{httpx.Gzip()},
//	}
//	if err := s.ListenAndServe(); err != nil { log.Fatal(err) }
//
// Custom handlers:
//
//	hello := httpx.HandlerFunc(func(r *httpx.Request) (*httpx.Response, error) {
//	    return httpx.NewResponse(httpx.StatusOK).WithBody("text/plain", []byte("hi")), nil
//	})
//	rt := httpx.NewRouter(nil, httpx.Route{Method: "GET", Pattern: "/hi", Handler: hello})
package httpx
