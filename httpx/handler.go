package httpx

// Handler produces a response for a request or fails. A failed handler
// never writes to the connection; the server answers with NotFound.
type Handler interface {
	Serve(*Request) (*Response, error)
}

type HandlerFunc func(*Request) (*Response, error)

func (f HandlerFunc) Serve(r *Request) (*Response, error) {
	return f(r)
}
