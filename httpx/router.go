package httpx

import "strings"

type MatchKind int

const (
	MatchPrefix MatchKind = iota
	MatchExact
)

// Route pairs a method and path predicate with a handler.
type Route struct {
	Method  string
	Pattern string
	Match   MatchKind
	Handler Handler
}

func (rt Route) matches(r *Request) bool {
	if r.StartLine.Method != rt.Method {
		return false
	}
	if rt.Match == MatchExact {
		return r.StartLine.Path == rt.Pattern
	}
	return strings.HasPrefix(r.StartLine.Path, rt.Pattern)
}

// Router evaluates routes in order; the first match wins. It is built
// once and read concurrently by every connection.
type Router struct {
	routes   []Route
	notFound Handler
}

// NewRouter returns a router over routes. notFound answers requests no
// route matches; nil means NotFound().
func NewRouter(notFound Handler, routes ...Route) *Router {
	if notFound == nil {
		notFound = NotFound()
	}
	return &Router{routes: append([]Route(nil), routes...), notFound: notFound}
}

// Dispatch never fails: it returns the fallback handler when no route
// matches.
func (rt *Router) Dispatch(r *Request) Handler {
	for _, route := range rt.routes {
		if route.matches(r) {
			return route.Handler
		}
	}
	return rt.notFound
}

// NotFoundHandler returns the router's fallback handler.
func (rt *Router) NotFoundHandler() Handler {
	return rt.notFound
}

// DefaultRoutes is the fixed route table of the server. root is the
// serving directory for the /files handlers and may be empty.
func DefaultRoutes(root string) []Route {
	return []Route{
		{Method: "GET", Pattern: "/", Match: MatchExact, Handler: Default()},
		{Method: "GET", Pattern: "/echo", Handler: Echo()},
		{Method: "GET", Pattern: "/user-agent", Handler: UserAgent()},
		{Method: "GET", Pattern: "/files", Handler: FileReader(root)},
		{Method: "POST", Pattern: "/files", Handler: FileWriter(root)},
	}
}

// NewDefaultRouter is NewRouter(NotFound(), DefaultRoutes(root)...).
func NewDefaultRouter(root string) *Router {
	return NewRouter(NotFound(), DefaultRoutes(root)...)
}
