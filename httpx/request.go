package httpx

import "dqx0.com/go/h1serve/httpx/internal/http1"

// StartLine is the parsed request line. Version excludes the "HTTP/"
// prefix.
type StartLine struct {
	Method  string
	Path    string
	Version string
}

// Request is one parsed request. It is owned by the connection that read
// it for a single request/response cycle.
type Request struct {
	StartLine StartLine
	Header    Header
	Body      []byte
	// ConnID identifies the connection the request arrived on.
	ConnID string
}

// NewRequest builds a Request for handler tests and embedders that do
// not read from the wire.
func NewRequest(method, path string, hdr Header, body []byte) *Request {
	if hdr == nil {
		hdr = Header{}
	}
	norm := make(Header, len(hdr))
	for k, v := range hdr {
		norm.Set(k, v)
	}
	return &Request{
		StartLine: StartLine{Method: method, Path: path, Version: "1.1"},
		Header:    norm,
		Body:      body,
	}
}

func fromParsed(pr *http1.ParsedRequest) *Request {
	return &Request{
		StartLine: StartLine{
			Method:  pr.StartLine.Method,
			Path:    pr.StartLine.Path,
			Version: pr.StartLine.Version,
		},
		Header: Header(pr.Header),
		Body:   pr.Body,
	}
}
