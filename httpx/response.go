package httpx

import (
	"strconv"

	"dqx0.com/go/h1serve/httpx/internal/http1"
)

// Status is the status line of a response.
type Status struct {
	Version string
	Code    int
	Reason  string
}

var (
	StatusOK       = Status{Version: "1.1", Code: 200, Reason: "OK"}
	StatusCreated  = Status{Version: "1.1", Code: 201, Reason: "Created"}
	StatusNotFound = Status{Version: "1.1", Code: 404, Reason: "Not Found"}
)

// Response header names keep the casing they were set with; middleware
// may replace Body and add or overwrite headers until it is serialized.
type Response struct {
	Status Status
	Header map[string]string
	Body   []byte
}

// NewResponse returns an empty response with status st.
func NewResponse(st Status) *Response {
	return &Response{Status: st, Header: map[string]string{}}
}

// WithBody sets the body together with its Content-Type and
// Content-Length headers.
func (r *Response) WithBody(contentType string, body []byte) *Response {
	if r.Header == nil {
		r.Header = map[string]string{}
	}
	r.Header["Content-Type"] = contentType
	r.Header["Content-Length"] = strconv.Itoa(len(body))
	r.Body = body
	return r
}

// Bytes returns the wire form of r.
func (r *Response) Bytes() []byte {
	head := http1.ResponseHead{Version: r.Status.Version, Code: r.Status.Code, Reason: r.Status.Reason}
	return http1.AppendResponse(nil, head, r.Header, r.Body)
}
