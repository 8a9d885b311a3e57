package http1

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
)

var (
	ErrMalformedLineTerminator = errors.New("http1: line not terminated by CRLF")
	ErrMalformedStartLine      = errors.New("http1: malformed start line")
	ErrMalformedVersion        = errors.New("http1: malformed HTTP version")
	ErrMalformedHeaderLine     = errors.New("http1: malformed header line")
	ErrMalformedContentLength  = errors.New("http1: malformed Content-Length")
)

// StartLine is the first line of a request, e.g. "GET /echo/abc HTTP/1.1".
// Version holds only the part after "HTTP/".
type StartLine struct {
	Method  string
	Path    string
	Version string
}

// ParsedRequest is a minimal representation parsed from the wire.
// Header keys are lower-cased.
type ParsedRequest struct {
	StartLine StartLine
	Header    map[string]string
	Body      []byte
}

type Reader struct {
	BR *bufio.Reader
}

// ReadRequest reads one request: start line, header block and a body
// framed by Content-Length. It returns io.EOF only when the stream ends
// cleanly before the first byte of a request.
func (r *Reader) ReadRequest() (*ParsedRequest, error) {
	line, err := r.readLine()
	if err != nil {
		return nil, err
	}
	sl, err := ParseStartLine(line)
	if err != nil {
		return nil, err
	}
	hdr, err := r.readHeaders()
	if err != nil {
		return nil, err
	}
	body, err := r.readBody(hdr)
	if err != nil {
		return nil, err
	}
	return &ParsedRequest{StartLine: sl, Header: hdr, Body: body}, nil
}

// ParseStartLine splits line on single spaces into method, path and
// version.
func ParseStartLine(line string) (StartLine, error) {
	parts := strings.Split(line, " ")
	if len(parts) != 3 {
		return StartLine{}, ErrMalformedStartLine
	}
	proto := strings.Split(parts[2], "/")
	if len(proto) != 2 || proto[0] != "HTTP" || proto[1] == "" {
		return StartLine{}, ErrMalformedVersion
	}
	return StartLine{Method: parts[0], Path: parts[1], Version: proto[1]}, nil
}

func (r *Reader) readHeaders() (map[string]string, error) {
	h := make(map[string]string)
	for {
		line, err := r.readLine()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		if line == "" {
			break
		}
		k, v, ok := strings.Cut(line, ": ")
		if !ok || k == "" {
			return nil, ErrMalformedHeaderLine
		}
		h[strings.ToLower(k)] = v
	}
	return h, nil
}

func (r *Reader) readBody(h map[string]string) ([]byte, error) {
	v, ok := h["content-length"]
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n < 0 {
		return nil, ErrMalformedContentLength
	}
	if n == 0 {
		return nil, nil
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r.BR, body); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return body, nil
}

// readLine returns one line without its CRLF. A line ending in a bare LF
// is rejected.
func (r *Reader) readLine() (string, error) {
	b, err := r.BR.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(b) > 0 {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}
	if !bytes.HasSuffix(b, []byte("\r\n")) {
		return "", ErrMalformedLineTerminator
	}
	return string(b[:len(b)-2]), nil
}
