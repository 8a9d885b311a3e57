package http1

import (
	"bytes"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ResponseHead is the status line of a response. Version holds only the
// part after "HTTP/".
type ResponseHead struct {
	Version string
	Code    int
	Reason  string
}

// WriteResponse writes status line, headers, the blank line and body.
// Headers are written with the caller's casing in sorted order; names
// that are not valid tokens are dropped. No terminator follows the body.
func WriteResponse(w io.Writer, head ResponseHead, hdr map[string]string, body []byte) error {
	_, err := w.Write(AppendResponse(nil, head, hdr, body))
	return err
}

// AppendResponse appends the wire form of a response to dst.
func AppendResponse(dst []byte, head ResponseHead, hdr map[string]string, body []byte) []byte {
	reason := head.Reason
	if reason == "" {
		reason = defaultReason(head.Code)
	}
	buf := bytes.NewBuffer(dst)
	buf.WriteString("HTTP/")
	buf.WriteString(head.Version)
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(head.Code))
	buf.WriteByte(' ')
	buf.WriteString(reason)
	buf.WriteString("\r\n")

	keys := make([]string, 0, len(hdr))
	for k := range hdr {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !validHeaderName(k) {
			continue
		}
		buf.WriteString(k)
		buf.WriteString(": ")
		buf.WriteString(sanitizeHeaderValue(hdr[k]))
		buf.WriteString("\r\n")
	}
	buf.WriteString("\r\n")
	buf.Write(body)
	return buf.Bytes()
}

func defaultReason(code int) string {
	switch code {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 404:
		return "Not Found"
	default:
		return ""
	}
}

// validHeaderName reports whether k is a non-empty RFC 7230 token.
func validHeaderName(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			continue
		}
		switch c {
		case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
			continue
		default:
			return false
		}
	}
	return true
}

func sanitizeHeaderValue(v string) string {
	if v == "" {
		return v
	}
	// Remove CR/LF and other control chars except HTAB
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c == '\r' || c == '\n' || c == 0x7f {
			continue
		}
		if c < 0x20 && c != '\t' {
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
