package http1

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
	"testing"
)

// parseResponse is a response-side reader used only to check that
// WriteResponse output decodes back to what was written.
func parseResponse(t *testing.T, raw []byte) (ResponseHead, map[string]string, []byte) {
	t.Helper()
	br := bufio.NewReader(bytes.NewReader(raw))
	status, err := br.ReadString('\n')
	if err != nil || !strings.HasSuffix(status, "\r\n") {
		t.Fatalf("status line %q: %v", status, err)
	}
	fields := strings.SplitN(strings.TrimSuffix(status, "\r\n"), " ", 3)
	if len(fields) != 3 || !strings.HasPrefix(fields[0], "HTTP/") {
		t.Fatalf("bad status line %q", status)
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		t.Fatalf("bad status code %q", fields[1])
	}
	head := ResponseHead{Version: strings.TrimPrefix(fields[0], "HTTP/"), Code: code, Reason: fields[2]}
	hdr := map[string]string{}
	for {
		line, err := br.ReadString('\n')
		if err != nil || !strings.HasSuffix(line, "\r\n") {
			t.Fatalf("header line %q: %v", line, err)
		}
		line = strings.TrimSuffix(line, "\r\n")
		if line == "" {
			break
		}
		k, v, ok := strings.Cut(line, ": ")
		if !ok {
			t.Fatalf("bad header line %q", line)
		}
		hdr[k] = v
	}
	body, _ := io.ReadAll(br)
	return head, hdr, body
}

func TestWriteResponse_Exact(t *testing.T) {
	var buf bytes.Buffer
	hdr := map[string]string{"Content-Type": "text/plain", "Content-Length": "3"}
	if err := WriteResponse(&buf, ResponseHead{Version: "1.1", Code: 200, Reason: "OK"}, hdr, []byte("abc")); err != nil {
		t.Fatalf("WriteResponse: %v", err)
	}
	want := "HTTP/1.1 200 OK\r\nContent-Length: 3\r\nContent-Type: text/plain\r\n\r\nabc"
	if buf.String() != want {
		t.Fatalf("wire=%q\nwant=%q", buf.String(), want)
	}
}

func TestWriteResponse_NoHeadersNoBody(t *testing.T) {
	got := string(AppendResponse(nil, ResponseHead{Version: "1.1", Code: 404}, nil, nil))
	if got != "HTTP/1.1 404 Not Found\r\n\r\n" {
		t.Fatalf("wire=%q", got)
	}
}

func TestWriteResponse_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		head ResponseHead
		hdr  map[string]string
		body []byte
	}{
		{"empty", ResponseHead{"1.1", 200, "OK"}, map[string]string{}, nil},
		{"text", ResponseHead{"1.1", 200, "OK"}, map[string]string{"Content-Type": "text/plain", "Content-Length": "5"}, []byte("hello")},
		{"binary", ResponseHead{"1.1", 200, "OK"}, map[string]string{"Content-Type": "application/octet-stream", "Content-Length": "4"}, []byte{0, '\r', '\n', 0xff}},
		{"created", ResponseHead{"1.1", 201, "Created"}, map[string]string{"Connection": "close"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			head, hdr, body := parseResponse(t, AppendResponse(nil, tc.head, tc.hdr, tc.body))
			if head != tc.head {
				t.Fatalf("head=%+v, want %+v", head, tc.head)
			}
			if len(hdr) != len(tc.hdr) {
				t.Fatalf("headers=%v, want %v", hdr, tc.hdr)
			}
			for k, v := range tc.hdr {
				if hdr[k] != v {
					t.Fatalf("header %s=%q, want %q", k, hdr[k], v)
				}
			}
			if !bytes.Equal(body, tc.body) {
				t.Fatalf("body=%q, want %q", body, tc.body)
			}
		})
	}
}

func TestWriteResponse_StripsControlBytes(t *testing.T) {
	got := string(AppendResponse(nil, ResponseHead{"1.1", 200, "OK"}, map[string]string{"X-Evil": "a\r\nInjected: b"}, nil))
	if strings.Contains(got, "\r\nInjected") {
		t.Fatalf("header injection not stripped: %q", got)
	}
}

func TestWriteResponse_DropsInvalidHeaderNames(t *testing.T) {
	got := string(AppendResponse(nil, ResponseHead{"1.1", 200, "OK"}, map[string]string{"Bad Name": "x", "X-Ok": "y"}, nil))
	want := "HTTP/1.1 200 OK\r\nX-Ok: y\r\n\r\n"
	if got != want {
		t.Fatalf("wire=%q, want %q", got, want)
	}
}
