package httpx

import "testing"

func TestHeaderCaseInsensitive(t *testing.T) {
	h := Header{}
	h.Set("User-Agent", "a")
	h.Set("user-agent", "b")
	if got := h.Get("USER-AGENT"); got != "b" {
		t.Fatalf("Get = %q, want %q", got, "b")
	}
	if got := len(h); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
	if _, ok := h.Lookup("Accept"); ok {
		t.Fatal("Lookup reported a missing header as present")
	}
	var nilH Header
	if got := nilH.Get("x"); got != "" {
		t.Fatalf("nil Get = %q", got)
	}
}

func TestResponseWithBody(t *testing.T) {
	res := NewResponse(StatusOK).WithBody("text/plain", []byte("abc"))
	if res.Header["Content-Type"] != "text/plain" || res.Header["Content-Length"] != "3" {
		t.Fatalf("headers=%v", res.Header)
	}
	want := "HTTP/1.1 200 OK\r\nContent-Length: 3\r\nContent-Type: text/plain\r\n\r\nabc"
	if got := string(res.Bytes()); got != want {
		t.Fatalf("wire=%q", got)
	}
}
