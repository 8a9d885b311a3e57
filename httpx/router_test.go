package httpx

import "testing"

func tagged(tag string) Handler {
	return HandlerFunc(func(*Request) (*Response, error) {
		return NewResponse(StatusOK).WithBody("text/plain", []byte(tag)), nil
	})
}

func dispatchTag(t *testing.T, rt *Router, method, path string) string {
	t.Helper()
	res, err := rt.Dispatch(NewRequest(method, path, nil, nil)).Serve(nil)
	if err != nil {
		t.Fatalf("Serve: %v", err)
	}
	return string(res.Body)
}

func TestRouterOrder(t *testing.T) {
	rt := NewRouter(tagged("notfound"),
		Route{Method: "GET", Pattern: "/", Match: MatchExact, Handler: tagged("default")},
		Route{Method: "GET", Pattern: "/echo", Handler: tagged("echo")},
		Route{Method: "GET", Pattern: "/user-agent", Handler: tagged("ua")},
		Route{Method: "GET", Pattern: "/files", Handler: tagged("read")},
		Route{Method: "POST", Pattern: "/files", Handler: tagged("write")},
	)
	cases := []struct {
		method, path, want string
	}{
		{"GET", "/", "default"},
		{"GET", "/echo/abc", "echo"},
		{"GET", "/echoes", "echo"},
		{"GET", "/user-agent", "ua"},
		{"GET", "/files/a", "read"},
		{"POST", "/files/a", "write"},
		{"POST", "/", "notfound"},
		{"PUT", "/files/a", "notfound"},
		{"GET", "/index.html", "notfound"},
		{"POST", "/echo/abc", "notfound"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			if got := dispatchTag(t, rt, tc.method, tc.path); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRouterFirstMatchWins(t *testing.T) {
	rt := NewRouter(nil,
		Route{Method: "GET", Pattern: "/a", Handler: tagged("first")},
		Route{Method: "GET", Pattern: "/a/b", Handler: tagged("second")},
	)
	if got := dispatchTag(t, rt, "GET", "/a/b"); got != "first" {
		t.Fatalf("got %q, want first", got)
	}
}

func TestRouterDefaultNotFound(t *testing.T) {
	rt := NewRouter(nil)
	res, err := rt.Dispatch(NewRequest("GET", "/", nil, nil)).Serve(nil)
	if err != nil {
		t.Fatalf("Serve: %v", err)
	}
	if res.Status != StatusNotFound {
		t.Fatalf("status=%+v", res.Status)
	}
}
