package httpx

import "strings"

// Header holds request headers keyed by lower-cased name.
type Header map[string]string

// Get looks key up case-insensitively.
func (h Header) Get(key string) string {
	if h == nil {
		return ""
	}
	return h[strings.ToLower(key)]
}

// Lookup is like Get but reports whether the header was present.
func (h Header) Lookup(key string) (string, bool) {
	if h == nil {
		return "", false
	}
	v, ok := h[strings.ToLower(key)]
	return v, ok
}

// Set stores value under the lower-cased key, replacing any previous value.
func (h Header) Set(key, value string) {
	if h == nil {
		return
	}
	h[strings.ToLower(key)] = value
}
