package httpx

import (
	"fmt"
	"os"
	"strings"
)

// Default answers 200 with no body.
func Default() Handler {
	return HandlerFunc(func(*Request) (*Response, error) {
		return NewResponse(StatusOK), nil
	})
}

// NotFound answers 404 with no body. The server also uses it when any
// other handler fails.
func NotFound() Handler {
	return HandlerFunc(func(*Request) (*Response, error) {
		return NewResponse(StatusNotFound), nil
	})
}

// Echo returns the single path segment after /echo/ verbatim.
func Echo() Handler {
	return HandlerFunc(func(r *Request) (*Response, error) {
		segs := strings.Split(r.StartLine.Path, "/")
		if len(segs) != 3 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEchoPath, r.StartLine.Path)
		}
		return NewResponse(StatusOK).WithBody("text/plain", []byte(segs[2])), nil
	})
}

// UserAgent reflects the User-Agent request header.
func UserAgent() Handler {
	return HandlerFunc(func(r *Request) (*Response, error) {
		ua, ok := r.Header.Lookup("user-agent")
		if !ok {
			return nil, ErrMissingUserAgent
		}
		return NewResponse(StatusOK).WithBody("text/plain", []byte(ua)), nil
	})
}

// FileReader serves root+name for GET /files/<name>. An empty root means
// no serving root was configured.
//
// name is appended to root as is; ".." is not rejected.
func FileReader(root string) Handler {
	return HandlerFunc(func(r *Request) (*Response, error) {
		p, err := filePath(root, r.StartLine.Path)
		if err != nil {
			return nil, err
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileReadFailed, err)
		}
		return NewResponse(StatusOK).WithBody("application/octet-stream", b), nil
	})
}

// FileWriter stores the request body at root+name for POST
// /files/<name>, creating or truncating the file.
func FileWriter(root string) Handler {
	return HandlerFunc(func(r *Request) (*Response, error) {
		p, err := filePath(root, r.StartLine.Path)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(p, r.Body, 0o644); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFileWriteFailed, err)
		}
		return NewResponse(StatusCreated), nil
	})
}

func filePath(root, path string) (string, error) {
	if root == "" {
		return "", ErrServingRootNotConfigured
	}
	first, name, ok := strings.Cut(strings.TrimPrefix(path, "/"), "/")
	if !ok || first != "files" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilePath, path)
	}
	return root + name, nil
}
