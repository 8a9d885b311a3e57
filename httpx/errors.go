package httpx

import "errors"

var (
	ErrInvalidEchoPath          = errors.New("httpx: invalid echo path")
	ErrMissingUserAgent         = errors.New("httpx: missing User-Agent header")
	ErrServingRootNotConfigured = errors.New("httpx: serving root not configured")
	ErrInvalidFilePath          = errors.New("httpx: invalid file path")
	ErrFileReadFailed           = errors.New("httpx: file read failed")
	ErrFileWriteFailed          = errors.New("httpx: file write failed")
	ErrServerClosed             = errors.New("httpx: server closed")
)
