package service

import "errors"

var (
	ErrInvalidArgument = errors.New("img query parameter is required")
	ErrNotFound        = errors.New("image not found")
	ErrEmptyImage      = errors.New("image has no pixels")
)

// FetchError reports a transport or protocol failure reaching the upstream
// host. Its message is the cause's message so it can be shown as-is.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string { return e.Err.Error() }

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports bytes that arrived but are not a usable image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }
