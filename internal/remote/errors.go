package remote

import (
	"errors"
	"fmt"
)

// Kind classifies a failed backend call.
type Kind string

const (
	KindNotAuthenticated Kind = "not_authenticated"
	KindHTTP             Kind = "http"
	KindConnection       Kind = "connection"
	KindDecode           Kind = "decode"
)

const (
	msgNotAuthenticated = "not authenticated"
	msgRequestFailed    = "request failed"
	msgConnectionFailed = "connection failed"
	msgInvalidResponse  = "invalid response from server"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%s, status %d)", e.Message, e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind, so errors.Is(err, ErrNotAuthenticated) works for
// any not-authenticated error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Status == 0 || t.Status == e.Status)
}

var ErrNotAuthenticated = &Error{Kind: KindNotAuthenticated, Message: msgNotAuthenticated}

func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return ""
}

// StatusOf returns the backend HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var re *Error
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}

// MessageOf returns the user-facing message carried by err.
func MessageOf(err error) string {
	var re *Error
	if errors.As(err, &re) {
		return re.Message
	}
	return msgRequestFailed
}
