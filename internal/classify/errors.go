package classify

import "errors"

// Kind is the failure category a classifier error carries. The review
// pipeline and the transports distinguish exactly these four outcomes.
type Kind int

const (
	KindOther Kind = iota
	KindConnection
	KindInvalidResponse
	KindAuth
)

// Marker is the wire-level category string, kept compatible with the web
// client's error matching.
func (k Kind) Marker() string {
	switch k {
	case KindConnection:
		return "AI_CONNECTION_FAILED"
	case KindInvalidResponse:
		return "AI_RESPONSE_ERROR"
	case KindAuth:
		return "AI_AUTH_ERROR"
	}
	return "AI_ANALYSIS_FAILED"
}

// Error wraps a failure with its category.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Marker()
	}
	return e.Kind.Marker() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

func failure(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// KindOf extracts the failure category; anything untyped is KindOther.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindOther
}
