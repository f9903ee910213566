package domain

import "errors"

type ErrorKind string

const (
	KindEnvironment ErrorKind = "environment"
	KindValidation  ErrorKind = "validation"
	KindNotFound    ErrorKind = "not-found"
	KindExternal    ErrorKind = "external"
)

// Kind sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrEnvironment = &Error{Kind: KindEnvironment, Message: "environment error"}
	ErrValidation  = &Error{Kind: KindValidation, Message: "validation error"}
	ErrNotFound    = &Error{Kind: KindNotFound, Message: "not found"}
	ErrExternal    = &Error{Kind: KindExternal, Message: "external process failed"}
)

var ErrSessionNotFound = errors.New("session not found")

// Error is the structured error surfaced to the CLI. Details holds an
// optional remediation hint.
type Error struct {
	Kind    ErrorKind
	Message string
	Details string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func NewEnvironmentError(message, details string) *Error {
	return &Error{Kind: KindEnvironment, Message: message, Details: details}
}

func NewValidationError(message, details string) *Error {
	return &Error{Kind: KindValidation, Message: message, Details: details}
}

func NewNotFoundError(message string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

func NewExternalError(message string, err error) *Error {
	return &Error{Kind: KindExternal, Message: message, Err: err}
}

// Details returns the remediation hint carried by the first *Error in err's
// chain, or "".
func Details(err error) string {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Details
	}
	return ""
}
