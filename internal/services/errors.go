// Package services holds the rule engines behind the HTTP layer: the skill
// constraint engine, the project collaboration lifecycle, and the read-only
// views. Every rule violation is returned as an *Error carrying one of the
// kinds below; anything else is a store fault.
package services

type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindForbidden
	KindConflict
	KindInvalidArgument
	KindLimitExceeded
)

// Error is a rule violation with a caller-facing message. The message must
// identify the violated rule, not just the kind; handlers return it verbatim.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func invalidArgument(message string) *Error {
	return &Error{Kind: KindInvalidArgument, Message: message}
}

func limitExceeded(message string) *Error {
	return &Error{Kind: KindLimitExceeded, Message: message}
}
