package aggregate

// ErrorKind classifies a rejected operation so the HTTP layer can pick a
// status code without string matching.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindInvalidInput
	KindNotFound
	KindConflict
)

// Error is the taxonomy carried across the aggregate layer boundary. Message
// is user-facing and written in the application's working language.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func invalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func notFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func unexpected(message string, cause error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Cause: cause}
}
