/*
File    : achronyme/errs/errs.go
Package errs defines the typed error kinds surfaced by the Achronyme Core
engine: lexer, parser, evaluator, built-in registry and numerical kernels
all report failures through a single *Error carrying a Kind and a
human-readable Message, with an optional source Position.

This mirrors the go-mix interpreter's convention of formatting errors as
"[line:col] KIND: message", but replaces the single untyped Error object
with a typed Kind so the host (and tests) can switch on failure class
instead of parsing message text.
*/
package errs

import "fmt"

// Kind identifies the class of failure, matching the error taxonomy in the
// core specification (lex/parse/evaluate/numeric).
type Kind string

const (
	LexError          Kind = "LexError"
	ParseError        Kind = "ParseError"
	UndefinedVariable Kind = "UndefinedVariable"
	ArityMismatch     Kind = "ArityMismatch"
	TypeError         Kind = "TypeError"
	ShapeError        Kind = "ShapeError"
	Singular          Kind = "Singular"
	NotSPD            Kind = "NotSPD"
	NonConvergent     Kind = "NonConvergent"
	NotCallable       Kind = "NotCallable"
	UnknownHandle     Kind = "UnknownHandle"
	InvalidArgument   Kind = "InvalidArgument"
)

// Error is the single error type returned anywhere in the core. Position is
// -1 when no source location applies (e.g. a kernel failure reached through
// a fast-path handle call that never went through the parser).
type Error struct {
	Kind     Kind
	Message  string
	Position int
}

// Error implements the standard error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("[%d] %s: %s", e.Position, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// New creates an Error with no position information attached.
func New(kind Kind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...), Position: -1}
}

// NewAt creates an Error carrying a byte offset into the source.
func NewAt(kind Kind, position int, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...), Position: position}
}
