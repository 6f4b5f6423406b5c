// Package asmerr provides the positioned diagnostic type the assembler
// reports through, modeled on the teacher's parser.Error/encoder.EncodingError.
package asmerr

import (
	"fmt"

	"github.com/relocbyte/ia32asm/lexer"
)

// Kind categorizes a diagnostic, mirroring the teacher's parser.ErrorKind.
type Kind int

const (
	KindSyntax Kind = iota
	KindUndefinedLabel
	KindDuplicateLabel
	KindUnknownMnemonic
	KindInvalidOperand
	KindInvalidDirective
)

// AssemblyError is a diagnostic tied to a source position, optionally
// wrapping an underlying cause.
type AssemblyError struct {
	Pos     lexer.Position
	Kind    Kind
	Message string
	Source  string // the raw (un-normalized) line, for context
	Wrapped error
}

func (e *AssemblyError) Error() string {
	loc := e.Pos.String()
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", loc, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", loc, e.Message)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *AssemblyError) Unwrap() error {
	return e.Wrapped
}

// New builds an AssemblyError with no wrapped cause.
func New(pos lexer.Position, kind Kind, message string) *AssemblyError {
	return &AssemblyError{Pos: pos, Kind: kind, Message: message}
}

// Wrap builds an AssemblyError wrapping err. If err is already an
// *AssemblyError it is returned unchanged, matching the teacher's
// no-double-wrap behavior.
func Wrap(pos lexer.Position, kind Kind, message string, err error) *AssemblyError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*AssemblyError); ok {
		return ae
	}
	return &AssemblyError{Pos: pos, Kind: kind, Message: message, Wrapped: err}
}

// List accumulates diagnostics produced over an assembly pass. It never
// causes the pass to stop early; the caller decides whether any entry is
// fatal once the pass completes.
type List struct {
	Errors []*AssemblyError
}

// Add appends err to the list.
func (l *List) Add(err *AssemblyError) {
	l.Errors = append(l.Errors, err)
}

// HasErrors reports whether any diagnostic was recorded.
func (l *List) HasErrors() bool {
	return len(l.Errors) > 0
}
