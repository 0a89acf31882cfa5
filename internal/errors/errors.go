// Package errors defines the two error kinds the core ever raises and the
// two-line kind/details format the embedding layer prints them in.
package errors

import (
	"fmt"

	"github.com/lolcode-go/lolcode/internal/lexer"
)

// Kind distinguishes the two error categories the core can raise.
type Kind int

const (
	// InvalidSyntax is raised by the lexer and parser.
	InvalidSyntax Kind = iota
	// RuntimeError is raised by the interpreter.
	RuntimeError
)

func (k Kind) String() string {
	switch k {
	case InvalidSyntax:
		return "Invalid Syntax"
	case RuntimeError:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CoreError is the one error type the lexer, parser, and interpreter ever
// return. It always carries the offending (or synthesized) token so the
// embedding layer can report a line number.
type CoreError struct {
	Kind    Kind
	Token   lexer.Token
	Message string
}

// New constructs a CoreError at the given token.
func New(kind Kind, tok lexer.Token, message string) *CoreError {
	return &CoreError{Kind: kind, Token: tok, Message: message}
}

// Newf is New with fmt-style message formatting.
func Newf(kind Kind, tok lexer.Token, format string, args ...any) *CoreError {
	return New(kind, tok, fmt.Sprintf(format, args...))
}

// Error satisfies the error interface with the Format() rendering.
func (e *CoreError) Error() string { return e.Format() }

// Format renders the error the way the CLI and embedding layer display it:
// `<ErrorKind>: '<lexeme>' at line <N>\nDetails: <message>\n`.
func (e *CoreError) Format() string {
	return fmt.Sprintf("%s: '%s' at line %d\nDetails: %s\n", e.Kind, e.Token.Literal, e.Token.Line, e.Message)
}
