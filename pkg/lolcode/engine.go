// Package lolcode is the embedding API: a frontend (terminal REPL or GUI)
// constructs an Engine, runs source through it, and reads back the token
// list and final symbol table for display.
package lolcode

import (
	"io"
	"os"

	"github.com/lolcode-go/lolcode/internal/errors"
	"github.com/lolcode-go/lolcode/internal/interp"
	"github.com/lolcode-go/lolcode/internal/lexer"
	"github.com/lolcode-go/lolcode/internal/parser"
)

// TokenInfo is the read-only (lexeme, classification, line) triple the
// frontend's token-table view displays.
type TokenInfo struct {
	Lexeme         string
	Classification string
	Line           int
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOutput overrides the print sink (default os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.output = w }
}

// WithInput overrides the input provider GIMMEH calls. Supplying one
// implies GUI mode: terminal mode's default instead reads one line from
// standard input.
func WithInput(fn func() (string, error)) Option {
	return func(e *Engine) {
		e.input = fn
		e.terminalMode = false
	}
}

// WithTerminalMode force-sets the terminal-mode flag the embedding
// contract exposes, independent of whether an input provider was given.
func WithTerminalMode(v bool) Option {
	return func(e *Engine) { e.terminalMode = v }
}

// Engine is the core's embedding entry point.
type Engine struct {
	output       io.Writer
	input        interp.InputProvider
	terminalMode bool

	tokens []lexer.Token
	interp *interp.Interpreter
}

// New builds an Engine with sensible terminal-mode defaults: stdout sink,
// stdin-line input.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		output:       os.Stdout,
		terminalMode: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// SetOutput overrides the print sink after construction.
func (e *Engine) SetOutput(w io.Writer) { e.output = w }

// SetInput overrides the input provider after construction.
func (e *Engine) SetInput(fn func() (string, error)) { e.input = fn }

// Run lexes, parses, and evaluates source, populating Tokens() and
// Symbols() as side effects even when evaluation fails partway through.
func (e *Engine) Run(source string) error {
	lx := lexer.New(source)
	tokens, err := lx.Tokens()
	if err != nil {
		line := 0
		msg := err.Error()
		if lexErr, ok := err.(*lexer.LexError); ok {
			line = lexErr.Line
			msg = lexErr.Message
		}
		e.tokens = tokens
		return errors.New(errors.InvalidSyntax, lexer.Token{Line: line}, msg)
	}
	e.tokens = tokens

	p := parser.NewFromTokens(tokens)
	prog, err := p.Parse()
	if err != nil {
		return err
	}

	e.interp = interp.New(e.output, e.input)
	return e.interp.Run(prog)
}

// Eval is an alias for Run kept for symmetry with the teacher's
// functional-options engine, whose embedding call sites use both names
// interchangeably.
func (e *Engine) Eval(source string) error { return e.Run(source) }

// Tokens returns the ordered token list produced by the most recent Run.
func (e *Engine) Tokens() []TokenInfo {
	out := make([]TokenInfo, 0, len(e.tokens))
	for _, tok := range e.tokens {
		out = append(out, TokenInfo{
			Lexeme:         tok.Literal,
			Classification: tok.Type.String(),
			Line:           tok.Line,
		})
	}
	return out
}

// Symbols returns the root symbol table's final name→printable-value
// mapping. Returns nil if Run has not yet populated an interpreter.
func (e *Engine) Symbols() map[string]string {
	if e.interp == nil {
		return nil
	}
	snapshot := e.interp.Environment().Snapshot()
	out := make(map[string]string, len(snapshot))
	for name, val := range snapshot {
		out[name] = val.String()
	}
	return out
}

// TerminalMode reports the configuration flag distinguishing stdin-driven
// GIMMEH from a GUI input callback.
func (e *Engine) TerminalMode() bool { return e.terminalMode }
