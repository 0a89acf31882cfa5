package lolcode

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunExecutesProgramAndCapturesOutput(t *testing.T) {
	var out bytes.Buffer
	engine, err := New(WithOutput(&out))
	if err != nil {
		t.Fatalf("unexpected error building engine: %v", err)
	}

	if err := engine.Run("HAI\nSUM OF 3 AN 4\nVISIBLE IT\nKTHXBYE\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), "7\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNewDefaultsToTerminalMode(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !engine.TerminalMode() {
		t.Error("expected a freshly-constructed Engine to default to terminal mode")
	}
}

func TestWithInputSwitchesOffTerminalMode(t *testing.T) {
	engine, err := New(WithInput(func() (string, error) { return "42", nil }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine.TerminalMode() {
		t.Error("expected WithInput to imply non-terminal (GUI) mode")
	}
}

func TestGIMMEHUsesInjectedInputProvider(t *testing.T) {
	var out bytes.Buffer
	engine, err := New(WithOutput(&out), WithInput(func() (string, error) { return "WORLD", nil }))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src := `HAI
WAZZUP
I HAS A NAME ITZ ""
BUHBYE
GIMMEH NAME
VISIBLE NAME
KTHXBYE
`
	if err := engine.Run(src); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), " WORLD \n"; got != want {
		t.Errorf("output = %q, want %q (GIMMEH wraps input in surrounding spaces)", got, want)
	}
}

func TestTokensReflectsMostRecentRun(t *testing.T) {
	engine, err := New(WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := engine.Run("HAI\nVISIBLE \"HI\"\nKTHXBYE\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tokens := engine.Tokens()
	if len(tokens) == 0 {
		t.Fatal("expected Tokens() to return a non-empty list after Run")
	}
	if tokens[0].Classification != "HAI" {
		t.Errorf("tokens[0].Classification = %q, want HAI", tokens[0].Classification)
	}
}

func TestSymbolsNilBeforeRun(t *testing.T) {
	engine, err := New()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if engine.Symbols() != nil {
		t.Error("expected Symbols() to be nil before Run has populated an interpreter")
	}
}

func TestSymbolsReflectsFinalBindings(t *testing.T) {
	engine, err := New(WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := engine.Run("HAI\nWAZZUP\nI HAS A X ITZ 5\nBUHBYE\nKTHXBYE\n"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	symbols := engine.Symbols()
	if symbols["X"] != "5" {
		t.Errorf("symbols[X] = %q, want %q", symbols["X"], "5")
	}
}

func TestRunSurfacesLexErrorAsInvalidSyntax(t *testing.T) {
	engine, err := New(WithOutput(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err = engine.Run("HAI\n@\nKTHXBYE\n")
	if err == nil {
		t.Fatal("expected an error for an unrecognized symbol")
	}
	if !strings.Contains(err.Error(), "Invalid Syntax") {
		t.Errorf("error = %q, want it classified as Invalid Syntax", err.Error())
	}
}
