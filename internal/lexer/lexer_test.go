package lexer

import "testing"

func TestNextTokenKeywordsAndPunctuation(t *testing.T) {
	input := `HAI
I HAS A X ITZ 10
X R SUM OF X AN 1
VISIBLE X
KTHXBYE`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{HAI, "HAI"},
		{I_HAS_A, "I HAS A"},
		{IDENT, "X"},
		{ITZ, "ITZ"},
		{INTEGER, "10"},
		{IDENT, "X"},
		{R, "R"},
		{SUM_OF, "SUM OF"},
		{IDENT, "X"},
		{AN, "AN"},
		{INTEGER, "1"},
		{VISIBLE, "VISIBLE"},
		{IDENT, "X"},
		{KTHXBYE, "KTHXBYE"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestMultiWordPhrasesPreferLongestMatch(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"I HAS A", I_HAS_A},
		{"IS NOW A", IS_NOW_A},
		{"AN YR", AN_YR},
		{"AN", AN},
		{"SUM OF", SUM_OF},
		{"BOTH SAEM", BOTH_SAEM},
		{"BOTH OF", BOTH_OF},
		{"IM IN YR", IM_IN_YR},
		{"IM OUTTA YR", IM_OUTTA_YR},
		{"HOW IZ I", HOW_IZ_I},
		{"IF U SAY SO", IF_U_SAY_SO},
		{"I IZ", I_IZ},
		{"O RLY?", O_RLY},
		{"WTF?", WTF},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		if tok.Type != tt.expected {
			t.Errorf("input %q: expected %s, got %s", tt.input, tt.expected, tok.Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
		literal  string
	}{
		{"42", INTEGER, "42"},
		{"-7", INTEGER, "-7"},
		{"3.14", FLOAT, "3.14"},
		{"-0.5", FLOAT, "-0.5"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		if tok.Type != tt.expected || tok.Literal != tt.literal {
			t.Errorf("input %q: expected %s(%q), got %s(%q)", tt.input, tt.expected, tt.literal, tok.Type, tok.Literal)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	l := New(`"HELLO WORLD"`)
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != STRING || tok.Literal != `"HELLO WORLD"` {
		t.Fatalf("expected STRING(%q), got %s(%q)", `"HELLO WORLD"`, tok.Type, tok.Literal)
	}
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	l := New("\"HELLO\nKTHXBYE")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an error for an unterminated string literal")
	}
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
	if lexErr.Line != 1 {
		t.Fatalf("expected error on line 1, got line %d", lexErr.Line)
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	input := `HAI BTW this is a line comment
OBTW
  this whole block is ignored
TLDR
KTHXBYE`
	l := New(input)
	tokens, err := l.Tokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var types []TokenType
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	want := []TokenType{HAI, KTHXBYE, EOF}
	if len(types) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(types), types)
	}
	for i, tt := range want {
		if types[i] != tt {
			t.Errorf("token[%d]: expected %s, got %s", i, tt, types[i])
		}
	}
}

func TestUnrecognizedSymbolIsLexError(t *testing.T) {
	l := New("HAI\n@\nKTHXBYE")
	_, err := l.Tokens()
	if err == nil {
		t.Fatal("expected an error for an unrecognized symbol")
	}
	lexErr, ok := err.(*LexError)
	if !ok {
		t.Fatalf("expected *LexError, got %T", err)
	}
	if lexErr.Line != 2 {
		t.Fatalf("expected error on line 2, got line %d", lexErr.Line)
	}
}

func TestLineCountingAcrossNewlines(t *testing.T) {
	input := "HAI\nVISIBLE 1\nVISIBLE 2\nKTHXBYE"
	l := New(input)
	tokens, err := l.Tokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lineByLiteral := map[string]int{}
	for _, tok := range tokens {
		lineByLiteral[tok.Literal] = tok.Line
	}
	if lineByLiteral["1"] != 2 {
		t.Errorf("expected literal 1 on line 2, got %d", lineByLiteral["1"])
	}
	if lineByLiteral["2"] != 3 {
		t.Errorf("expected literal 2 on line 3, got %d", lineByLiteral["2"])
	}
}
