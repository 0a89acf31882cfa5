package interp

import "testing"

func TestNumberValueStringTruncatesFloats(t *testing.T) {
	v := NewFloat(3.14159)
	if got, want := v.String(), "3.14"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNumberValueCastToYarn(t *testing.T) {
	v := NewInt(42)
	cast, err := v.Cast(TypeYarn, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := cast.String(), "42"; got != want {
		t.Errorf("cast = %q, want %q", got, want)
	}
}

func TestStringValueImplicitCastToNumbr(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
		wantInt int64
	}{
		{"10", false, 10},
		{"-3", false, -3},
		{"abc", true, 0},
		{"3.5", true, 0},
	}
	for _, tt := range tests {
		s := StringValue{Val: tt.input}
		cast, err := s.Cast(TypeNumbr, false)
		if tt.wantErr {
			if err == nil {
				t.Errorf("input %q: expected error, got none", tt.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		n, ok := cast.(NumberValue)
		if !ok || n.IntVal != tt.wantInt || n.IsFloat {
			t.Errorf("input %q: cast = %+v, want int %d", tt.input, cast, tt.wantInt)
		}
	}
}

func TestNoobImplicitCastErrors(t *testing.T) {
	n := NoobValue{}
	if _, err := n.Cast(TypeNumbr, false); err == nil {
		t.Error("expected implicit NOOB->NUMBR cast to error")
	}
	if _, err := n.Cast(TypeYarn, false); err == nil {
		t.Error("expected implicit NOOB->YARN cast to error")
	}
	boolCast, err := n.Cast(TypeTroof, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if boolCast.(BooleanValue).Val != false {
		t.Error("expected NOOB->TROOF cast to be FAIL")
	}
}

func TestFunctionValueCastIsIdentity(t *testing.T) {
	fn := FunctionValue{Name: "F"}
	cast, err := fn.Cast(TypeNumbr, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cast.(FunctionValue).Name != "F" {
		t.Error("expected Cast on a FunctionValue to be an identity conversion")
	}
}

func TestIsEqualAcrossTypes(t *testing.T) {
	tests := []struct {
		name string
		lhs  Value
		rhs  Value
		want bool
	}{
		{"int vs matching string", NewInt(10), StringValue{Val: "10"}, true},
		{"int vs mismatched string", NewInt(10), StringValue{Val: "11"}, false},
		{"bool vs truthy number", BooleanValue{Val: true}, NewInt(1), true},
		{"noob vs noob", NoobValue{}, NoobValue{}, true},
		{"noob vs number", NoobValue{}, NewInt(0), false},
		{"int vs numerically equal float", NewInt(5), NewFloat(5.0), true},
	}
	for _, tt := range tests {
		got, err := isEqual(tt.lhs, tt.rhs)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: isEqual = %v, want %v", tt.name, got, tt.want)
		}
	}
}
