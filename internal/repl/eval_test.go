package repl

import (
	"strings"
	"testing"

	"github.com/Creamy-pie-96/Pythonic-sub004/pkg/object"
)

func evalLine(t *testing.T, s *Session, line string) object.Object {
	t.Helper()
	got, err := s.Eval(line)
	if err != nil {
		t.Fatalf("Eval(%q): %v", line, err)
	}
	if got == nil {
		t.Fatalf("Eval(%q) returned no value", line)
	}
	return got
}

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		tok     string
		typ     object.ObjectType
		inspect string
	}{
		{"42", object.INTEGER_OBJ, "42"},
		{"-42", object.INTEGER_OBJ, "-42"},
		{"5000000000", object.INT64_OBJ, "5000000000"},
		{"7l", object.INT64_OBJ, "7"},
		{"7u", object.UINT_OBJ, "7"},
		{"5000000000u", object.UINT64_OBJ, "5000000000"},
		{"2.5", object.DOUBLE_OBJ, "2.5"},
		{"2.5f", object.FLOAT_OBJ, "2.5"},
		{"true", object.BOOLEAN_OBJ, "true"},
		{"false", object.BOOLEAN_OBJ, "false"},
		{`"hi"`, object.STRING_OBJ, `"hi"`},
		{"[1, 2, 3]", object.LIST_OBJ, "[1, 2, 3]"},
		{"[]", object.LIST_OBJ, "[]"},
		{"[1, 2.5, \"x\"]", object.LIST_OBJ, `[1, 2.5, "x"]`},
	}
	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			got, err := parseLiteral(tt.tok)
			if err != nil {
				t.Fatal(err)
			}
			if got.Type() != tt.typ {
				t.Fatalf("type = %s, want %s", got.Type(), tt.typ)
			}
			if got.Inspect() != tt.inspect {
				t.Fatalf("value = %s, want %s", got.Inspect(), tt.inspect)
			}
		})
	}
}

func TestParseLiteralErrors(t *testing.T) {
	for _, tok := range []string{"abc", "1.2.3", "9999999999999999999999"} {
		if _, err := parseLiteral(tok); err == nil {
			t.Errorf("parseLiteral(%q) should fail", tok)
		}
	}
}

func TestEvalChains(t *testing.T) {
	tests := []struct {
		line    string
		typ     object.ObjectType
		inspect string
	}{
		{"2 + 3", object.INTEGER_OBJ, "5"},
		{"1 + 2 * 3", object.INTEGER_OBJ, "9"}, // left associative, no precedence
		{"10 - 3 - 2", object.INTEGER_OBJ, "5"},
		{"5 / 2", object.DOUBLE_OBJ, "2.5"},
		{"7 % 3", object.INTEGER_OBJ, "1"},
		{"2 + 2.5", object.DOUBLE_OBJ, "4.5"},
		{"-7 % 3", object.INTEGER_OBJ, "-1"},
		{"2 - -3", object.INTEGER_OBJ, "5"},
		{`"foo" + "bar"`, object.STRING_OBJ, `"foobar"`},
		{"[1, 2] + [3]", object.LIST_OBJ, "[1, 2, 3]"},
		{"42", object.INTEGER_OBJ, "42"},
	}
	s := NewSession()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := evalLine(t, s, tt.line)
			if got.Type() != tt.typ || got.Inspect() != tt.inspect {
				t.Fatalf("Eval(%q) = %s %s, want %s %s",
					tt.line, got.Type(), got.Inspect(), tt.typ, tt.inspect)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	s := NewSession()
	for _, line := range []string{
		"1 +",
		"+ 1",
		"1 2",
		"[1, 2",
		`"open`,
		"1 ^ 2",
	} {
		if _, err := s.Eval(line); err == nil {
			t.Errorf("Eval(%q) should fail", line)
		}
	}

	_, err := s.Eval("1 / 0")
	if err == nil {
		t.Fatal("expected a division error")
	}
	if kind, ok := object.KindOf(err); !ok || kind != object.DivisionByZero {
		t.Fatalf("Eval(1 / 0) error = %v", err)
	}
}

func TestEvalReductions(t *testing.T) {
	s := NewSession()

	got := evalLine(t, s, "sum 1 2 3 4")
	if got.Inspect() != "10" {
		t.Errorf("sum = %s, want 10", got.Inspect())
	}

	got = evalLine(t, s, "product 2 3 4")
	if got.Inspect() != "24" {
		t.Errorf("product = %s, want 24", got.Inspect())
	}

	got = evalLine(t, s, "dot [1, 2, 3] [4, 5, 6]")
	if got.Inspect() != "32" {
		t.Errorf("dot = %s, want 32", got.Inspect())
	}

	if _, err := s.Eval("dot [1, 2] [1, 2, 3]"); err == nil {
		t.Error("dot with unequal lengths should fail")
	}
	if _, err := s.Eval("dot [1, 2]"); err == nil {
		t.Error("dot with one operand should fail")
	}
}

func TestEvalEmptyLine(t *testing.T) {
	s := NewSession()
	got, err := s.Eval("   ")
	if err != nil || got != nil {
		t.Fatalf("Eval of blank line = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestSessionStatsAndReset(t *testing.T) {
	s := NewSession()
	if strings.Contains(s.Stats(), "true") {
		t.Fatal("fresh session must have no fast paths")
	}

	evalLine(t, s, "2 + 3")
	if !strings.Contains(s.Stats(), "+ fast path: true") {
		t.Fatalf("Stats after an addition:\n%s", s.Stats())
	}

	s.Reset()
	if strings.Contains(s.Stats(), "true") {
		t.Fatalf("Stats after Reset:\n%s", s.Stats())
	}
}

func TestScan(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"1 + 2", []string{"1", "+", "2"}},
		{"1+2", []string{"1", "+", "2"}},
		{"-1 + -2", []string{"-1", "+", "-2"}},
		{"2 - -3", []string{"2", "-", "-3"}},
		{`"a b" + "c"`, []string{`"a b"`, "+", `"c"`}},
		{"[1, 2] + [3]", []string{"[1, 2]", "+", "[3]"}},
		{"[[1], [2]]", []string{"[[1], [2]]"}},
	}
	for _, tt := range tests {
		got, err := scan(tt.line)
		if err != nil {
			t.Errorf("scan(%q): %v", tt.line, err)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("scan(%q) = %q, want %q", tt.line, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("scan(%q)[%d] = %q, want %q", tt.line, i, got[i], tt.want[i])
			}
		}
	}
}
