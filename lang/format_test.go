package lang

import (
	"reflect"
	"strings"
	"testing"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{42, "42"},
		{2.5, "2.5"},
		{-3, "-3"},
		{0, "0"},
		{1.0 / 3.0, "0.3333333333333333"},
	}

	for _, tt := range tests {
		if got := FormatResult(tt.value); got != tt.want {
			t.Errorf("FormatResult(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatExpr_RoundTrip(t *testing.T) {
	// Re-parsing the rendered form must reproduce the original tree,
	// including the cases where parentheses are required to preserve
	// structure.
	tests := []string{
		"42",
		"x",
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"1 - (2 - 3)",
		"1 - -2",
		"-(1 + 2)",
		"--x",
		"100 / (5 / 2)",
		"2 * (3 + 4) - 5",
		"f()",
		"f(1, 2 + 3)",
		"let x = 1; x + 1",
		"let x = 1 + 2; let y = x * x; y - x",
		"fn add a b = a + b; add(1, 2)",
		"fn five = 5; five() * 2",
		"fn f n = -n; let x = 3; f(x + 1)",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			expr, err := ParseString(t.Context(), input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			rendered := FormatExpr(expr)

			reparsed, err := ParseString(t.Context(), rendered)
			if err != nil {
				t.Fatalf("re-parse of %q failed: %v", rendered, err)
			}

			if !reflect.DeepEqual(expr, reparsed) {
				t.Errorf("round trip changed tree:\ninput    %q\nrendered %q",
					input, rendered)
			}
		})
	}
}

func TestFormatExpr_Canonical(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1+2*3", "1 + 2 * 3"},
		{"(1+2)*3", "(1 + 2) * 3"},
		{"1+(2+3)", "1 + (2 + 3)"},
		{"f( 1 , 2 ,)", "f(1, 2)"},
		{"let x=1;x", "let x = 1; x"},
		{"fn f a b=a;f(1,2)", "fn f a b = a; f(1, 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := ParseString(t.Context(), tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if got := FormatExpr(expr); got != tt.want {
				t.Errorf("FormatExpr = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatTree(t *testing.T) {
	expr, err := ParseString(t.Context(), "let x = 1; f(x, 2)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var b strings.Builder
	if err := FormatTree(&b, expr); err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := strings.Join([]string{
		"Let: x",
		"  Num: 1",
		"  Call: f",
		"    Var: x",
		"    Num: 2",
	}, "\n") + "\n"

	if b.String() != want {
		t.Errorf("FormatTree =\n%s\nwant\n%s", b.String(), want)
	}
}

func TestFormatJSON(t *testing.T) {
	expr, err := ParseString(t.Context(), "1 + x")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var b strings.Builder
	if err := FormatJSON(t.Context(), &b, expr, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	out := b.String()

	for _, want := range []string{`"add"`, `"left"`, `"right"`, `"num"`, `"var"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected JSON to contain %s, got:\n%s", want, out)
		}
	}
}

func TestFormatYAML(t *testing.T) {
	expr, err := ParseString(t.Context(), "fn f a = a; f(1)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var b strings.Builder
	if err := FormatYAML(t.Context(), &b, expr, 2); err != nil {
		t.Fatalf("format error: %v", err)
	}

	out := b.String()

	for _, want := range []string{"fn:", "name: f", "params:", "then:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected YAML to contain %q, got:\n%s", want, out)
		}
	}
}

func TestToMap(t *testing.T) {
	expr, err := ParseString(t.Context(), "let x = 1; x")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	m := ToMap(expr)

	letNode, ok := m["let"].(map[string]any)
	if !ok {
		t.Fatalf("expected 'let' key with map value, got %#v", m)
	}

	if letNode["name"] != "x" {
		t.Errorf("expected name 'x', got %v", letNode["name"])
	}
}
