package lang

import (
	"errors"
	"math"
	"testing"
)

// evalString parses and evaluates input in one step.
func evalString(t *testing.T, input string, opts ...Option) (float64, error) {
	t.Helper()

	expr, err := ParseString(t.Context(), input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return Evaluate(t.Context(), expr, opts...)
}

func TestEvaluate_Arithmetic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"literal", "42", 42},
		{"add", "1 + 2", 3},
		{"sub", "5 - 3", 2},
		{"mul", "4 * 6", 24},
		{"div", "10 / 4", 2.5},
		{"precedence_mul_over_add", "1 + 2 * 3", 7},
		{"precedence_div_over_sub", "10 - 6 / 2", 7},
		{"left_assoc_sub", "10 - 3 - 2", 5},
		{"left_assoc_div", "100 / 5 / 2", 10},
		{"parens_override", "(1 + 2) * 3", 9},
		{"unary_minus", "-5 + 10", 5},
		{"double_negation", "--5", 5},
		{"negated_parens", "-(1 + 2)", -3},
		{"mixed", "4 * 2 + 12 / 3 - 1", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalString(t, tt.input)
			if err != nil {
				t.Fatalf("evaluate error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	got, err := evalString(t, "1 / 0")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if !math.IsInf(got, 1) {
		t.Errorf("expected +Inf, got %v", got)
	}

	got, err = evalString(t, "-1 / 0")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if !math.IsInf(got, -1) {
		t.Errorf("expected -Inf, got %v", got)
	}

	got, err = evalString(t, "0 / 0")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if !math.IsNaN(got) {
		t.Errorf("expected NaN, got %v", got)
	}
}

func TestEvaluate_LetBinding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"simple", "let x = 5; x", 5},
		{"reference_in_rhs", "let x = 2; let y = x * 3; y", 6},
		{"shadowing", "let x = 1; let x = 2; x", 2},
		{"shadow_uses_outer", "let x = 1; let x = x + 1; x", 2},
		{"chained", "let a = 1; let b = 2; let c = 3; a + b + c", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalString(t, tt.input)
			if err != nil {
				t.Fatalf("evaluate error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate_UnboundVariable(t *testing.T) {
	_, err := evalString(t, "x + 1")
	if err == nil {
		t.Fatal("expected error for unbound variable")
	}

	var unbound *UnboundVariableError
	if !errors.As(err, &unbound) {
		t.Fatalf("expected UnboundVariableError, got %T: %v", err, err)
	}

	if unbound.Name != "x" {
		t.Errorf("expected name 'x', got %q", unbound.Name)
	}

	want := "Cannot find variable `x` in scope"
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
}

func TestEvaluate_NoPersistenceBetweenCalls(t *testing.T) {
	// A binding made in one evaluation must not leak into the next.
	if _, err := evalString(t, "let x = 1; x"); err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	_, err := evalString(t, "x")

	var unbound *UnboundVariableError
	if !errors.As(err, &unbound) {
		t.Fatalf("expected UnboundVariableError, got %T: %v", err, err)
	}
}

func TestEvaluate_FunctionCall(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"nullary", "fn five = 5; five()", 5},
		{"unary", "fn double n = n * 2; double(21)", 42},
		{"binary", "fn add a b = a + b; add(3, 4)", 7},
		{"nested_calls", "fn sq n = n * n; sq(sq(2))", 16},
		{"call_in_expr", "fn inc n = n + 1; inc(1) * inc(2)", 6},
		{"trailing_comma", "fn add a b = a + b; add(1, 2,)", 3},
		{"shadowed_fn", "fn f = 1; fn f = 2; f()", 2},
		{"param_shadows_var", "let n = 10; fn id n = n; id(3)", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evalString(t, tt.input)
			if err != nil {
				t.Fatalf("evaluate error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestEvaluate_DynamicScope(t *testing.T) {
	// The function body sees the caller's live bindings, not the bindings at
	// definition time.
	got, err := evalString(t, "fn f y = x + y; let x = 5; f(1)")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got != 6 {
		t.Errorf("expected 6, got %v", got)
	}

	// And the innermost caller binding wins.
	got, err = evalString(t, "fn f = x; let x = 1; let x = 2; f()")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
}

func TestEvaluate_ArgumentsEvaluatedInCallerScope(t *testing.T) {
	// Arguments are evaluated before parameter bindings are pushed, so a
	// parameter with the same name as a caller variable must not capture the
	// argument expression.
	got, err := evalString(t, "let a = 2; fn f a = a * 10; f(a + 1)")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got != 30 {
		t.Errorf("expected 30, got %v", got)
	}
}

func TestEvaluate_UndefinedFunction(t *testing.T) {
	_, err := evalString(t, "missing(1)")
	if err == nil {
		t.Fatal("expected error for undefined function")
	}

	var undef *UndefinedFunctionError
	if !errors.As(err, &undef) {
		t.Fatalf("expected UndefinedFunctionError, got %T: %v", err, err)
	}

	want := "Cannot find function `missing` in scope"
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
}

func TestEvaluate_FunctionNotAVariable(t *testing.T) {
	// Variable and function bindings live on separate stacks. A function
	// name referenced without a call is an unbound variable, not a function
	// value.
	_, err := evalString(t, "fn f = 1; f")

	var unbound *UnboundVariableError
	if !errors.As(err, &unbound) {
		t.Fatalf("expected UnboundVariableError, got %T: %v", err, err)
	}
}

func TestEvaluate_ArityMismatch(t *testing.T) {
	_, err := evalString(t, "fn add a b = a + b; add(1)")
	if err == nil {
		t.Fatal("expected error for arity mismatch")
	}

	var arity *ArityMismatchError
	if !errors.As(err, &arity) {
		t.Fatalf("expected ArityMismatchError, got %T: %v", err, err)
	}

	if arity.Expected != 2 || arity.Found != 1 {
		t.Errorf("expected 2/1, got %d/%d", arity.Expected, arity.Found)
	}

	want := "Wrong number of arguments for function `add`: expected 2, found 1"
	if err.Error() != want {
		t.Errorf("expected message %q, got %q", want, err.Error())
	}
}

func TestEvaluate_Recursion(t *testing.T) {
	// The function binding stays on the stack while its trailing expression
	// evaluates, so the body can call the function itself. Without a base
	// case the depth ceiling stops it.
	_, err := evalString(t, "fn f n = f(n); f(0)", WithMaxDepth(16))
	if err == nil {
		t.Fatal("expected error for unbounded recursion")
	}

	var limit *RecursionLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("expected RecursionLimitError, got %T: %v", err, err)
	}

	if limit.Name != "f" {
		t.Errorf("expected name 'f', got %q", limit.Name)
	}
}

func TestEvaluate_RecursionLimitDisabled(t *testing.T) {
	// A non-positive depth disables the ceiling entirely; nested calls
	// deeper than any small limit still complete.
	input := "fn a = 1; fn b = a(); fn c = b(); fn d = c(); d()"

	got, err := evalString(t, input, WithMaxDepth(0))
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestEvaluate_DepthCountsNestedCalls(t *testing.T) {
	// Each active call contributes one level: a chain of four calls trips a
	// ceiling of two.
	input := "fn a = 1; fn b = a(); fn c = b(); fn d = c(); d()"

	_, err := evalString(t, input, WithMaxDepth(2))

	var limit *RecursionLimitError
	if !errors.As(err, &limit) {
		t.Fatalf("expected RecursionLimitError, got %T: %v", err, err)
	}
}

func TestEvaluate_LetScopeReleasedOnError(t *testing.T) {
	// The let binding is popped even when its trailing expression fails.
	e := &evaluator{opts: makeOptions()}

	expr, err := ParseString(t.Context(), "let x = 1; missing(x)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	if _, err = e.eval(t.Context(), expr); err == nil {
		t.Fatal("expected error")
	}

	if len(e.vars) != 0 {
		t.Errorf("expected empty variable stack, got %d entries", len(e.vars))
	}

	if len(e.funcs) != 0 {
		t.Errorf("expected empty function stack, got %d entries", len(e.funcs))
	}
}

func TestEvaluate_ChainedDeclarations(t *testing.T) {
	input := `
		let five = 5;
		let eight = 3 + five;
		fn add x y = x + y;
		add(five, eight)
	`

	got, err := evalString(t, input)
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if got != 13 {
		t.Errorf("expected 13, got %v", got)
	}
}
