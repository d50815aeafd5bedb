package lang

import (
	"context"
	"log/slog"
)

// varBinding is one entry on the variable scope stack.
type varBinding struct {
	name  string
	value float64
}

// fnBinding is one entry on the function scope stack.
type fnBinding struct {
	name   string
	params []string
	body   Expr
}

// evaluator walks an Expr tree against two scope stacks. Both stacks are
// owned exclusively by one top-level evaluation: entries are pushed when
// entering a Let/Fn/Call scope and popped on every exit path, so lookups
// scan most-recently-pushed-first and shadowing resolves to the innermost
// binding.
type evaluator struct {
	vars  []varBinding
	funcs []fnBinding
	depth int
	opts  options
}

// Evaluate walks the expression tree and computes its value against two
// initially-empty scope stacks owned solely by this call. No bindings
// persist between calls.
//
// Semantic failures return an [EvalError]: [UnboundVariableError],
// [UndefinedFunctionError], [ArityMismatchError], or — when the call depth
// ceiling configured by [WithMaxDepth] is exceeded — [RecursionLimitError].
// The first error encountered short-circuits the remainder of the subtree
// and propagates unchanged.
func Evaluate(ctx context.Context, expr Expr, opts ...Option) (float64, error) {
	e := &evaluator{opts: makeOptions(opts...)}

	result, err := e.eval(ctx, expr)
	if err != nil {
		e.opts.logger.TraceContext(ctx, "evaluate failed",
			slog.Any("error", err))

		return 0, err
	}

	e.opts.logger.TraceContext(ctx, "evaluate complete",
		slog.Float64("result", result))

	return result, nil
}

// eval dispatches on the expression variant. The type switch is exhaustive
// over the sealed [Expr] set; the default arm is unreachable for trees
// produced by the parser.
func (e *evaluator) eval(ctx context.Context, expr Expr) (float64, error) {
	switch x := expr.(type) {
	case *Num:
		return x.Value, nil

	case *Var:
		return e.lookupVar(x.Name)

	case *Neg:
		v, err := e.eval(ctx, x.Operand)
		if err != nil {
			return 0, err
		}

		return -v, nil

	case *Add:
		l, r, err := e.evalPair(ctx, x.Left, x.Right)
		if err != nil {
			return 0, err
		}

		return l + r, nil

	case *Sub:
		l, r, err := e.evalPair(ctx, x.Left, x.Right)
		if err != nil {
			return 0, err
		}

		return l - r, nil

	case *Mul:
		l, r, err := e.evalPair(ctx, x.Left, x.Right)
		if err != nil {
			return 0, err
		}

		return l * r, nil

	case *Div:
		// IEEE 754 semantics: division by zero yields Inf or NaN.
		l, r, err := e.evalPair(ctx, x.Left, x.Right)
		if err != nil {
			return 0, err
		}

		return l / r, nil

	case *Let:
		return e.evalLet(ctx, x)

	case *Fn:
		return e.evalFn(ctx, x)

	case *Call:
		return e.evalCall(ctx, x)

	default:
		return 0, ErrInvalidExpr.
			With(slog.String("node", nodeName(expr)))
	}
}

// evalPair evaluates both operands of a binary node, left first.
func (e *evaluator) evalPair(
	ctx context.Context,
	left, right Expr,
) (float64, float64, error) {
	l, err := e.eval(ctx, left)
	if err != nil {
		return 0, 0, err
	}

	r, err := e.eval(ctx, right)
	if err != nil {
		return 0, 0, err
	}

	return l, r, nil
}

// lookupVar scans the variable stack from the top down and returns the
// first matching value. Insertion order is load-bearing: the linear reverse
// scan is what makes shadowing resolve to the innermost binding, so a map
// must not be substituted here.
func (e *evaluator) lookupVar(name string) (float64, error) {
	for i := len(e.vars) - 1; i >= 0; i-- {
		if e.vars[i].name == name {
			return e.vars[i].value, nil
		}
	}

	return 0, &UnboundVariableError{Name: name}
}

// lookupFn scans the function stack from the top down for the first entry
// with a matching name.
func (e *evaluator) lookupFn(name string) (fnBinding, bool) {
	for i := len(e.funcs) - 1; i >= 0; i-- {
		if e.funcs[i].name == name {
			return e.funcs[i], true
		}
	}

	return fnBinding{}, false
}

// evalLet binds the name to the value of the right-hand side for the
// evaluation of the trailing expression only. Exactly one entry is popped
// on every exit path, including error exits.
func (e *evaluator) evalLet(ctx context.Context, x *Let) (float64, error) {
	rhs, err := e.eval(ctx, x.RHS)
	if err != nil {
		return 0, err
	}

	e.vars = append(e.vars, varBinding{name: x.Name, value: rhs})

	result, err := e.eval(ctx, x.Then)

	e.vars = e.vars[:len(e.vars)-1]

	return result, err
}

// evalFn pushes the function binding for the evaluation of the trailing
// expression only. The entry remains visible to any nested evaluation while
// pushed, which is what allows the function to call itself recursively from
// within its own body.
func (e *evaluator) evalFn(ctx context.Context, x *Fn) (float64, error) {
	e.funcs = append(e.funcs, fnBinding{
		name:   x.Name,
		params: x.Params,
		body:   x.Body,
	})

	result, err := e.eval(ctx, x.Then)

	e.funcs = e.funcs[:len(e.funcs)-1]

	return result, err
}

// evalCall resolves the function, checks arity, evaluates each argument
// left-to-right in the caller's current stacks, then pushes the parameter
// bindings onto the shared variable stack and evaluates the body.
//
// The callee sees the caller's still-live bindings beneath its own: scoping
// is dynamic, not lexical. See the package documentation.
func (e *evaluator) evalCall(ctx context.Context, x *Call) (float64, error) {
	fn, ok := e.lookupFn(x.Name)
	if !ok {
		return 0, &UndefinedFunctionError{Name: x.Name}
	}

	if len(fn.params) != len(x.Args) {
		return 0, &ArityMismatchError{
			Name:     x.Name,
			Expected: len(fn.params),
			Found:    len(x.Args),
		}
	}

	if e.opts.maxDepth > 0 && e.depth >= e.opts.maxDepth {
		return 0, &RecursionLimitError{Name: x.Name, Depth: e.depth}
	}

	// Argument evaluation happens before any callee bindings are pushed,
	// and the first error aborts the remaining arguments.
	values := make([]float64, len(x.Args))

	for i, arg := range x.Args {
		v, err := e.eval(ctx, arg)
		if err != nil {
			return 0, err
		}

		values[i] = v
	}

	for i, param := range fn.params {
		e.vars = append(e.vars, varBinding{name: param, value: values[i]})
	}

	e.depth++

	result, err := e.eval(ctx, fn.body)

	e.depth--
	e.vars = e.vars[:len(e.vars)-len(fn.params)]

	return result, err
}

// nodeName returns a short name for an expression variant, for diagnostics.
func nodeName(expr Expr) string {
	switch expr.(type) {
	case *Num:
		return "Num"
	case *Var:
		return "Var"
	case *Neg:
		return "Neg"
	case *Add:
		return "Add"
	case *Sub:
		return "Sub"
	case *Mul:
		return "Mul"
	case *Div:
		return "Div"
	case *Call:
		return "Call"
	case *Let:
		return "Let"
	case *Fn:
		return "Fn"
	default:
		return "Unknown"
	}
}
