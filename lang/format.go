package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Operator precedence levels used when rendering native syntax. A child is
// parenthesized when its own level is looser than the context requires.
const (
	precDecl = iota
	precSum
	precProduct
	precUnary
	precAtom
)

// FormatResult formats an evaluation result for output.
func FormatResult(result float64) string {
	return strconv.FormatFloat(result, 'f', -1, 64)
}

// FormatExpr renders the expression in canonical native syntax. Re-parsing
// the output of a parser-produced tree yields a structurally identical tree.
func FormatExpr(expr Expr) string {
	var b strings.Builder

	writeExpr(&b, expr, precDecl)

	return b.String()
}

func writeExpr(b *strings.Builder, expr Expr, context int) {
	prec := exprPrec(expr)

	if prec < context {
		b.WriteString("(")
		defer b.WriteString(")")
	}

	switch x := expr.(type) {
	case *Num:
		b.WriteString(FormatResult(x.Value))

	case *Var:
		b.WriteString(x.Name)

	case *Neg:
		b.WriteString("-")
		writeExpr(b, x.Operand, precUnary)

	case *Add:
		writeExpr(b, x.Left, precSum)
		b.WriteString(" + ")
		writeExpr(b, x.Right, precProduct)

	case *Sub:
		writeExpr(b, x.Left, precSum)
		b.WriteString(" - ")
		writeExpr(b, x.Right, precProduct)

	case *Mul:
		writeExpr(b, x.Left, precProduct)
		b.WriteString(" * ")
		writeExpr(b, x.Right, precUnary)

	case *Div:
		writeExpr(b, x.Left, precProduct)
		b.WriteString(" / ")
		writeExpr(b, x.Right, precUnary)

	case *Call:
		b.WriteString(x.Name)
		b.WriteString("(")

		for i, arg := range x.Args {
			if i > 0 {
				b.WriteString(", ")
			}

			writeExpr(b, arg, precSum)
		}

		b.WriteString(")")

	case *Let:
		b.WriteString("let ")
		b.WriteString(x.Name)
		b.WriteString(" = ")
		writeExpr(b, x.RHS, precSum)
		b.WriteString("; ")
		writeExpr(b, x.Then, precDecl)

	case *Fn:
		b.WriteString("fn ")
		b.WriteString(x.Name)

		for _, param := range x.Params {
			b.WriteString(" ")
			b.WriteString(param)
		}

		b.WriteString(" = ")
		writeExpr(b, x.Body, precSum)
		b.WriteString("; ")
		writeExpr(b, x.Then, precDecl)
	}
}

// exprPrec returns the precedence level a node binds at.
func exprPrec(expr Expr) int {
	switch expr.(type) {
	case *Num, *Var, *Call:
		return precAtom
	case *Neg:
		return precUnary
	case *Mul, *Div:
		return precProduct
	case *Add, *Sub:
		return precSum
	default: // *Let, *Fn
		return precDecl
	}
}

// FormatTree writes an indented structural dump of the expression tree,
// one node per line.
func FormatTree(w io.Writer, expr Expr) error {
	return writeTree(w, expr, 0)
}

func writeTree(w io.Writer, expr Expr, indent int) error {
	prefix := strings.Repeat("  ", indent)
	put := func(line string, children ...Expr) error {
		if _, err := fmt.Fprintln(w, prefix+line); err != nil {
			return err
		}

		for _, child := range children {
			if err := writeTree(w, child, indent+1); err != nil {
				return err
			}
		}

		return nil
	}

	switch x := expr.(type) {
	case *Num:
		return put("Num: " + FormatResult(x.Value))

	case *Var:
		return put("Var: " + x.Name)

	case *Neg:
		return put("Neg:", x.Operand)

	case *Add:
		return put("Add:", x.Left, x.Right)

	case *Sub:
		return put("Sub:", x.Left, x.Right)

	case *Mul:
		return put("Mul:", x.Left, x.Right)

	case *Div:
		return put("Div:", x.Left, x.Right)

	case *Call:
		return put("Call: "+x.Name, x.Args...)

	case *Let:
		return put("Let: "+x.Name, x.RHS, x.Then)

	case *Fn:
		return put("Fn: "+x.Name+" ("+strings.Join(x.Params, " ")+")",
			x.Body, x.Then)

	default:
		return ErrInvalidExpr
	}
}

// FormatJSON writes the expression tree as JSON to the writer.
func FormatJSON(_ context.Context, w io.Writer, expr Expr, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(
			ToMap(expr), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(ToMap(expr))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the expression tree as YAML to the writer.
func FormatYAML(
	ctx context.Context,
	w io.Writer,
	expr Expr,
	indent int,
) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, ToMap(expr), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// ToMap converts the expression tree to a generic map representation
// suitable for JSON and YAML encoding. Each node becomes a single-key map
// named after its variant.
func ToMap(expr Expr) map[string]any {
	switch x := expr.(type) {
	case *Num:
		return map[string]any{"num": x.Value}

	case *Var:
		return map[string]any{"var": x.Name}

	case *Neg:
		return map[string]any{"neg": ToMap(x.Operand)}

	case *Add:
		return map[string]any{"add": map[string]any{
			"left":  ToMap(x.Left),
			"right": ToMap(x.Right),
		}}

	case *Sub:
		return map[string]any{"sub": map[string]any{
			"left":  ToMap(x.Left),
			"right": ToMap(x.Right),
		}}

	case *Mul:
		return map[string]any{"mul": map[string]any{
			"left":  ToMap(x.Left),
			"right": ToMap(x.Right),
		}}

	case *Div:
		return map[string]any{"div": map[string]any{
			"left":  ToMap(x.Left),
			"right": ToMap(x.Right),
		}}

	case *Call:
		args := make([]any, len(x.Args))
		for i, arg := range x.Args {
			args[i] = ToMap(arg)
		}

		return map[string]any{"call": map[string]any{
			"name": x.Name,
			"args": args,
		}}

	case *Let:
		return map[string]any{"let": map[string]any{
			"name": x.Name,
			"rhs":  ToMap(x.RHS),
			"then": ToMap(x.Then),
		}}

	case *Fn:
		return map[string]any{"fn": map[string]any{
			"name":   x.Name,
			"params": x.Params,
			"body":   ToMap(x.Body),
			"then":   ToMap(x.Then),
		}}

	default:
		return map[string]any{}
	}
}
