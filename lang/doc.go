// Package lang implements the novarc expression language: a recursive-descent
// parser producing an [Expr] tree, and a tree-walking evaluator computing a
// float64 result from that tree.
//
// The grammar, from loosest to tightest binding:
//
//	decl    = "let" IDENT "=" expr ";" decl
//	        | "fn" IDENT IDENT* "=" expr ";" decl
//	        | expr
//	expr    = product (("+" | "-") product)*
//	product = unary (("*" | "/") unary)*
//	unary   = "-"* atom
//	atom    = INT | "(" expr ")" | IDENT "(" args ")" | IDENT
//	args    = (expr ("," expr)* ","?)?
//
// Whitespace is insignificant between any two tokens. The identifiers "let"
// and "fn" are reserved keywords. Declarations chain to the right, so
// "let a = 1; let b = 2; a+b" binds a and b only for the trailing expression.
//
// Scoping is dynamic, not lexical: a call shares the caller's live variable
// stack with the callee, pushing only the parameter bindings on top. A
// function body therefore observes whatever bindings are in effect at call
// time, including bindings established after the function definition.
//
// Bindings never persist across top-level evaluations: each call to
// [Evaluate] owns a fresh pair of scope stacks.
package lang
