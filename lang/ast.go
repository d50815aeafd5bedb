package lang

// Expr is the closed set of expression tree nodes produced by the parser and
// consumed by the evaluator. Every node owns its subtrees exclusively; the
// parser never produces shared subtrees or cycles.
//
// The set is sealed by the unexported marker method so that evaluator and
// formatter type switches remain exhaustive over the variants defined here.
type Expr interface {
	isExpr()
}

// Num is a numeric literal.
type Num struct {
	Value float64
}

// Var is a reference to a bound variable.
type Var struct {
	Name string
}

// Neg negates its operand.
type Neg struct {
	Operand Expr
}

// Add sums its operands.
type Add struct {
	Left, Right Expr
}

// Sub subtracts Right from Left.
type Sub struct {
	Left, Right Expr
}

// Mul multiplies its operands.
type Mul struct {
	Left, Right Expr
}

// Div divides Left by Right. Division by zero follows IEEE 754 semantics
// (infinity or NaN), it is not an evaluation error.
type Div struct {
	Left, Right Expr
}

// Call invokes a function bound by an enclosing Fn declaration.
type Call struct {
	Name string
	Args []Expr
}

// Let binds Name to the value of RHS for the evaluation of Then only.
// The grammar guarantees both RHS and Then are present.
type Let struct {
	Name string
	RHS  Expr
	Then Expr
}

// Fn defines a function visible only while evaluating Then, including
// recursively from within Body once invoked.
// The grammar guarantees both Body and Then are present.
type Fn struct {
	Name   string
	Params []string
	Body   Expr
	Then   Expr
}

func (*Num) isExpr()  {}
func (*Var) isExpr()  {}
func (*Neg) isExpr()  {}
func (*Add) isExpr()  {}
func (*Sub) isExpr()  {}
func (*Mul) isExpr()  {}
func (*Div) isExpr()  {}
func (*Call) isExpr() {}
func (*Let) isExpr()  {}
func (*Fn) isExpr()   {}
