package runtime

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"mint-lang/internal/ast"
	"mint-lang/internal/diag"
	"mint-lang/internal/span"
)

// DefaultMaxCallDepth bounds program recursion. Past it, evaluation fails
// with a StackOverflow error instead of exhausting the native stack.
const DefaultMaxCallDepth = 10000

// condSentinel is the result of a conditional that executes no statements.
const condSentinel = NumberVal(239)

// Interpreter evaluates AST nodes against a scope chain. Evaluation is
// single-threaded and strictly recursive: every Eval call runs to
// completion before returning.
type Interpreter struct {
	out      io.Writer
	in       InputSource
	maxDepth int
	depth    int
}

// NewInterpreter creates an interpreter writing print output to out and
// serving the read primitive from in. A nil in makes every read fail with
// an InputError.
func NewInterpreter(out io.Writer, in InputSource) *Interpreter {
	return &Interpreter{out: out, in: in, maxDepth: DefaultMaxCallDepth}
}

// SetMaxCallDepth adjusts the recursion bound. Values below 1 are ignored.
func (i *Interpreter) SetMaxCallDepth(n int) {
	if n >= 1 {
		i.maxDepth = n
	}
}

// Run evaluates a whole program in a fresh root scope and returns the
// value of its last statement. An empty program yields Number 0.
func (i *Interpreter) Run(prog *ast.Program) (Value, error) {
	return i.evalSeq(prog.Body, NewScope(nil), NumberVal(0))
}

// Eval evaluates one node against the given scope. A failing subexpression
// aborts the whole enclosing statement sequence: errors propagate
// unmodified, with no local recovery anywhere below the driver.
func (i *Interpreter) Eval(node ast.Node, sc *Scope) (Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return i.evalSeq(n.Body, sc, NumberVal(0))

	case *ast.NumberLit:
		return NumberVal(n.Value), nil

	case *ast.Ident:
		v, ok := sc.Get(n.Name)
		if !ok {
			return nil, diag.Newf(diag.NameError, n.Span, "name '%s' is not bound", n.Name)
		}
		return v, nil

	case *ast.UnaryExpr:
		return i.evalUnary(n, sc)

	case *ast.BinaryExpr:
		return i.evalBinary(n, sc)

	case *ast.FuncLit:
		// Direct evaluation runs the body in the scope it was handed,
		// without parameter bindings; only CallExpr binds parameters.
		return i.evalSeq(n.Body, sc, NumberVal(0))

	case *ast.FuncDef:
		fn := &FuncVal{Params: n.Fn.Params, Body: n.Fn.Body}
		sc.Set(n.Name, fn)
		return fn, nil

	case *ast.CallExpr:
		return i.evalCall(n, sc)

	case *ast.IfExpr:
		return i.evalIf(n, sc)

	case *ast.PrintExpr:
		return i.evalPrint(n, sc)

	case *ast.ReadExpr:
		return i.evalRead(n, sc)

	default:
		return nil, diag.Newf(diag.TypeError, node.GetSpan(), "unhandled node type: %T", node)
	}
}

// evalSeq executes a statement sequence in order in the given scope,
// keeping the result of the last statement. An empty sequence keeps last.
func (i *Interpreter) evalSeq(body []ast.Node, sc *Scope, last Value) (Value, error) {
	for _, stmt := range body {
		v, err := i.Eval(stmt, sc)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

func (i *Interpreter) evalUnary(n *ast.UnaryExpr, sc *Scope) (Value, error) {
	ov, err := i.Eval(n.Operand, sc)
	if err != nil {
		return nil, err
	}
	operand, err := numberOf(ov, n.Operand.GetSpan())
	if err != nil {
		return nil, err
	}
	fn, ok := unaryOps[n.Op]
	if !ok {
		return nil, diag.Newf(diag.OperatorError, n.Span, "unknown unary operator '%s'", n.Op)
	}
	return NumberVal(fn(operand)), nil
}

func (i *Interpreter) evalBinary(n *ast.BinaryExpr, sc *Scope) (Value, error) {
	// Both sides always evaluate, left then right. && and || deliberately
	// do not short-circuit: a right-hand side with side effects runs even
	// when the left side already decides the result.
	lv, err := i.Eval(n.Left, sc)
	if err != nil {
		return nil, err
	}
	left, err := numberOf(lv, n.Left.GetSpan())
	if err != nil {
		return nil, err
	}
	rv, err := i.Eval(n.Right, sc)
	if err != nil {
		return nil, err
	}
	right, err := numberOf(rv, n.Right.GetSpan())
	if err != nil {
		return nil, err
	}

	fn, ok := binaryOps[n.Op]
	if !ok {
		return nil, diag.Newf(diag.OperatorError, n.Span, "unknown binary operator '%s'", n.Op)
	}
	result, err := fn(left, right)
	if err != nil {
		return nil, diag.Newf(diag.DivideByZero, n.Span, "%d %s 0", left, n.Op)
	}
	return NumberVal(result), nil
}

func (i *Interpreter) evalCall(n *ast.CallExpr, sc *Scope) (Value, error) {
	callee, err := i.Eval(n.Callee, sc)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*FuncVal)
	if !ok {
		return nil, diag.Newf(diag.TypeError, n.Span, "cannot call value of type '%s'", callee.TypeName())
	}

	// Arguments evaluate left to right in the caller's scope; they cannot
	// see each other or the callee's parameters. Extra arguments are
	// evaluated for their side effects and then dropped.
	args := make([]Value, len(n.Args))
	for idx, argExpr := range n.Args {
		v, err := i.Eval(argExpr, sc)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	if len(fn.Params) > len(args) {
		return nil, diag.Newf(diag.ArityError, n.Span,
			"function takes %d arguments, got %d", len(fn.Params), len(args))
	}

	if i.depth >= i.maxDepth {
		return nil, diag.Newf(diag.StackOverflow, n.Span, "call depth exceeds %d", i.maxDepth)
	}
	i.depth++
	defer func() { i.depth-- }()

	// The call scope chains to the caller's scope, not the definition
	// scope: the callee can read caller locals.
	callScope := NewScope(sc)
	for idx, param := range fn.Params {
		callScope.Set(param, args[idx])
	}
	slog.Debug("call", "params", len(fn.Params), "args", len(args), "depth", i.depth)

	return i.evalSeq(fn.Body, callScope, NumberVal(0))
}

func (i *Interpreter) evalIf(n *ast.IfExpr, sc *Scope) (Value, error) {
	cv, err := i.Eval(n.Condition, sc)
	if err != nil {
		return nil, err
	}
	cond, err := numberOf(cv, n.Condition.GetSpan())
	if err != nil {
		return nil, err
	}

	// A truthy condition with an empty then-branch falls through to the
	// else-branch. Branches run in the enclosing scope.
	var branch []ast.Node
	switch {
	case cond != 0 && len(n.Then) > 0:
		branch = n.Then
	case len(n.Else) > 0:
		branch = n.Else
	}
	return i.evalSeq(branch, sc, condSentinel)
}

func (i *Interpreter) evalPrint(n *ast.PrintExpr, sc *Scope) (Value, error) {
	v, err := i.Eval(n.Expr, sc)
	if err != nil {
		return nil, err
	}
	num, err := numberOf(v, n.Expr.GetSpan())
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(i.out, num)
	return v, nil
}

func (i *Interpreter) evalRead(n *ast.ReadExpr, sc *Scope) (Value, error) {
	if i.in == nil {
		return nil, diag.Newf(diag.InputError, n.Span, "no input source")
	}
	line, err := i.in.ReadLine()
	if err != nil {
		return nil, diag.Newf(diag.InputError, n.Span, "read: %v", err)
	}
	text := strings.TrimSpace(line)
	num, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, diag.Newf(diag.InputError, n.Span, "not an integer: %q", text)
	}
	v := NumberVal(num)
	sc.Set(n.Name, v)
	return v, nil
}

// numberOf unwraps a Number operand; a function value in number position
// is a type error.
func numberOf(v Value, sp span.Span) (int64, error) {
	num, ok := v.(NumberVal)
	if !ok {
		return 0, diag.Newf(diag.TypeError, sp, "expected a number, got %s", v.TypeName())
	}
	return int64(num), nil
}
