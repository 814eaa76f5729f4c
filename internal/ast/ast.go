// Package ast defines the abstract syntax tree for mint-lang.
//
// Nodes are not built here: an external parser constructs them, either
// directly in Go or through the JSON program-document codec in json.go.
// Every node is immutable after construction and owns its children
// exclusively (a tree, never a graph).
package ast

import (
	"mint-lang/internal/span"
)

// Op is an operator symbol as it appears in a program document.
type Op string

// Unary operators.
const (
	OpNeg Op = "-" // arithmetic negation
	OpNot Op = "!" // nonzero to 0, zero to 1
)

// Binary operators. OpSub shares its symbol with OpNeg.
const (
	OpAdd Op = "+"
	OpSub Op = "-"
	OpMul Op = "*"
	OpDiv Op = "/" // floor division
	OpMod Op = "%" // floor modulo, result sign follows the divisor
	OpEq  Op = "=="
	OpNeq Op = "!="
	OpLt  Op = "<"
	OpGt  Op = ">"
	OpLe  Op = "<="
	OpGe  Op = ">="
	OpAnd Op = "&&"
	OpOr  Op = "||"
)

// Node is the interface implemented by all AST nodes.
type Node interface {
	node()
	GetSpan() span.Span
}

// NodeBase provides the common Span field for all AST nodes. The span is
// whatever the producing parser attached; zero spans are legal.
type NodeBase struct {
	Span span.Span
}

func (n NodeBase) node()              {}
func (n NodeBase) GetSpan() span.Span { return n.Span }

// Program is the root node a program document decodes to. Its body is the
// top-level statement sequence.
type Program struct {
	NodeBase
	Body []Node
}

// NumberLit is an integer literal; it evaluates to itself.
type NumberLit struct {
	NodeBase
	Value int64
}

// Ident references a name, resolved against the scope chain.
type Ident struct {
	NodeBase
	Name string
}

// UnaryExpr applies a unary operator: -x, !x.
type UnaryExpr struct {
	NodeBase
	Op      Op
	Operand Node
}

// BinaryExpr applies a binary operator. Both sides always evaluate, left
// first; && and || do not short-circuit.
type BinaryExpr struct {
	NodeBase
	Op    Op
	Left  Node
	Right Node
}

// FuncLit is a function: ordered parameter names and a statement body.
// Evaluating the literal directly runs the body in the scope it is handed,
// without binding parameters; only CallExpr establishes parameter bindings.
type FuncLit struct {
	NodeBase
	Params []string
	Body   []Node
}

// FuncDef binds Fn under Name in the current scope and yields the function.
type FuncDef struct {
	NodeBase
	Name string
	Fn   *FuncLit
}

// CallExpr calls the function produced by Callee. The callee and every
// argument evaluate in the caller's scope; the body runs in a fresh child
// of the caller's scope, so a callee can read caller locals.
type CallExpr struct {
	NodeBase
	Callee Node
	Args   []Node
}

// IfExpr chooses a branch by the truthiness of Condition. Branches run in
// the enclosing scope; conditionals introduce no lexical region. When
// neither branch runs, the result is the sentinel Number 239.
type IfExpr struct {
	NodeBase
	Condition Node
	Then      []Node
	Else      []Node
}

// PrintExpr writes the evaluated value to the interpreter's output,
// newline-terminated, and passes the value through.
type PrintExpr struct {
	NodeBase
	Expr Node
}

// ReadExpr obtains one integer from the interpreter's input source, binds
// it under Name in the current scope, and yields it.
type ReadExpr struct {
	NodeBase
	Name string
}
