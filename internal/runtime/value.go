// Package runtime implements the scope chain and the evaluator for
// mint-lang ASTs.
package runtime

import (
	"fmt"

	"mint-lang/internal/ast"
)

// Value is the interface for runtime values. Number is the only value kind
// the language surface produces; functions appear as values only because
// scopes store them directly.
type Value interface {
	TypeName() string
	String() string
}

// NumberVal is the boxed signed integer. Comparison and logical operators
// produce exactly 0 or 1; conditionals treat any nonzero value as true.
type NumberVal int64

func (v NumberVal) TypeName() string { return "number" }
func (v NumberVal) String() string   { return fmt.Sprintf("%d", int64(v)) }

// FuncVal is a user-defined function stored in a scope by a FuncDef.
type FuncVal struct {
	Params []string
	Body   []ast.Node
}

func (v *FuncVal) TypeName() string { return "function" }
func (v *FuncVal) String() string   { return fmt.Sprintf("<function/%d>", len(v.Params)) }

// Truthy reports whether a number counts as true.
func Truthy(v NumberVal) bool { return v != 0 }
