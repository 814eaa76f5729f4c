package runtime

import (
	"errors"

	"mint-lang/internal/ast"
)

// Operator dispatch tables, keyed by the symbol carried in the AST and
// built once at process start. An absent symbol is an OperatorError at the
// evaluation site.

type unaryFn func(v int64) int64

type binaryFn func(left, right int64) (int64, error)

var errZeroDivisor = errors.New("zero divisor")

var unaryOps = map[ast.Op]unaryFn{
	ast.OpNeg: func(v int64) int64 { return -v },
	ast.OpNot: func(v int64) int64 { return boolInt(v == 0) },
}

var binaryOps = map[ast.Op]binaryFn{
	ast.OpAdd: func(l, r int64) (int64, error) { return l + r, nil },
	ast.OpSub: func(l, r int64) (int64, error) { return l - r, nil },
	ast.OpMul: func(l, r int64) (int64, error) { return l * r, nil },
	ast.OpDiv: func(l, r int64) (int64, error) {
		if r == 0 {
			return 0, errZeroDivisor
		}
		return floorDiv(l, r), nil
	},
	ast.OpMod: func(l, r int64) (int64, error) {
		if r == 0 {
			return 0, errZeroDivisor
		}
		return floorMod(l, r), nil
	},
	ast.OpEq:  func(l, r int64) (int64, error) { return boolInt(l == r), nil },
	ast.OpNeq: func(l, r int64) (int64, error) { return boolInt(l != r), nil },
	ast.OpLt:  func(l, r int64) (int64, error) { return boolInt(l < r), nil },
	ast.OpGt:  func(l, r int64) (int64, error) { return boolInt(l > r), nil },
	ast.OpLe:  func(l, r int64) (int64, error) { return boolInt(l <= r), nil },
	ast.OpGe:  func(l, r int64) (int64, error) { return boolInt(l >= r), nil },
	ast.OpAnd: func(l, r int64) (int64, error) { return boolInt(l != 0 && r != 0), nil },
	ast.OpOr:  func(l, r int64) (int64, error) { return boolInt(l != 0 || r != 0), nil },
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// floorDiv rounds toward negative infinity, so the identity
// l == r*floorDiv(l,r) + floorMod(l,r) holds for every nonzero r.
func floorDiv(l, r int64) int64 {
	q := l / r
	if l%r != 0 && (l < 0) != (r < 0) {
		q--
	}
	return q
}

// floorMod yields a result whose sign follows the divisor.
func floorMod(l, r int64) int64 {
	m := l % r
	if m != 0 && (m < 0) != (r < 0) {
		m += r
	}
	return m
}
