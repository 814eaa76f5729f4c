package ast

import (
	"encoding/json"
	"fmt"
	"io"

	"mint-lang/internal/span"
)

// This file is the AST construction boundary: program documents are the
// JSON form an external parser hands to the evaluator. Every node is a
// tagged-union object with a "kind" field; spans are optional.

// DecodeProgram reads one program document from r.
func DecodeProgram(r io.Reader) (*Program, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("program document: %w", err)
	}
	node, err := nodeFromMap(raw)
	if err != nil {
		return nil, err
	}
	prog, ok := node.(*Program)
	if !ok {
		return nil, fmt.Errorf("program document: top-level node is %T, want Program", node)
	}
	return prog, nil
}

// NodeToMap converts an AST node to a map suitable for JSON serialization,
// producing the same tagged-union structure DecodeProgram accepts.
func NodeToMap(node Node) map[string]any {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *Program:
		return m("Program", n.Span, "body", nodeSlice(n.Body))
	case *NumberLit:
		return m("NumberLit", n.Span, "value", n.Value)
	case *Ident:
		return m("Ident", n.Span, "name", n.Name)
	case *UnaryExpr:
		return m("UnaryExpr", n.Span, "op", string(n.Op), "operand", NodeToMap(n.Operand))
	case *BinaryExpr:
		return m("BinaryExpr", n.Span,
			"op", string(n.Op),
			"left", NodeToMap(n.Left),
			"right", NodeToMap(n.Right))
	case *FuncLit:
		return m("FuncLit", n.Span, "params", n.Params, "body", nodeSlice(n.Body))
	case *FuncDef:
		return m("FuncDef", n.Span, "name", n.Name, "fn", NodeToMap(n.Fn))
	case *CallExpr:
		return m("CallExpr", n.Span,
			"callee", NodeToMap(n.Callee),
			"args", nodeSlice(n.Args))
	case *IfExpr:
		return m("IfExpr", n.Span,
			"condition", NodeToMap(n.Condition),
			"then", nodeSlice(n.Then),
			"else", nodeSlice(n.Else))
	case *PrintExpr:
		return m("PrintExpr", n.Span, "expr", NodeToMap(n.Expr))
	case *ReadExpr:
		return m("ReadExpr", n.Span, "name", n.Name)
	default:
		return map[string]any{"kind": "Unknown"}
	}
}

// ---- decoding ----

func nodeFromMap(raw map[string]any) (Node, error) {
	kind, err := strField(raw, "kind", "node")
	if err != nil {
		return nil, err
	}
	base := NodeBase{Span: spanOf(raw)}

	switch kind {
	case "Program":
		body, err := nodeListField(raw, "body", kind)
		if err != nil {
			return nil, err
		}
		return &Program{NodeBase: base, Body: body}, nil

	case "NumberLit":
		value, err := intField(raw, "value", kind)
		if err != nil {
			return nil, err
		}
		return &NumberLit{NodeBase: base, Value: value}, nil

	case "Ident":
		name, err := strField(raw, "name", kind)
		if err != nil {
			return nil, err
		}
		return &Ident{NodeBase: base, Name: name}, nil

	case "UnaryExpr":
		op, err := strField(raw, "op", kind)
		if err != nil {
			return nil, err
		}
		operand, err := nodeField(raw, "operand", kind)
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{NodeBase: base, Op: Op(op), Operand: operand}, nil

	case "BinaryExpr":
		op, err := strField(raw, "op", kind)
		if err != nil {
			return nil, err
		}
		left, err := nodeField(raw, "left", kind)
		if err != nil {
			return nil, err
		}
		right, err := nodeField(raw, "right", kind)
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{NodeBase: base, Op: Op(op), Left: left, Right: right}, nil

	case "FuncLit":
		params, err := nameListField(raw, "params", kind)
		if err != nil {
			return nil, err
		}
		body, err := nodeListField(raw, "body", kind)
		if err != nil {
			return nil, err
		}
		return &FuncLit{NodeBase: base, Params: params, Body: body}, nil

	case "FuncDef":
		name, err := strField(raw, "name", kind)
		if err != nil {
			return nil, err
		}
		fnNode, err := nodeField(raw, "fn", kind)
		if err != nil {
			return nil, err
		}
		fn, ok := fnNode.(*FuncLit)
		if !ok {
			return nil, fmt.Errorf("FuncDef: \"fn\" is %T, want FuncLit", fnNode)
		}
		return &FuncDef{NodeBase: base, Name: name, Fn: fn}, nil

	case "CallExpr":
		callee, err := nodeField(raw, "callee", kind)
		if err != nil {
			return nil, err
		}
		args, err := nodeListField(raw, "args", kind)
		if err != nil {
			return nil, err
		}
		return &CallExpr{NodeBase: base, Callee: callee, Args: args}, nil

	case "IfExpr":
		condition, err := nodeField(raw, "condition", kind)
		if err != nil {
			return nil, err
		}
		then, err := nodeListField(raw, "then", kind)
		if err != nil {
			return nil, err
		}
		els, err := nodeListField(raw, "else", kind)
		if err != nil {
			return nil, err
		}
		return &IfExpr{NodeBase: base, Condition: condition, Then: then, Else: els}, nil

	case "PrintExpr":
		expr, err := nodeField(raw, "expr", kind)
		if err != nil {
			return nil, err
		}
		return &PrintExpr{NodeBase: base, Expr: expr}, nil

	case "ReadExpr":
		name, err := strField(raw, "name", kind)
		if err != nil {
			return nil, err
		}
		return &ReadExpr{NodeBase: base, Name: name}, nil

	default:
		return nil, fmt.Errorf("unknown node kind %q", kind)
	}
}

// ---- field helpers ----

func strField(raw map[string]any, key, kind string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", fmt.Errorf("%s: missing %q", kind, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s: %q is %T, want string", kind, key, v)
	}
	return s, nil
}

func intField(raw map[string]any, key, kind string) (int64, error) {
	v, ok := raw[key]
	if !ok {
		return 0, fmt.Errorf("%s: missing %q", kind, key)
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("%s: %q is %T, want integer", kind, key, v)
	}
	i, err := num.Int64()
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", kind, key, err)
	}
	return i, nil
}

func nodeField(raw map[string]any, key, kind string) (Node, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("%s: missing %q", kind, key)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: %q is %T, want node object", kind, key, v)
	}
	return nodeFromMap(obj)
}

// nodeListField decodes an ordered node sequence. A missing key is an
// empty sequence: conditional branches and argument lists may be omitted.
func nodeListField(raw map[string]any, key, kind string) ([]Node, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %q is %T, want node list", kind, key, v)
	}
	nodes := make([]Node, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: %q[%d] is %T, want node object", kind, key, i, item)
		}
		node, err := nodeFromMap(obj)
		if err != nil {
			return nil, err
		}
		nodes[i] = node
	}
	return nodes, nil
}

func nameListField(raw map[string]any, key, kind string) ([]string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: %q is %T, want name list", kind, key, v)
	}
	names := make([]string, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s: %q[%d] is %T, want string", kind, key, i, item)
		}
		names[i] = s
	}
	return names, nil
}

// spanOf extracts an optional span. Positions are advisory; anything
// malformed decodes as the zero span rather than failing the document.
func spanOf(raw map[string]any) span.Span {
	v, ok := raw["span"]
	if !ok {
		return span.Span{}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return span.Span{}
	}
	return span.Span{Start: posOf(obj["start"]), End: posOf(obj["end"])}
}

func posOf(v any) span.Pos {
	obj, ok := v.(map[string]any)
	if !ok {
		return span.Pos{}
	}
	return span.Pos{Line: intOr(obj["line"]), Column: intOr(obj["column"])}
}

func intOr(v any) int {
	num, ok := v.(json.Number)
	if !ok {
		return 0
	}
	i, err := num.Int64()
	if err != nil {
		return 0
	}
	return int(i)
}

// ---- encoding helpers ----

// m builds a map with kind and extra key-value pairs; zero spans are left
// out of the document.
func m(kind string, s span.Span, kvs ...any) map[string]any {
	result := map[string]any{"kind": kind}
	if !s.IsZero() {
		result["span"] = spanToMap(s)
	}
	for i := 0; i+1 < len(kvs); i += 2 {
		key := kvs[i].(string)
		result[key] = kvs[i+1]
	}
	return result
}

func spanToMap(s span.Span) map[string]any {
	return map[string]any{
		"start": map[string]any{"line": s.Start.Line, "column": s.Start.Column},
		"end":   map[string]any{"line": s.End.Line, "column": s.End.Column},
	}
}

func nodeSlice(nodes []Node) []any {
	result := make([]any, len(nodes))
	for i, n := range nodes {
		result[i] = NodeToMap(n)
	}
	return result
}
