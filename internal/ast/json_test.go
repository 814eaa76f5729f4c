package ast

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func decode(t *testing.T, doc string) *Program {
	t.Helper()
	prog, err := DecodeProgram(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return prog
}

func TestDecodeEveryNodeKind(t *testing.T) {
	doc := `{
	  "kind": "Program",
	  "body": [
	    {"kind": "FuncDef", "name": "f", "fn": {
	      "kind": "FuncLit",
	      "params": ["a", "b"],
	      "body": [
	        {"kind": "IfExpr",
	         "condition": {"kind": "BinaryExpr", "op": "<",
	           "left": {"kind": "Ident", "name": "a"},
	           "right": {"kind": "Ident", "name": "b"}},
	         "then": [{"kind": "PrintExpr", "expr": {"kind": "Ident", "name": "a"}}],
	         "else": [{"kind": "UnaryExpr", "op": "-", "operand": {"kind": "Ident", "name": "b"}}]}
	      ]
	    }},
	    {"kind": "CallExpr",
	     "callee": {"kind": "Ident", "name": "f"},
	     "args": [{"kind": "NumberLit", "value": 1}, {"kind": "ReadExpr", "name": "x"}]}
	  ]
	}`

	prog := decode(t, doc)
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}

	def, ok := prog.Body[0].(*FuncDef)
	if !ok {
		t.Fatalf("statement 0 is %T, want FuncDef", prog.Body[0])
	}
	if def.Name != "f" {
		t.Errorf("definition name: got %q", def.Name)
	}
	if got := def.Fn.Params; len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("params: got %v", got)
	}
	cond, ok := def.Fn.Body[0].(*IfExpr)
	if !ok {
		t.Fatalf("function body[0] is %T, want IfExpr", def.Fn.Body[0])
	}
	cmp, ok := cond.Condition.(*BinaryExpr)
	if !ok || cmp.Op != OpLt {
		t.Errorf("condition: got %#v", cond.Condition)
	}
	if _, ok := cond.Then[0].(*PrintExpr); !ok {
		t.Errorf("then branch is %T, want PrintExpr", cond.Then[0])
	}
	neg, ok := cond.Else[0].(*UnaryExpr)
	if !ok || neg.Op != OpNeg {
		t.Errorf("else branch: got %#v", cond.Else[0])
	}

	callExpr, ok := prog.Body[1].(*CallExpr)
	if !ok {
		t.Fatalf("statement 1 is %T, want CallExpr", prog.Body[1])
	}
	if lit, ok := callExpr.Args[0].(*NumberLit); !ok || lit.Value != 1 {
		t.Errorf("argument 0: got %#v", callExpr.Args[0])
	}
	if rd, ok := callExpr.Args[1].(*ReadExpr); !ok || rd.Name != "x" {
		t.Errorf("argument 1: got %#v", callExpr.Args[1])
	}
}

func TestDecodeOmittedListsAreEmpty(t *testing.T) {
	prog := decode(t, `{"kind": "Program", "body": [
	  {"kind": "IfExpr", "condition": {"kind": "NumberLit", "value": 0}}
	]}`)
	cond := prog.Body[0].(*IfExpr)
	if len(cond.Then) != 0 || len(cond.Else) != 0 {
		t.Errorf("expected empty branches, got %d/%d", len(cond.Then), len(cond.Else))
	}
}

func TestDecodeSpan(t *testing.T) {
	prog := decode(t, `{"kind": "Program", "body": [
	  {"kind": "Ident", "name": "x",
	   "span": {"start": {"line": 3, "column": 7}, "end": {"line": 3, "column": 8}}}
	]}`)
	s := prog.Body[0].GetSpan()
	if s.Start.Line != 3 || s.Start.Column != 7 || s.End.Column != 8 {
		t.Errorf("span: got %s", s)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want string
	}{
		{"unknown kind", `{"kind": "WhileExpr"}`, "unknown node kind"},
		{"missing kind", `{"body": []}`, `missing "kind"`},
		{"missing field", `{"kind": "Program", "body": [{"kind": "Ident"}]}`, `missing "name"`},
		{"wrong field type", `{"kind": "Program", "body": [{"kind": "NumberLit", "value": "ten"}]}`, "want integer"},
		{"top level not program", `{"kind": "NumberLit", "value": 1}`, "want Program"},
		{"wrong fn kind", `{"kind": "Program", "body": [{"kind": "FuncDef", "name": "f", "fn": {"kind": "NumberLit", "value": 1}}]}`, "want FuncLit"},
		{"not json", `]`, "program document"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeProgram(strings.NewReader(tc.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected error containing %q, got %q", tc.want, err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	prog := &Program{Body: []Node{
		&FuncDef{Name: "double", Fn: &FuncLit{
			Params: []string{"n"},
			Body: []Node{
				&BinaryExpr{Op: OpMul, Left: &Ident{Name: "n"}, Right: &NumberLit{Value: 2}},
			},
		}},
		&PrintExpr{Expr: &CallExpr{
			Callee: &Ident{Name: "double"},
			Args:   []Node{&NumberLit{Value: 21}},
		}},
	}}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(NodeToMap(prog)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := DecodeProgram(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	def := back.Body[0].(*FuncDef)
	if def.Name != "double" || len(def.Fn.Params) != 1 || def.Fn.Params[0] != "n" {
		t.Errorf("definition lost in round trip: %#v", def)
	}
	mul := def.Fn.Body[0].(*BinaryExpr)
	if mul.Op != OpMul || mul.Right.(*NumberLit).Value != 2 {
		t.Errorf("expression lost in round trip: %#v", mul)
	}
	callExpr := back.Body[1].(*PrintExpr).Expr.(*CallExpr)
	if callExpr.Args[0].(*NumberLit).Value != 21 {
		t.Errorf("call lost in round trip: %#v", callExpr)
	}
}
