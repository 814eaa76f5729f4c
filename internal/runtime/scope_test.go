package runtime

import "testing"

func TestScopeChainLookup(t *testing.T) {
	parent := NewScope(nil)
	parent.Set("bar", NumberVal(10))
	child := NewScope(parent)

	v, ok := child.Get("bar")
	if !ok {
		t.Fatal("child did not see parent binding")
	}
	if v.(NumberVal) != 10 {
		t.Errorf("expected 10, got %s", v)
	}
}

func TestScopeShadowingIsWriteLocal(t *testing.T) {
	parent := NewScope(nil)
	parent.Set("bar", NumberVal(10))
	child := NewScope(parent)

	// Writing in the child shadows; the parent binding is untouched.
	child.Set("bar", NumberVal(20))

	if v, _ := parent.Get("bar"); v.(NumberVal) != 10 {
		t.Errorf("parent binding mutated: got %s", v)
	}
	if v, _ := child.Get("bar"); v.(NumberVal) != 20 {
		t.Errorf("child binding wrong: got %s", v)
	}
}

func TestScopeRootMiss(t *testing.T) {
	root := NewScope(nil)
	if _, ok := root.Get("bar"); ok {
		t.Fatal("empty root scope resolved a name")
	}
}

func TestScopeOverwriteLocal(t *testing.T) {
	sc := NewScope(nil)
	sc.Set("x", NumberVal(1))
	sc.Set("x", NumberVal(2))
	if v, _ := sc.Get("x"); v.(NumberVal) != 2 {
		t.Errorf("expected 2 after overwrite, got %s", v)
	}
}
