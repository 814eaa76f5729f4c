package runtime

import "log/slog"

// Scope is a node in the tree of environments: an owned name table plus an
// optional parent. The parent pointer is a non-owning back-reference; scope
// records are reclaimed when the call holding the last reference returns.
type Scope struct {
	vars   map[string]Value
	parent *Scope
}

// NewScope creates a scope chained to parent. A nil parent yields a root
// scope, the lookup boundary.
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]Value), parent: parent}
}

// Get looks a name up by walking the scope chain outward from this scope.
func (s *Scope) Get(name string) (Value, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name in this scope's own table. It never touches an ancestor:
// writing a name already bound in a parent creates an independent local
// binding that shadows it.
func (s *Scope) Set(name string, v Value) {
	slog.Debug("scope bind", "name", name, "type", v.TypeName())
	s.vars[name] = v
}
