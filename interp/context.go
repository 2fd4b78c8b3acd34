package interp

import "lox/parser"

// Context holds variable bindings for one evaluation run.
type Context interface {
	PushScope(name string)
	PopScope() error
	// Declare binds name to nil in the innermost scope unless it is
	// already bound there.
	Declare(name string)
	// Assign binds name in the innermost scope. Outer scopes are not
	// searched, so assigning inside a block shadows rather than mutates.
	Assign(name string, v parser.Value)
	// Get returns the innermost binding of name.
	Get(name string) (parser.Value, bool)
}

type scope struct {
	name string
	vars map[string]parser.Value
}

// ScopeStack is a Context backed by a stack of scopes whose bottom entry,
// the global scope, is never removed.
type ScopeStack struct {
	scopes []scope
}

func NewScopeStack() *ScopeStack {
	return &ScopeStack{scopes: []scope{{name: "global", vars: map[string]parser.Value{}}}}
}

func (s *ScopeStack) PushScope(name string) {
	s.scopes = append(s.scopes, scope{name: name, vars: map[string]parser.Value{}})
}

func (s *ScopeStack) PopScope() error {
	if len(s.scopes) == 1 {
		return evalErrorf("Cannot pop the global scope")
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	return nil
}

func (s *ScopeStack) innermost() scope {
	return s.scopes[len(s.scopes)-1]
}

func (s *ScopeStack) Declare(name string) {
	vars := s.innermost().vars
	if _, ok := vars[name]; !ok {
		vars[name] = parser.Nil
	}
}

func (s *ScopeStack) Assign(name string, v parser.Value) {
	s.innermost().vars[name] = v
}

func (s *ScopeStack) Get(name string) (parser.Value, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if v, ok := s.scopes[i].vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Depth is the number of scopes, the global one included.
func (s *ScopeStack) Depth() int {
	return len(s.scopes)
}

type detached struct{}

// Detached returns a Context that binds nothing: every lookup is undefined
// and writes are dropped. It backs evaluation of lone expressions.
func Detached() Context {
	return detached{}
}

func (detached) PushScope(string) {}
func (detached) PopScope() error { return nil }
func (detached) Declare(string) {}
func (detached) Assign(string, parser.Value) {}
func (detached) Get(string) (parser.Value, bool) { return nil, false }
