package symbols

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned by Declare when the name is already bound in
// the target scope.
var ErrDuplicate = errors.New("name already declared in this scope")

// Scope is one lexical block's name-to-symbol mapping. Struct field
// tables are plain Scopes that never enter the scope stack.
type Scope struct {
	symbols map[string]*Symbol
}

// NewScope creates a new empty scope
func NewScope() *Scope {
	return &Scope{symbols: make(map[string]*Symbol)}
}

// Declare binds name to sym in this scope.
// Returns ErrDuplicate if the name is already bound here.
func (s *Scope) Declare(name string, sym *Symbol) error {
	if _, exists := s.symbols[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	s.symbols[name] = sym
	return nil
}

// Lookup returns the symbol bound to name in this scope, or nil
func (s *Scope) Lookup(name string) *Symbol {
	return s.symbols[name]
}

// Len returns the number of names bound in this scope
func (s *Scope) Len() int {
	return len(s.symbols)
}

// Table is the scope stack: the ordered sequence of currently-active
// scopes, innermost last. A fresh table starts with one global scope.
//
// Popping an empty table panics: push/pop pairs are tied to lexical
// block structure by the resolution engine, so an underflow is an
// engine bug, never a user error.
type Table struct {
	scopes []*Scope
}

// NewTable creates a scope stack holding a single global scope
func NewTable() *Table {
	return &Table{scopes: []*Scope{NewScope()}}
}

// PushScope enters a new innermost scope
func (t *Table) PushScope() {
	t.scopes = append(t.scopes, NewScope())
}

// PopScope leaves the innermost scope
func (t *Table) PopScope() {
	if len(t.scopes) == 0 {
		panic("symbols: scope stack underflow")
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// Depth returns the number of active scopes
func (t *Table) Depth() int {
	return len(t.scopes)
}

// Current returns the innermost scope
func (t *Table) Current() *Scope {
	if len(t.scopes) == 0 {
		panic("symbols: scope stack is empty")
	}
	return t.scopes[len(t.scopes)-1]
}

// Declare binds name in the innermost scope.
// Returns ErrDuplicate if the name is already bound there.
func (t *Table) Declare(name string, sym *Symbol) error {
	return t.Current().Declare(name, sym)
}

// LookupLocal returns the symbol bound to name in the innermost scope
// only, or nil
func (t *Table) LookupLocal(name string) *Symbol {
	return t.Current().Lookup(name)
}

// LookupGlobal scans scopes from innermost to outermost and returns the
// first symbol bound to name, or nil. Inner bindings shadow outer ones.
func (t *Table) LookupGlobal(name string) *Symbol {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym := t.scopes[i].Lookup(name); sym != nil {
			return sym
		}
	}
	return nil
}
