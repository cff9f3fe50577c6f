package symbols

import (
	"errors"
	"testing"
)

func TestDeclareAndLookupLocal(t *testing.T) {
	table := NewTable()

	sym := NewVar("x", "integer")
	if err := table.Declare("x", sym); err != nil {
		t.Fatalf("unexpected declare error: %v", err)
	}

	got := table.LookupLocal("x")
	if got != sym {
		t.Errorf("expected the declared symbol, got %v", got)
	}
	if table.LookupLocal("y") != nil {
		t.Error("expected nil for undeclared name")
	}
}

func TestDeclareDuplicate(t *testing.T) {
	table := NewTable()

	first := NewVar("x", "integer")
	if err := table.Declare("x", first); err != nil {
		t.Fatalf("unexpected declare error: %v", err)
	}

	err := table.Declare("x", NewVar("x", "boolean"))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The first binding must survive a rejected duplicate
	if got := table.LookupLocal("x"); got != first {
		t.Errorf("expected the first binding to remain, got %v", got)
	}
}

func TestLookupGlobalShadowing(t *testing.T) {
	table := NewTable()

	outer := NewVar("x", "integer")
	if err := table.Declare("x", outer); err != nil {
		t.Fatalf("unexpected declare error: %v", err)
	}

	table.PushScope()
	inner := NewVar("x", "boolean")
	if err := table.Declare("x", inner); err != nil {
		t.Fatalf("redeclaring in a fresh scope should succeed, got %v", err)
	}

	if got := table.LookupGlobal("x"); got != inner {
		t.Errorf("expected the inner binding to shadow, got %v", got)
	}
	if got := table.LookupLocal("x"); got != inner {
		t.Errorf("expected the inner binding locally, got %v", got)
	}

	table.PopScope()
	if got := table.LookupGlobal("x"); got != outer {
		t.Errorf("expected the outer binding after pop, got %v", got)
	}
}

func TestLookupGlobalSkipsInnerScopes(t *testing.T) {
	table := NewTable()

	sym := NewVar("n", "integer")
	if err := table.Declare("n", sym); err != nil {
		t.Fatalf("unexpected declare error: %v", err)
	}

	table.PushScope()
	table.PushScope()

	if got := table.LookupGlobal("n"); got != sym {
		t.Errorf("expected the global binding through empty scopes, got %v", got)
	}
	if got := table.LookupLocal("n"); got != nil {
		t.Errorf("expected no local binding, got %v", got)
	}
}

func TestLookupGlobalMiss(t *testing.T) {
	table := NewTable()
	if got := table.LookupGlobal("missing"); got != nil {
		t.Errorf("expected nil for a name bound nowhere, got %v", got)
	}
}

func TestPopScopeUnderflowPanics(t *testing.T) {
	table := NewTable()
	table.PopScope() // removes the global scope

	defer func() {
		if recover() == nil {
			t.Error("expected a panic on scope stack underflow")
		}
	}()
	table.PopScope()
}

func TestFieldTableIsIndependentOfStack(t *testing.T) {
	table := NewTable()

	fields := NewScope()
	if err := fields.Declare("x", NewVar("x", "integer")); err != nil {
		t.Fatalf("unexpected declare error: %v", err)
	}
	if err := table.Declare("Point", NewStructDecl("Point", fields)); err != nil {
		t.Fatalf("unexpected declare error: %v", err)
	}

	// The field name must not be visible through the lexical stack
	if got := table.LookupGlobal("x"); got != nil {
		t.Errorf("field table leaked into the scope stack: %v", got)
	}

	decl := table.LookupGlobal("Point")
	if decl == nil || decl.Category != StructDecl {
		t.Fatalf("expected a struct-decl symbol, got %v", decl)
	}
	if decl.Fields.Lookup("x") == nil {
		t.Error("expected the field to be reachable through the struct symbol")
	}
}

func TestSymbolStrings(t *testing.T) {
	fn := NewFunction("f", "integer", []string{"integer", "boolean"})
	if got := fn.String(); got != "integer, boolean -> integer" {
		t.Errorf("unexpected function signature string: %q", got)
	}

	noArgs := NewFunction("g", "void", nil)
	if got := noArgs.String(); got != "void -> void" {
		t.Errorf("unexpected nullary signature string: %q", got)
	}

	sv := NewStructVar("p", "Point")
	if sv.Category != StructVar || sv.StructType != "Point" {
		t.Errorf("unexpected struct-var symbol: %+v", sv)
	}

	if Undefined.Category != SymUndefined {
		t.Error("Undefined sentinel must carry the undefined category")
	}
}
