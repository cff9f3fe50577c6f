package checker

import (
	"reflect"
	"testing"

	"github.com/briolang/brio/internal/ast"
	"github.com/briolang/brio/internal/diagnostic"
	"github.com/briolang/brio/internal/parser"
	"github.com/briolang/brio/internal/symbols"
)

func parseAndAnalyze(t *testing.T, source string) (*ast.Program, *diagnostic.Diagnostics) {
	t.Helper()
	p := parser.New(source)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected parse errors: %s", p.Diagnostics().Format("test"))
	}
	return prog, Analyze(prog)
}

type wantDiag struct {
	kind diagnostic.Kind
	line int
	col  int
}

func expectDiags(t *testing.T, d *diagnostic.Diagnostics, want ...wantDiag) {
	t.Helper()
	got := d.All()
	if len(got) != len(want) {
		t.Fatalf("expected %d diagnostics, got %d: %s", len(want), len(got), d.Format("test"))
	}
	for i, w := range want {
		g := got[i]
		if g.Kind != w.kind || g.Line != w.line || g.Column != w.col {
			t.Errorf("diagnostic[%d]: expected %s at %d:%d, got %s at %d:%d",
				i, w.kind, w.line, w.col, g.Kind, g.Line, g.Column)
		}
	}
}

func TestEmptyProgram(t *testing.T) {
	_, diags := parseAndAnalyze(t, "")
	if diags.Count() != 0 {
		t.Errorf("expected no diagnostics for an empty program, got %s", diags.Format("test"))
	}
}

func TestShadowingAcrossScopes(t *testing.T) {
	prog, diags := parseAndAnalyze(t, `integer x.
void main() {
    boolean x.
    x = true.
}`)
	expectDiags(t, diags)

	fn := prog.Decls[1].(*ast.FuncDecl)
	use := fn.Body.Stmts[0].(*ast.AssignStmt).Assign.Target.(*ast.Ident)
	if use.Sym == nil {
		t.Fatal("expected the use to be bound")
	}
	if use.Sym.Type != "boolean" {
		t.Errorf("expected the inner binding to shadow the outer, got type %q", use.Sym.Type)
	}
}

func TestMultiplyDeclared(t *testing.T) {
	_, diags := parseAndAnalyze(t, `integer x.
boolean x.`)
	expectDiags(t, diags, wantDiag{diagnostic.MultiplyDeclared, 2, 9})
}

func TestMultiplyDeclaredKeepsFirstBinding(t *testing.T) {
	prog, diags := parseAndAnalyze(t, `integer x.
boolean x.
void main() {
    x = 1.
}`)
	expectDiags(t, diags, wantDiag{diagnostic.MultiplyDeclared, 2, 9})

	fn := prog.Decls[2].(*ast.FuncDecl)
	use := fn.Body.Stmts[0].(*ast.AssignStmt).Assign.Target.(*ast.Ident)
	if use.Sym == nil || use.Sym.Type != "integer" {
		t.Errorf("expected the use to bind to the first declaration, got %v", use.Sym)
	}
}

func TestUndeclaredIdentifier(t *testing.T) {
	prog, diags := parseAndAnalyze(t, `void main() {
    x = 1.
}`)
	expectDiags(t, diags, wantDiag{diagnostic.UndeclaredIdentifier, 2, 5})

	fn := prog.Decls[0].(*ast.FuncDecl)
	use := fn.Body.Stmts[0].(*ast.AssignStmt).Assign.Target.(*ast.Ident)
	if use.Sym != symbols.Undefined {
		t.Errorf("expected the use to bind to the Undefined sentinel, got %v", use.Sym)
	}
}

func TestStructFieldResolution(t *testing.T) {
	prog, diags := parseAndAnalyze(t, `struct Point {
    integer x.
    integer y.
}
struct Point p.
void main() {
    p:x = 1.
    p:z = 2.
}`)
	expectDiags(t, diags, wantDiag{diagnostic.InvalidStructFieldName, 8, 7})

	fn := prog.Decls[2].(*ast.FuncDecl)
	good := fn.Body.Stmts[0].(*ast.AssignStmt).Assign.Target.(*ast.AccessExpr)
	if good.Field.Sym == nil || good.Field.Sym == symbols.Undefined {
		t.Error("expected p:x to bind to the field symbol")
	}
	if good.Field.Sym.Type != "integer" {
		t.Errorf("expected field x to carry type integer, got %q", good.Field.Sym.Type)
	}
	bad := fn.Body.Stmts[1].(*ast.AssignStmt).Assign.Target.(*ast.AccessExpr)
	if bad.Field.Sym != symbols.Undefined {
		t.Errorf("expected p:z to bind Undefined, got %v", bad.Field.Sym)
	}
}

func TestNonStructColonAccess(t *testing.T) {
	prog, diags := parseAndAnalyze(t, `integer a.
void main() {
    a:x = 1.
}`)
	expectDiags(t, diags, wantDiag{diagnostic.NonStructColonAccess, 3, 5})

	fn := prog.Decls[1].(*ast.FuncDecl)
	acc := fn.Body.Stmts[0].(*ast.AssignStmt).Assign.Target.(*ast.AccessExpr)
	if acc.Field.Sym != symbols.Undefined {
		t.Errorf("expected the field to bind Undefined, got %v", acc.Field.Sym)
	}
}

func TestStructOfStructChain(t *testing.T) {
	prog, diags := parseAndAnalyze(t, `struct Inner {
    integer v.
}
struct Outer {
    struct Inner i.
}
struct Outer o.
void main() {
    o:i:v = 1.
}`)
	expectDiags(t, diags)

	fn := prog.Decls[3].(*ast.FuncDecl)
	acc := fn.Body.Stmts[0].(*ast.AssignStmt).Assign.Target.(*ast.AccessExpr)
	if acc.Field.Sym == nil || acc.Field.Sym.Type != "integer" {
		t.Errorf("expected o:i:v to bind the integer field, got %v", acc.Field.Sym)
	}
}

func TestMidChainNonStructAccess(t *testing.T) {
	_, diags := parseAndAnalyze(t, `struct Outer {
    integer n.
}
struct Outer o.
void main() {
    o:n:v = 1.
}`)
	// The error points at n, the identifier that resolved to a
	// non-struct, not at the base of the chain.
	expectDiags(t, diags, wantDiag{diagnostic.NonStructColonAccess, 6, 7})
}

func TestCascadeSuppression(t *testing.T) {
	_, diags := parseAndAnalyze(t, `void main() {
    q:x:y = 1.
}`)
	// An undefined base yields exactly one diagnostic; the colon
	// accesses downstream stay silent.
	expectDiags(t, diags, wantDiag{diagnostic.UndeclaredIdentifier, 2, 5})
}

func TestNonFunctionDeclaredVoid(t *testing.T) {
	_, diags := parseAndAnalyze(t, "void x.")
	expectDiags(t, diags, wantDiag{diagnostic.NonFunctionDeclaredVoid, 1, 6})
}

func TestInvalidStructTypeName(t *testing.T) {
	_, diags := parseAndAnalyze(t, `struct Missing m.
void main() {
    m = 1.
}`)
	// The declaration is dropped, so the later use is undeclared too.
	expectDiags(t, diags,
		wantDiag{diagnostic.InvalidStructTypeName, 1, 8},
		wantDiag{diagnostic.UndeclaredIdentifier, 3, 5},
	)
}

func TestNonStructTypeNameRejected(t *testing.T) {
	_, diags := parseAndAnalyze(t, `integer n.
struct n bad.`)
	expectDiags(t, diags, wantDiag{diagnostic.InvalidStructTypeName, 2, 8})
}

func TestLocalShadowingFormalIsSilent(t *testing.T) {
	prog, diags := parseAndAnalyze(t, `void f(integer a) {
    boolean a.
    a = 5.
}`)
	expectDiags(t, diags)

	fn := prog.Decls[0].(*ast.FuncDecl)
	decl := fn.Body.Decls[0]
	if decl.Name.Sym == nil || decl.Name.Sym.Category != symbols.Formal {
		t.Errorf("expected the colliding local to stay bound to the formal, got %v", decl.Name.Sym)
	}
	use := fn.Body.Stmts[0].(*ast.AssignStmt).Assign.Target.(*ast.Ident)
	if use.Sym == nil || use.Sym.Type != "integer" {
		t.Errorf("expected uses to see the formal's binding, got %v", use.Sym)
	}
}

func TestDuplicateFormals(t *testing.T) {
	_, diags := parseAndAnalyze(t, `void f(integer a, boolean a) {
}`)
	expectDiags(t, diags, wantDiag{diagnostic.MultiplyDeclared, 1, 27})
}

func TestFunctionSignature(t *testing.T) {
	prog, diags := parseAndAnalyze(t, `integer add(integer a, boolean b) {
    return a.
}`)
	expectDiags(t, diags)

	fn := prog.Decls[0].(*ast.FuncDecl)
	sym := fn.Name.Sym
	if sym == nil || sym.Category != symbols.Function {
		t.Fatalf("expected a function symbol, got %v", sym)
	}
	if sym.ReturnType != "integer" {
		t.Errorf("expected return type integer, got %q", sym.ReturnType)
	}
	if !reflect.DeepEqual(sym.ParamTypes, []string{"integer", "boolean"}) {
		t.Errorf("unexpected parameter types: %v", sym.ParamTypes)
	}
	if got := sym.String(); got != "integer, boolean -> integer" {
		t.Errorf("unexpected signature string: %q", got)
	}
}

func TestDuplicateStructStillAnalyzesFields(t *testing.T) {
	_, diags := parseAndAnalyze(t, `struct P {
    integer x.
}
struct P {
    void y.
}`)
	expectDiags(t, diags,
		wantDiag{diagnostic.MultiplyDeclared, 4, 8},
		wantDiag{diagnostic.NonFunctionDeclaredVoid, 5, 10},
	)
}

func TestSelfReferentialStruct(t *testing.T) {
	_, diags := parseAndAnalyze(t, `struct Node {
    integer value.
    struct Node next.
}`)
	expectDiags(t, diags)
}

func TestFieldNamesDoNotLeakIntoScope(t *testing.T) {
	_, diags := parseAndAnalyze(t, `struct Point {
    integer x.
}
void main() {
    x = 1.
}`)
	expectDiags(t, diags, wantDiag{diagnostic.UndeclaredIdentifier, 5, 5})
}

func TestBranchLocalsAreScoped(t *testing.T) {
	_, diags := parseAndAnalyze(t, `void main() {
    if (true) {
        integer t.
        t = 1.
    }
    t = 2.
}`)
	expectDiags(t, diags, wantDiag{diagnostic.UndeclaredIdentifier, 6, 5})
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	source := `integer x.
boolean x.
void main() {
    y = p:q.
}`
	p := parser.New(source)
	prog := p.Parse()
	if p.Diagnostics().HasErrors() {
		t.Fatalf("unexpected parse errors: %s", p.Diagnostics().Format("test"))
	}

	first := Analyze(prog).All()
	second := Analyze(prog).All()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-analysis changed the diagnostics:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestDiagnosticMessages(t *testing.T) {
	_, diags := parseAndAnalyze(t, `integer x.
integer x.`)
	got := diags.All()[0].Message
	if got != "Identifier multiply-declared" {
		t.Errorf("unexpected message: %q", got)
	}
}
