package checker

import (
	"github.com/briolang/brio/internal/ast"
	"github.com/briolang/brio/internal/diagnostic"
	"github.com/briolang/brio/internal/symbols"
)

// Checker performs name resolution on the AST: it declares symbols at
// declaration sites, binds every identifier use to a symbol (or the
// Undefined sentinel), and accumulates diagnostics. User errors never
// stop the walk; one pass reports every independent mistake.
type Checker struct {
	diag  *diagnostic.Diagnostics
	table *symbols.Table
}

// Analyze resolves every identifier in prog, annotating identifier
// nodes in place, and returns the accumulated diagnostics. The caller
// decides whether to continue the pipeline.
func Analyze(prog *ast.Program) *diagnostic.Diagnostics {
	c := &Checker{
		diag:  diagnostic.New(),
		table: symbols.NewTable(),
	}
	for _, d := range prog.Decls {
		c.checkDecl(d)
	}
	return c.diag
}

func (c *Checker) checkDecl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(d)
	case *ast.FuncDecl:
		c.checkFuncDecl(d)
	case *ast.StructDecl:
		c.checkStructDecl(d)
	}
}

// checkVarDecl handles a variable declaration in the current lexical
// scope
func (c *Checker) checkVarDecl(d *ast.VarDecl) {
	c.declareVar(d, c.table.Current())
}

// declareVar validates d and declares its symbol into the scope `into`
// (the current lexical scope, or a struct's field table). Struct-type
// validity is always checked against the lexical scope stack.
func (c *Checker) declareVar(d *ast.VarDecl, into *symbols.Scope) {
	name := d.Name
	switch d.Type.Kind {
	case ast.Void:
		c.diag.Report(name.Line, name.Column, diagnostic.NonFunctionDeclaredVoid)
	case ast.StructRef:
		sid := d.Type.StructName
		decl := c.table.LookupGlobal(sid.Name)
		if decl == nil || decl.Category != symbols.StructDecl {
			c.diag.Report(sid.Line, sid.Column, diagnostic.InvalidStructTypeName)
			return
		}
		sid.Sym = decl
		c.declare(into, name, symbols.NewStructVar(name.Name, sid.Name))
	default:
		c.declare(into, name, symbols.NewVar(name.Name, d.Type.String()))
	}
}

// declare binds sym to name in the scope. A duplicate is reported at
// the second declaration's position and dropped; the first binding
// stays. Exception: a name already bound to a Formal in the same scope
// is left untouched, silently — the original front end accepts a local
// that collides with a parameter without rebinding or diagnosing it.
func (c *Checker) declare(into *symbols.Scope, name *ast.Ident, sym *symbols.Symbol) {
	if existing := into.Lookup(name.Name); existing != nil && existing.Category == symbols.Formal {
		name.Sym = existing
		return
	}
	if err := into.Declare(name.Name, sym); err != nil {
		c.diag.Report(name.Line, name.Column, diagnostic.MultiplyDeclared)
		return
	}
	name.Sym = sym
}

// checkFuncDecl declares the function in the enclosing scope, then
// analyzes formals and body in one fresh scope
func (c *Checker) checkFuncDecl(d *ast.FuncDecl) {
	paramTypes := make([]string, 0, len(d.Formals))
	for _, f := range d.Formals {
		paramTypes = append(paramTypes, f.Type.String())
	}

	fnSym := symbols.NewFunction(d.Name.Name, d.ReturnType.String(), paramTypes)
	if err := c.table.Declare(d.Name.Name, fnSym); err != nil {
		c.diag.Report(d.Name.Line, d.Name.Column, diagnostic.MultiplyDeclared)
	} else {
		d.Name.Sym = fnSym
	}

	c.table.PushScope()
	for _, f := range d.Formals {
		fsym := symbols.NewFormal(f.Name.Name, f.Type.String())
		if err := c.table.Declare(f.Name.Name, fsym); err != nil {
			c.diag.Report(f.Name.Line, f.Name.Column, diagnostic.MultiplyDeclared)
		} else {
			f.Name.Sym = fsym
		}
	}
	c.checkBlockBody(d.Body)
	c.table.PopScope()
}

// checkStructDecl declares the struct symbol, then analyzes each field
// against the struct's own field table — a satellite scope that never
// enters the scope stack. The symbol is declared before the fields so
// a field may name its own struct type.
func (c *Checker) checkStructDecl(d *ast.StructDecl) {
	fields := symbols.NewScope()
	sym := symbols.NewStructDecl(d.Name.Name, fields)
	if err := c.table.Declare(d.Name.Name, sym); err != nil {
		c.diag.Report(d.Name.Line, d.Name.Column, diagnostic.MultiplyDeclared)
	} else {
		d.Name.Sym = sym
	}

	for _, f := range d.Fields {
		c.declareVar(f, fields)
	}
}

// checkBlockScoped analyzes a block in its own fresh scope
func (c *Checker) checkBlockScoped(b *ast.Block) {
	c.table.PushScope()
	c.checkBlockBody(b)
	c.table.PopScope()
}

// checkBlockBody analyzes a block's declarations then statements in
// the current scope (function bodies share the formals' scope)
func (c *Checker) checkBlockBody(b *ast.Block) {
	for _, d := range b.Decls {
		c.checkVarDecl(d)
	}
	for _, s := range b.Stmts {
		c.checkStmt(s)
	}
}

func (c *Checker) checkStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.AssignStmt:
		c.resolveExpr(s.Assign)
	case *ast.PostIncStmt:
		c.resolveExpr(s.Target)
	case *ast.PostDecStmt:
		c.resolveExpr(s.Target)
	case *ast.IfStmt:
		c.resolveExpr(s.Cond)
		c.checkBlockScoped(s.Then)
		if s.Else != nil {
			c.checkBlockScoped(s.Else)
		}
	case *ast.WhileStmt:
		c.resolveExpr(s.Cond)
		c.checkBlockScoped(s.Body)
	case *ast.ReadStmt:
		c.resolveExpr(s.Target)
	case *ast.WriteStmt:
		c.resolveExpr(s.Value)
	case *ast.CallStmt:
		c.resolveExpr(s.Call)
	case *ast.ReturnStmt:
		if s.Value != nil {
			c.resolveExpr(s.Value)
		}
	}
}

// resolveExpr resolves every identifier use inside e. The returned
// symbol is meaningful only for locations (identifiers and colon
// accesses); all other expressions yield the Undefined sentinel, which
// keeps the walk total without special cases.
func (c *Checker) resolveExpr(e ast.Expr) *symbols.Symbol {
	switch e := e.(type) {
	case *ast.Ident:
		return c.resolveIdent(e)
	case *ast.AccessExpr:
		return c.resolveAccess(e)
	case *ast.AssignExpr:
		c.resolveExpr(e.Target)
		c.resolveExpr(e.Value)
		return symbols.Undefined
	case *ast.CallExpr:
		c.resolveIdent(e.Callee)
		for _, a := range e.Args {
			c.resolveExpr(a)
		}
		return symbols.Undefined
	case *ast.UnaryExpr:
		c.resolveExpr(e.Operand)
		return symbols.Undefined
	case *ast.BinaryExpr:
		c.resolveExpr(e.Left)
		c.resolveExpr(e.Right)
		return symbols.Undefined
	default:
		// literals bind nothing
		return symbols.Undefined
	}
}

// resolveIdent binds an identifier use through the scope stack
func (c *Checker) resolveIdent(e *ast.Ident) *symbols.Symbol {
	sym := c.table.LookupGlobal(e.Name)
	if sym == nil {
		c.diag.Report(e.Line, e.Column, diagnostic.UndeclaredIdentifier)
		sym = symbols.Undefined
	}
	e.Sym = sym
	return sym
}

// resolveAccess resolves a colon access left-to-right. The left side
// must resolve to a struct variable; its struct type's field table is
// re-resolved by name and the field looked up there. An Undefined left
// side yields Undefined without a second diagnostic.
func (c *Checker) resolveAccess(a *ast.AccessExpr) *symbols.Symbol {
	left := c.resolveExpr(a.Target)

	if left == symbols.Undefined {
		a.Field.Sym = symbols.Undefined
		return symbols.Undefined
	}
	if left.Category != symbols.StructVar {
		line, col := rightmostPos(a.Target)
		c.diag.Report(line, col, diagnostic.NonStructColonAccess)
		a.Field.Sym = symbols.Undefined
		return symbols.Undefined
	}

	decl := c.table.LookupGlobal(left.StructType)
	if decl == nil || decl.Category != symbols.StructDecl {
		// The declaration site already validated the type name; a
		// shadowed struct name here is not the user's mistake twice.
		a.Field.Sym = symbols.Undefined
		return symbols.Undefined
	}

	fld := decl.Fields.Lookup(a.Field.Name)
	if fld == nil {
		c.diag.Report(a.Field.Line, a.Field.Column, diagnostic.InvalidStructFieldName)
		a.Field.Sym = symbols.Undefined
		return symbols.Undefined
	}
	a.Field.Sym = fld
	return fld
}

// rightmostPos is the position of the identifier that actually
// resolved on the left side of a colon access
func rightmostPos(e ast.Expr) (int, int) {
	if acc, ok := e.(*ast.AccessExpr); ok {
		return acc.Field.Pos()
	}
	return e.Pos()
}
