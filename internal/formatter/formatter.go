package formatter

import (
	"fmt"
	"strings"

	"github.com/briolang/brio/internal/ast"
)

// Format takes an AST Program and returns canonical Brio source code.
func Format(prog *ast.Program) string {
	f := &formatter{}
	f.formatProgram(prog)
	return f.sb.String()
}

type formatter struct {
	sb     strings.Builder
	indent int
}

func (f *formatter) emit(s string) {
	f.sb.WriteString(s)
}

func (f *formatter) emitf(format string, args ...any) {
	f.sb.WriteString(fmt.Sprintf(format, args...))
}

func (f *formatter) emitIndent() {
	f.sb.WriteString(strings.Repeat("    ", f.indent))
}

func (f *formatter) emitLinef(format string, args ...any) {
	f.emitIndent()
	f.sb.WriteString(fmt.Sprintf(format, args...))
	f.sb.WriteString("\n")
}

func (f *formatter) formatProgram(prog *ast.Program) {
	for i, d := range prog.Decls {
		if i > 0 {
			if _, ok := d.(*ast.VarDecl); !ok {
				f.sb.WriteString("\n")
			}
		}
		f.formatDecl(d)
	}
}

func (f *formatter) formatDecl(d ast.Decl) {
	switch d := d.(type) {
	case *ast.VarDecl:
		f.formatVarDecl(d)
	case *ast.FuncDecl:
		f.formatFuncDecl(d)
	case *ast.StructDecl:
		f.formatStructDecl(d)
	}
}

func (f *formatter) formatVarDecl(d *ast.VarDecl) {
	f.emitLinef("%s %s.", typeString(d.Type), d.Name.Name)
}

func (f *formatter) formatFuncDecl(d *ast.FuncDecl) {
	f.emitIndent()
	f.emitf("%s %s(", typeString(d.ReturnType), d.Name.Name)
	for i, p := range d.Formals {
		if i > 0 {
			f.emit(", ")
		}
		f.emitf("%s %s", typeString(p.Type), p.Name.Name)
	}
	f.emit(") {\n")
	f.indent++
	f.formatBlockBody(d.Body)
	f.indent--
	f.emitLinef("}")
}

func (f *formatter) formatStructDecl(d *ast.StructDecl) {
	f.emitLinef("struct %s {", d.Name.Name)
	f.indent++
	for _, fld := range d.Fields {
		f.formatVarDecl(fld)
	}
	f.indent--
	f.emitLinef("}")
}

func (f *formatter) formatBlockBody(b *ast.Block) {
	for _, d := range b.Decls {
		f.formatVarDecl(d)
	}
	for _, s := range b.Stmts {
		f.formatStmt(s)
	}
}

func (f *formatter) formatStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.AssignStmt:
		f.emitLinef("%s = %s.", exprString(s.Assign.Target), exprString(s.Assign.Value))
	case *ast.PostIncStmt:
		f.emitLinef("%s++.", exprString(s.Target))
	case *ast.PostDecStmt:
		f.emitLinef("%s--.", exprString(s.Target))
	case *ast.IfStmt:
		f.emitLinef("if (%s) {", exprString(s.Cond))
		f.indent++
		f.formatBlockBody(s.Then)
		f.indent--
		if s.Else != nil {
			f.emitLinef("} else {")
			f.indent++
			f.formatBlockBody(s.Else)
			f.indent--
		}
		f.emitLinef("}")
	case *ast.WhileStmt:
		f.emitLinef("while (%s) {", exprString(s.Cond))
		f.indent++
		f.formatBlockBody(s.Body)
		f.indent--
		f.emitLinef("}")
	case *ast.ReadStmt:
		f.emitLinef("input -> %s.", exprString(s.Target))
	case *ast.WriteStmt:
		f.emitLinef("disp <- %s.", exprString(s.Value))
	case *ast.CallStmt:
		f.emitLinef("%s.", exprString(s.Call))
	case *ast.ReturnStmt:
		if s.Value != nil {
			f.emitLinef("return %s.", exprString(s.Value))
		} else {
			f.emitLinef("return.")
		}
	}
}

func typeString(t *ast.TypeRef) string {
	if t.Kind == ast.StructRef {
		return "struct " + t.StructName.Name
	}
	return t.String()
}

// exprString renders an expression on one line. Binary and assignment
// expressions are parenthesised so the output re-parses with the same
// shape regardless of the original spacing.
func exprString(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.IntLit:
		return fmt.Sprintf("%d", e.Value)
	case *ast.StrLit:
		return e.Value
	case *ast.BoolLit:
		if e.Value {
			return "true"
		}
		return "false"
	case *ast.AccessExpr:
		return exprString(e.Target) + ":" + e.Field.Name
	case *ast.AssignExpr:
		return fmt.Sprintf("(%s = %s)", exprString(e.Target), exprString(e.Value))
	case *ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = exprString(a)
		}
		return fmt.Sprintf("%s(%s)", e.Callee.Name, strings.Join(args, ", "))
	case *ast.UnaryExpr:
		return fmt.Sprintf("(%s%s)", e.Op, exprString(e.Operand))
	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", exprString(e.Left), e.Op, exprString(e.Right))
	default:
		return "?"
	}
}
