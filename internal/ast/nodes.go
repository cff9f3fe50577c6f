package ast

import "github.com/briolang/brio/internal/symbols"

// Node is the base interface for all AST nodes
type Node interface {
	Pos() (line, col int)
}

// Decl nodes
type Decl interface {
	Node
	declNode()
}

// Stmt nodes
type Stmt interface {
	Node
	stmtNode()
}

// Expr nodes
type Expr interface {
	Node
	exprNode()
}

// Program is the root of the tree: the ordered top-level declarations
// of one Brio source file. The tree is structurally immutable once
// parsed; name resolution only writes the Sym annotation on Ident
// nodes.
type Program struct {
	Decls []Decl
}

func (p *Program) Pos() (int, int) {
	if len(p.Decls) > 0 {
		return p.Decls[0].Pos()
	}
	return 0, 0
}

// TypeKind distinguishes the type references of the language
type TypeKind int

const (
	Integer TypeKind = iota
	Boolean
	Void
	StructRef
)

// TypeRef is a type reference. A StructRef carries the struct's name as
// an Ident; it is re-resolved by name whenever needed rather than
// linked to a declaration.
type TypeRef struct {
	Kind       TypeKind
	StructName *Ident // non-nil only for StructRef
	Line       int
	Column     int
}

func (t *TypeRef) Pos() (int, int) { return t.Line, t.Column }

// String returns the type's source-level name
func (t *TypeRef) String() string {
	switch t.Kind {
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Void:
		return "void"
	case StructRef:
		return t.StructName.Name
	default:
		return "unknown"
	}
}

// VarDecl declares one variable or struct field
type VarDecl struct {
	Type    *TypeRef
	Name    *Ident
	IsField bool // true when this decl is a field inside a struct decl
}

func (d *VarDecl) Pos() (int, int) { return d.Name.Pos() }
func (d *VarDecl) declNode()       {}

// FormalDecl declares one function parameter
type FormalDecl struct {
	Type *TypeRef
	Name *Ident
}

func (d *FormalDecl) Pos() (int, int) { return d.Name.Pos() }
func (d *FormalDecl) declNode()       {}

// FuncDecl declares a function: return type, name, ordered formals, and
// a body block
type FuncDecl struct {
	ReturnType *TypeRef
	Name       *Ident
	Formals    []*FormalDecl
	Body       *Block
}

func (d *FuncDecl) Pos() (int, int) { return d.Name.Pos() }
func (d *FuncDecl) declNode()       {}

// StructDecl declares a named record type with an ordered field list
type StructDecl struct {
	Name   *Ident
	Fields []*VarDecl
}

func (d *StructDecl) Pos() (int, int) { return d.Name.Pos() }
func (d *StructDecl) declNode()       {}

// Block is one lexical block: local declarations followed by statements
type Block struct {
	Decls []*VarDecl
	Stmts []Stmt
}

// Statements

// AssignStmt is an assignment used as a statement
type AssignStmt struct {
	Assign *AssignExpr
}

func (s *AssignStmt) Pos() (int, int) { return s.Assign.Pos() }
func (s *AssignStmt) stmtNode()       {}

// PostIncStmt is `loc++.`
type PostIncStmt struct {
	Target Expr
}

func (s *PostIncStmt) Pos() (int, int) { return s.Target.Pos() }
func (s *PostIncStmt) stmtNode()       {}

// PostDecStmt is `loc--.`
type PostDecStmt struct {
	Target Expr
}

func (s *PostDecStmt) Pos() (int, int) { return s.Target.Pos() }
func (s *PostDecStmt) stmtNode()       {}

// IfStmt covers both `if` and `if/else`; Else is nil when absent.
// Each branch block gets its own scope.
type IfStmt struct {
	Cond   Expr
	Then   *Block
	Else   *Block // possibly nil
	Line   int
	Column int
}

func (s *IfStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *IfStmt) stmtNode()       {}

// WhileStmt is a while loop; the body block gets its own scope
type WhileStmt struct {
	Cond   Expr
	Body   *Block
	Line   int
	Column int
}

func (s *WhileStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *WhileStmt) stmtNode()       {}

// ReadStmt is `input -> loc.`
type ReadStmt struct {
	Target Expr // an Ident or AccessExpr
	Line   int
	Column int
}

func (s *ReadStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *ReadStmt) stmtNode()       {}

// WriteStmt is `disp <- exp.`
type WriteStmt struct {
	Value  Expr
	Line   int
	Column int
}

func (s *WriteStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *WriteStmt) stmtNode()       {}

// CallStmt is a function call used as a statement
type CallStmt struct {
	Call *CallExpr
}

func (s *CallStmt) Pos() (int, int) { return s.Call.Pos() }
func (s *CallStmt) stmtNode()       {}

// ReturnStmt is `return.` or `return exp.`
type ReturnStmt struct {
	Value  Expr // possibly nil
	Line   int
	Column int
}

func (s *ReturnStmt) Pos() (int, int) { return s.Line, s.Column }
func (s *ReturnStmt) stmtNode()       {}

// Expressions

// Ident is an identifier occurrence. At declaration sites only the name
// matters; at use sites the resolver writes Sym exactly once (the
// symbols.Undefined sentinel when resolution failed).
type Ident struct {
	Name   string
	Line   int
	Column int

	Sym *symbols.Symbol // set by name resolution; nil before
}

func (e *Ident) Pos() (int, int) { return e.Line, e.Column }
func (e *Ident) exprNode()       {}

// IntLit is an integer literal
type IntLit struct {
	Value  int
	Line   int
	Column int
}

func (e *IntLit) Pos() (int, int) { return e.Line, e.Column }
func (e *IntLit) exprNode()       {}

// StrLit is a string literal; Value keeps the raw quoted form
type StrLit struct {
	Value  string
	Line   int
	Column int
}

func (e *StrLit) Pos() (int, int) { return e.Line, e.Column }
func (e *StrLit) exprNode()       {}

// BoolLit is `true` or `false`
type BoolLit struct {
	Value  bool
	Line   int
	Column int
}

func (e *BoolLit) Pos() (int, int) { return e.Line, e.Column }
func (e *BoolLit) exprNode()       {}

// AccessExpr is a colon access `loc:field`. Target is an Ident or
// another AccessExpr, so chains associate to the left.
type AccessExpr struct {
	Target Expr
	Field  *Ident
}

func (e *AccessExpr) Pos() (int, int) { return e.Target.Pos() }
func (e *AccessExpr) exprNode()       {}

// AssignExpr is `loc = exp`
type AssignExpr struct {
	Target Expr
	Value  Expr
}

func (e *AssignExpr) Pos() (int, int) { return e.Target.Pos() }
func (e *AssignExpr) exprNode()       {}

// CallExpr is `f(args)`
type CallExpr struct {
	Callee *Ident
	Args   []Expr
}

func (e *CallExpr) Pos() (int, int) { return e.Callee.Pos() }
func (e *CallExpr) exprNode()       {}

// UnaryOp is the operator of a UnaryExpr
type UnaryOp int

const (
	OpNeg UnaryOp = iota // -
	OpNot                // !
)

func (op UnaryOp) String() string {
	if op == OpNeg {
		return "-"
	}
	return "!"
}

// UnaryExpr is `-exp` or `!exp`
type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
	Line    int
	Column  int
}

func (e *UnaryExpr) Pos() (int, int) { return e.Line, e.Column }
func (e *UnaryExpr) exprNode()       {}

// BinaryOp is the operator of a BinaryExpr
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
	OpEq
	OpNeq
	OpLt
	OpLeq
	OpGt
	OpGeq
)

func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpEq:
		return "=="
	case OpNeq:
		return "!="
	case OpLt:
		return "<"
	case OpLeq:
		return "<="
	case OpGt:
		return ">"
	case OpGeq:
		return ">="
	default:
		return "?"
	}
}

// BinaryExpr is `left op right`
type BinaryExpr struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (e *BinaryExpr) Pos() (int, int) { return e.Left.Pos() }
func (e *BinaryExpr) exprNode()       {}
