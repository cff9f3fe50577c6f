package parser

import (
	"strconv"

	"github.com/briolang/brio/internal/ast"
	"github.com/briolang/brio/internal/diagnostic"
	"github.com/briolang/brio/internal/lexer"
)

// New creates a new parser
func New(source string) *Parser {
	l := lexer.New(source)
	tokens := l.Tokenize()
	return &Parser{
		tokens: tokens,
		pos:    0,
		diags:  diagnostic.New(),
	}
}

// Diagnostics returns the parser's diagnostics
func (p *Parser) Diagnostics() *diagnostic.Diagnostics {
	return p.diags
}

// Parse parses the token stream into a Program AST
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{}

	for !p.check(lexer.EOF) {
		startPos := p.pos
		if d := p.parseTopLevelDecl(); d != nil {
			prog.Decls = append(prog.Decls, d)
		}
		if p.pos == startPos {
			p.advance() // ensure forward progress
		}
	}
	return prog
}

// parseTopLevelDecl parses a variable, function, or struct declaration
func (p *Parser) parseTopLevelDecl() ast.Decl {
	switch p.current().Type {
	case lexer.STRUCT:
		// `struct Name {` declares a type; `struct Name x.` declares a
		// variable of that type
		if p.peek().Type == lexer.IDENT && p.pos+2 < len(p.tokens) && p.tokens[p.pos+2].Type == lexer.LBRACE {
			return p.parseStructDecl()
		}
		return p.parseVarOrFuncDecl()
	case lexer.INTEGER_TYPE, lexer.BOOLEAN_TYPE, lexer.VOID_TYPE:
		return p.parseVarOrFuncDecl()
	default:
		tok := p.current()
		p.diags.Errorf(tok.Line, tok.Column, "unexpected token %s at top level", tok.Type)
		p.synchronize()
		return nil
	}
}

// parseVarOrFuncDecl parses `<type> <name>.` or `<type> <name>(...) {...}`
func (p *Parser) parseVarOrFuncDecl() ast.Decl {
	typ := p.parseTypeRef()
	name := p.parseIdent()

	if p.check(lexer.LPAREN) {
		return p.parseFuncDeclRest(typ, name)
	}

	p.expect(lexer.DOT)
	return &ast.VarDecl{Type: typ, Name: name}
}

// parseFuncDeclRest parses the formals and body after `<type> <name>`
func (p *Parser) parseFuncDeclRest(ret *ast.TypeRef, name *ast.Ident) *ast.FuncDecl {
	p.expect(lexer.LPAREN)
	var formals []*ast.FormalDecl
	if !p.check(lexer.RPAREN) {
		for {
			typ := p.parseTypeRef()
			id := p.parseIdent()
			formals = append(formals, &ast.FormalDecl{Type: typ, Name: id})
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RPAREN)
	body := p.parseBlock()

	return &ast.FuncDecl{
		ReturnType: ret,
		Name:       name,
		Formals:    formals,
		Body:       body,
	}
}

// parseStructDecl parses `struct <name> { <fields> }`
func (p *Parser) parseStructDecl() *ast.StructDecl {
	p.expect(lexer.STRUCT)
	name := p.parseIdent()
	p.expect(lexer.LBRACE)

	var fields []*ast.VarDecl
	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		startPos := p.pos
		typ := p.parseTypeRef()
		id := p.parseIdent()
		p.expect(lexer.DOT)
		fields = append(fields, &ast.VarDecl{Type: typ, Name: id, IsField: true})
		if p.pos == startPos {
			p.advance()
		}
	}
	p.expect(lexer.RBRACE)

	return &ast.StructDecl{Name: name, Fields: fields}
}

// parseTypeRef parses `integer`, `boolean`, `void`, or `struct <name>`
func (p *Parser) parseTypeRef() *ast.TypeRef {
	tok := p.current()
	switch tok.Type {
	case lexer.INTEGER_TYPE:
		p.advance()
		return &ast.TypeRef{Kind: ast.Integer, Line: tok.Line, Column: tok.Column}
	case lexer.BOOLEAN_TYPE:
		p.advance()
		return &ast.TypeRef{Kind: ast.Boolean, Line: tok.Line, Column: tok.Column}
	case lexer.VOID_TYPE:
		p.advance()
		return &ast.TypeRef{Kind: ast.Void, Line: tok.Line, Column: tok.Column}
	case lexer.STRUCT:
		p.advance()
		name := p.parseIdent()
		return &ast.TypeRef{Kind: ast.StructRef, StructName: name, Line: tok.Line, Column: tok.Column}
	default:
		p.diags.Errorf(tok.Line, tok.Column, "expected a type, got %s", tok.Type)
		return &ast.TypeRef{Kind: ast.Integer, Line: tok.Line, Column: tok.Column}
	}
}

// parseIdent parses an identifier token into an Ident node
func (p *Parser) parseIdent() *ast.Ident {
	tok := p.expect(lexer.IDENT)
	return &ast.Ident{Name: tok.Literal, Line: tok.Line, Column: tok.Column}
}

// parseBlock parses `{ <var decls> <stmts> }`. Declarations come first
// in a block; the first statement token ends the declaration list.
func (p *Parser) parseBlock() *ast.Block {
	p.expect(lexer.LBRACE)
	block := &ast.Block{}

	for p.startsVarDecl() {
		startPos := p.pos
		typ := p.parseTypeRef()
		id := p.parseIdent()
		p.expect(lexer.DOT)
		block.Decls = append(block.Decls, &ast.VarDecl{Type: typ, Name: id})
		if p.pos == startPos {
			p.advance()
		}
	}

	for !p.check(lexer.RBRACE) && !p.check(lexer.EOF) {
		startPos := p.pos
		if s := p.parseStmt(); s != nil {
			block.Stmts = append(block.Stmts, s)
		}
		if p.pos == startPos {
			p.advance()
		}
	}
	p.expect(lexer.RBRACE)
	return block
}

// startsVarDecl reports whether the current tokens begin a local
// variable declaration
func (p *Parser) startsVarDecl() bool {
	switch p.current().Type {
	case lexer.INTEGER_TYPE, lexer.BOOLEAN_TYPE, lexer.VOID_TYPE:
		return true
	case lexer.STRUCT:
		return p.peek().Type == lexer.IDENT
	default:
		return false
	}
}

// parseStmt parses one statement
func (p *Parser) parseStmt() ast.Stmt {
	tok := p.current()
	switch tok.Type {
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.RETURN:
		p.advance()
		var value ast.Expr
		if !p.check(lexer.DOT) {
			value = p.parseExpr()
		}
		p.expect(lexer.DOT)
		return &ast.ReturnStmt{Value: value, Line: tok.Line, Column: tok.Column}
	case lexer.INPUT:
		p.advance()
		p.expect(lexer.READARROW)
		target := p.parseLoc()
		p.expect(lexer.DOT)
		return &ast.ReadStmt{Target: target, Line: tok.Line, Column: tok.Column}
	case lexer.DISP:
		p.advance()
		p.expect(lexer.WRITEARROW)
		value := p.parseExpr()
		p.expect(lexer.DOT)
		return &ast.WriteStmt{Value: value, Line: tok.Line, Column: tok.Column}
	case lexer.IDENT:
		return p.parseSimpleStmt()
	default:
		p.diags.Errorf(tok.Line, tok.Column, "unexpected token %s, expected a statement", tok.Type)
		p.synchronize()
		return nil
	}
}

// parseIfStmt parses `if (cond) { ... } [else { ... }]`
func (p *Parser) parseIfStmt() ast.Stmt {
	tok := p.expect(lexer.IF)
	p.expect(lexer.LPAREN)
	cond := p.parseExpr()
	p.expect(lexer.RPAREN)
	then := p.parseBlock()

	var elseBlock *ast.Block
	if p.match(lexer.ELSE) {
		elseBlock = p.parseBlock()
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: elseBlock, Line: tok.Line, Column: tok.Column}
}

// parseWhileStmt parses `while (cond) { ... }`
func (p *Parser) parseWhileStmt() ast.Stmt {
	tok := p.expect(lexer.WHILE)
	p.expect(lexer.LPAREN)
	cond := p.parseExpr()
	p.expect(lexer.RPAREN)
	body := p.parseBlock()

	return &ast.WhileStmt{Cond: cond, Body: body, Line: tok.Line, Column: tok.Column}
}

// parseSimpleStmt parses the statements that begin with an identifier:
// call, assignment, post-increment, post-decrement.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	if p.check(lexer.IDENT) && p.peek().Type == lexer.LPAREN {
		call := p.parseCallExpr()
		p.expect(lexer.DOT)
		return &ast.CallStmt{Call: call}
	}

	loc := p.parseLoc()

	tok := p.current()
	switch tok.Type {
	case lexer.ASSIGN:
		p.advance()
		value := p.parseExpr()
		p.expect(lexer.DOT)
		return &ast.AssignStmt{Assign: &ast.AssignExpr{Target: loc, Value: value}}
	case lexer.PLUSPLUS:
		p.advance()
		p.expect(lexer.DOT)
		return &ast.PostIncStmt{Target: loc}
	case lexer.MINUSMINUS:
		p.advance()
		p.expect(lexer.DOT)
		return &ast.PostDecStmt{Target: loc}
	default:
		p.diags.Errorf(tok.Line, tok.Column, "unexpected token %s after location", tok.Type)
		p.synchronize()
		return nil
	}
}

// parseLoc parses a location: an identifier with any number of colon
// accesses, e.g. `a` or `a:b:c`
func (p *Parser) parseLoc() ast.Expr {
	var loc ast.Expr = p.parseIdent()
	for p.match(lexer.COLON) {
		field := p.parseIdent()
		loc = &ast.AccessExpr{Target: loc, Field: field}
	}
	return loc
}

// parseCallExpr parses `f(args)`
func (p *Parser) parseCallExpr() *ast.CallExpr {
	callee := p.parseIdent()
	p.expect(lexer.LPAREN)
	var args []ast.Expr
	if !p.check(lexer.RPAREN) {
		for {
			args = append(args, p.parseExpr())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.expect(lexer.RPAREN)
	return &ast.CallExpr{Callee: callee, Args: args}
}

// Expression parsing, lowest precedence first:
// assignment, ||, &&, equality, relational, additive, multiplicative,
// unary, primary.

// parseExpr parses an expression
func (p *Parser) parseExpr() ast.Expr {
	return p.parseAssignExpr()
}

// parseAssignExpr parses right-associative assignment expressions
func (p *Parser) parseAssignExpr() ast.Expr {
	left := p.parseOrExpr()
	if p.check(lexer.ASSIGN) {
		tok := p.advance()
		switch left.(type) {
		case *ast.Ident, *ast.AccessExpr:
		default:
			p.diags.Errorf(tok.Line, tok.Column, "left side of assignment must be a location")
		}
		value := p.parseAssignExpr()
		return &ast.AssignExpr{Target: left, Value: value}
	}
	return left
}

func (p *Parser) parseOrExpr() ast.Expr {
	left := p.parseAndExpr()
	for p.check(lexer.OR) {
		p.advance()
		right := p.parseAndExpr()
		left = &ast.BinaryExpr{Op: ast.OpOr, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAndExpr() ast.Expr {
	left := p.parseEqualityExpr()
	for p.check(lexer.AND) {
		p.advance()
		right := p.parseEqualityExpr()
		left = &ast.BinaryExpr{Op: ast.OpAnd, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEqualityExpr() ast.Expr {
	left := p.parseRelationalExpr()
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.EQ:
			op = ast.OpEq
		case lexer.NEQ:
			op = ast.OpNeq
		default:
			return left
		}
		p.advance()
		right := p.parseRelationalExpr()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseRelationalExpr() ast.Expr {
	left := p.parseAdditiveExpr()
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.LT:
			op = ast.OpLt
		case lexer.LEQ:
			op = ast.OpLeq
		case lexer.GT:
			op = ast.OpGt
		case lexer.GEQ:
			op = ast.OpGeq
		default:
			return left
		}
		p.advance()
		right := p.parseAdditiveExpr()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseAdditiveExpr() ast.Expr {
	left := p.parseMultiplicativeExpr()
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.PLUS:
			op = ast.OpAdd
		case lexer.MINUS:
			op = ast.OpSub
		default:
			return left
		}
		p.advance()
		right := p.parseMultiplicativeExpr()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseMultiplicativeExpr() ast.Expr {
	left := p.parseUnaryExpr()
	for {
		var op ast.BinaryOp
		switch p.current().Type {
		case lexer.STAR:
			op = ast.OpMul
		case lexer.SLASH:
			op = ast.OpDiv
		default:
			return left
		}
		p.advance()
		right := p.parseUnaryExpr()
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	tok := p.current()
	switch tok.Type {
	case lexer.MINUS:
		p.advance()
		operand := p.parseUnaryExpr()
		return &ast.UnaryExpr{Op: ast.OpNeg, Operand: operand, Line: tok.Line, Column: tok.Column}
	case lexer.NOT:
		p.advance()
		operand := p.parseUnaryExpr()
		return &ast.UnaryExpr{Op: ast.OpNot, Operand: operand, Line: tok.Line, Column: tok.Column}
	default:
		return p.parsePrimaryExpr()
	}
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.current()
	switch tok.Type {
	case lexer.INT_LIT:
		p.advance()
		value, err := strconv.Atoi(tok.Literal)
		if err != nil {
			p.diags.Errorf(tok.Line, tok.Column, "integer literal out of range: %s", tok.Literal)
		}
		return &ast.IntLit{Value: value, Line: tok.Line, Column: tok.Column}
	case lexer.STRING_LIT:
		p.advance()
		return &ast.StrLit{Value: tok.Literal, Line: tok.Line, Column: tok.Column}
	case lexer.TRUE:
		p.advance()
		return &ast.BoolLit{Value: true, Line: tok.Line, Column: tok.Column}
	case lexer.FALSE:
		p.advance()
		return &ast.BoolLit{Value: false, Line: tok.Line, Column: tok.Column}
	case lexer.IDENT:
		if p.peek().Type == lexer.LPAREN {
			return p.parseCallExpr()
		}
		return p.parseLoc()
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.expect(lexer.RPAREN)
		return inner
	default:
		p.diags.Errorf(tok.Line, tok.Column, "unexpected token %s in expression", tok.Type)
		p.advance()
		return &ast.IntLit{Line: tok.Line, Column: tok.Column}
	}
}
