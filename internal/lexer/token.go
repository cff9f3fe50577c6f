package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Literals
	IDENT      // x, count, p
	INT_LIT    // 123
	STRING_LIT // "hello"

	// Keywords
	STRUCT
	IF
	ELSE
	WHILE
	RETURN
	INPUT
	DISP
	TRUE
	FALSE

	// Type keywords
	INTEGER_TYPE
	BOOLEAN_TYPE
	VOID_TYPE

	// Operators
	PLUS      // +
	MINUS     // -
	STAR      // *
	SLASH     // /
	NOT       // !
	AND       // &&
	OR        // ||
	EQ        // ==
	NEQ       // !=
	LT        // <
	GT        // >
	LEQ       // <=
	GEQ       // >=
	ASSIGN    // =
	PLUSPLUS  // ++
	MINUSMINUS // --
	READARROW  // ->
	WRITEARROW // <-

	// Delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	COMMA  // ,
	COLON  // :
	DOT    // .
)

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

// String returns a string representation of the token type
func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case INT_LIT:
		return "INT_LIT"
	case STRING_LIT:
		return "STRING_LIT"
	case STRUCT:
		return "STRUCT"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case WHILE:
		return "WHILE"
	case RETURN:
		return "RETURN"
	case INPUT:
		return "INPUT"
	case DISP:
		return "DISP"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case INTEGER_TYPE:
		return "INTEGER_TYPE"
	case BOOLEAN_TYPE:
		return "BOOLEAN_TYPE"
	case VOID_TYPE:
		return "VOID_TYPE"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case STAR:
		return "STAR"
	case SLASH:
		return "SLASH"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case LEQ:
		return "LEQ"
	case GEQ:
		return "GEQ"
	case ASSIGN:
		return "ASSIGN"
	case PLUSPLUS:
		return "PLUSPLUS"
	case MINUSMINUS:
		return "MINUSMINUS"
	case READARROW:
		return "READARROW"
	case WRITEARROW:
		return "WRITEARROW"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case LBRACE:
		return "LBRACE"
	case RBRACE:
		return "RBRACE"
	case COMMA:
		return "COMMA"
	case COLON:
		return "COLON"
	case DOT:
		return "DOT"
	default:
		return fmt.Sprintf("TokenType(%d)", t)
	}
}

// keywords maps keyword strings to their token types
var keywords = map[string]TokenType{
	"struct":  STRUCT,
	"if":      IF,
	"else":    ELSE,
	"while":   WHILE,
	"return":  RETURN,
	"input":   INPUT,
	"disp":    DISP,
	"true":    TRUE,
	"false":   FALSE,
	"integer": INTEGER_TYPE,
	"boolean": BOOLEAN_TYPE,
	"void":    VOID_TYPE,
}

// LookupIdent checks if an identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
