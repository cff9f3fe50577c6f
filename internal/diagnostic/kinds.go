package diagnostic

import "fmt"

// Kind identifies one of the name-resolution error classes. The message
// strings are part of the front end's user-facing contract.
type Kind int

const (
	KindNone Kind = iota
	MultiplyDeclared
	UndeclaredIdentifier
	InvalidStructTypeName
	NonFunctionDeclaredVoid
	InvalidStructFieldName
	NonStructColonAccess
)

// Message returns the user-facing message for the kind
func (k Kind) Message() string {
	switch k {
	case MultiplyDeclared:
		return "Identifier multiply-declared"
	case UndeclaredIdentifier:
		return "Identifier undeclared"
	case InvalidStructTypeName:
		return "Name of struct type invalid"
	case NonFunctionDeclaredVoid:
		return "Non-function declared void"
	case InvalidStructFieldName:
		return "Name of struct field invalid"
	case NonStructColonAccess:
		return "Colon-access of non-struct type"
	default:
		return "unknown error"
	}
}

// String returns the kind's stable identifier, used by test fixtures
func (k Kind) String() string {
	switch k {
	case MultiplyDeclared:
		return "multiply-declared"
	case UndeclaredIdentifier:
		return "undeclared"
	case InvalidStructTypeName:
		return "bad-struct-type"
	case NonFunctionDeclaredVoid:
		return "non-function-void"
	case InvalidStructFieldName:
		return "bad-struct-field"
	case NonStructColonAccess:
		return "non-struct-access"
	default:
		return "none"
	}
}

var kindNames = map[string]Kind{
	"multiply-declared": MultiplyDeclared,
	"undeclared":        UndeclaredIdentifier,
	"bad-struct-type":   InvalidStructTypeName,
	"non-function-void": NonFunctionDeclaredVoid,
	"bad-struct-field":  InvalidStructFieldName,
	"non-struct-access": NonStructColonAccess,
}

// ParseKind maps a stable identifier back to its Kind
func ParseKind(name string) (Kind, error) {
	if k, ok := kindNames[name]; ok {
		return k, nil
	}
	return KindNone, fmt.Errorf("unknown diagnostic kind %q", name)
}
