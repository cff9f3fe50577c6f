package symbols

import "strings"

// Category distinguishes what an identifier was declared to be.
type Category int

const (
	Regular Category = iota
	Formal
	Function
	StructDecl
	StructVar
	SymUndefined
)

// String returns the string representation of the category
func (c Category) String() string {
	switch c {
	case Regular:
		return "variable"
	case Formal:
		return "formal"
	case Function:
		return "function"
	case StructDecl:
		return "struct-decl"
	case StructVar:
		return "struct-var"
	case SymUndefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// Symbol records the declared meaning of one identifier.
//
// The payload depends on the category:
//   - Regular, Formal: Type holds the declared type name
//   - Function: ReturnType and ParamTypes hold the call signature
//   - StructDecl: Fields holds the struct's field table (a satellite
//     scope, never pushed onto the scope stack)
//   - StructVar: StructType holds the struct type's *name*; the field
//     table is re-resolved globally at each use to avoid a reference
//     cycle between a struct's symbol and the variables naming it
type Symbol struct {
	Name     string
	Category Category

	Type       string   // Regular, Formal
	ReturnType string   // Function
	ParamTypes []string // Function, in declaration order
	Fields     *Scope   // StructDecl
	StructType string   // StructVar
}

// Undefined is the sentinel bound to every identifier use that failed to
// resolve. Callers compare against it to suppress cascading diagnostics.
var Undefined = &Symbol{Category: SymUndefined}

// NewVar creates a Regular symbol for a scalar variable declaration
func NewVar(name, typeName string) *Symbol {
	return &Symbol{Name: name, Category: Regular, Type: typeName}
}

// NewFormal creates a Formal symbol for a function parameter
func NewFormal(name, typeName string) *Symbol {
	return &Symbol{Name: name, Category: Formal, Type: typeName}
}

// NewFunction creates a Function symbol carrying the call signature
func NewFunction(name, returnType string, paramTypes []string) *Symbol {
	return &Symbol{
		Name:       name,
		Category:   Function,
		ReturnType: returnType,
		ParamTypes: paramTypes,
	}
}

// NewStructDecl creates a StructDecl symbol owning the given field table
func NewStructDecl(name string, fields *Scope) *Symbol {
	return &Symbol{Name: name, Category: StructDecl, Fields: fields}
}

// NewStructVar creates a StructVar symbol for a variable or field whose
// declared type is the named struct
func NewStructVar(name, structType string) *Symbol {
	return &Symbol{Name: name, Category: StructVar, Type: structType, StructType: structType}
}

// String renders the symbol the way the unparser annotates identifiers
func (s *Symbol) String() string {
	switch s.Category {
	case Function:
		params := strings.Join(s.ParamTypes, ", ")
		if params == "" {
			params = "void"
		}
		return params + " -> " + s.ReturnType
	case StructDecl:
		return "struct-decl"
	case SymUndefined:
		return "undefined"
	default:
		return s.Type
	}
}
