package types

import (
	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/ids"
)

// SimpleKind is the tag of the SimpleType sum.
type SimpleKind int

const (
	SimpleBuiltin SimpleKind = iota
	SimpleClass
	SimpleEnum
	SimpleTypedefAlias
	SimpleUserDefinedRef
	SimpleTypeTemplateParam
	SimpleDependent
	SimpleGCCVaList
	SimpleGCCTypeof
)

func (k SimpleKind) String() string {
	switch k {
	case SimpleBuiltin:
		return "builtin"
	case SimpleClass:
		return "class"
	case SimpleEnum:
		return "enum"
	case SimpleTypedefAlias:
		return "typedef-alias"
	case SimpleUserDefinedRef:
		return "user-defined-reference"
	case SimpleTypeTemplateParam:
		return "type-template-parameter"
	case SimpleDependent:
		return "template-dependent"
	case SimpleGCCVaList:
		return "gcc-va-list"
	case SimpleGCCTypeof:
		return "gcc-typeof"
	default:
		return "invalid"
	}
}

// SimpleType is the parallel taxonomy for the innermost, non-indirected
// part of a Type: builtins, named classes/enums, typedef aliases,
// user-defined references, template parameters, dependent expressions and
// the two GCC extensions. Every variant carries a cv-qualifier and the
// scope it was declared in.
type SimpleType struct {
	Kind  SimpleKind
	CV    CV
	Scope ids.ScopeID

	// SimpleBuiltin
	Builtin Builtin

	// SimpleClass, SimpleEnum, SimpleTypedefAlias, SimpleUserDefinedRef:
	// the backing symbol.
	Symbol ids.SymbolID

	// SimpleTypedefAlias: the type being aliased. advance_over_typedefs
	// follows this field.
	Aliased *Type

	// SimpleTypeTemplateParam
	Depth int
	Index int

	// SimpleDependent, SimpleGCCTypeof: the unevaluated expression and the
	// scope it must eventually be evaluated in.
	Expr ast.Node
}

// WithCV returns a copy of s with its cv-qualifier unioned with cv.
func (s SimpleType) WithCV(cv CV) SimpleType {
	s.CV = s.CV.Union(cv)
	return s
}

// Direct is shorthand for MakeDirect(s).
func (s SimpleType) Direct() *Type { return MakeDirect(s) }
