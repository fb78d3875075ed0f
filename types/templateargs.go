package types

import (
	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/ids"
)

// TemplateArgKind tags a TemplateArgument as carrying a Type or an
// expression, per the data model's "template argument list" entry.
type TemplateArgKind int

const (
	TemplateArgType TemplateArgKind = iota
	TemplateArgNonType
)

func (k TemplateArgKind) String() string {
	switch k {
	case TemplateArgType:
		return "type"
	case TemplateArgNonType:
		return "non-type"
	default:
		return "invalid"
	}
}

// TemplateArgument is one entry of a template-id's argument list, or one
// entry of a specialization's declared pattern. The two uses share a
// shape: a concrete argument has Expr/Type fully known; a pattern slot
// may instead be a bound occurrence of the enclosing template's own
// Nth parameter, recorded as ParamIndex with Expr left nil.
type TemplateArgument struct {
	Kind TemplateArgKind

	// TemplateArgType
	Type *Type

	// TemplateArgNonType: the unevaluated expression, or nil if this slot
	// is a bound occurrence of the template's own parameter (see
	// ParamIndex) rather than a concrete value.
	Expr ast.Node

	// ParamIndex identifies a non-type pattern slot that is itself an
	// occurrence of the enclosing template's parameter at this position,
	// as in `template<int N> struct W<N>`. -1 for a concrete argument.
	ParamIndex int

	// Scope is the expression's evaluation scope: non-type argument
	// expressions are evaluated in the scope the query started from, not
	// the scope a qualifier chain ends up resolving into.
	Scope ids.ScopeID
}

// TemplateArgumentList is an ordered template argument list or pattern.
type TemplateArgumentList []TemplateArgument
