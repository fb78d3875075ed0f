// Package symtab implements the Symbol Table: the per-scope multimap from
// name to an ordered list of declarations, plus the Symbol type itself.
// Traversal across scopes is the scope and lookup packages' job; this
// package only owns insertion order and local lookup, the primitives the
// spec calls insert, new_symbol and lookup_local.
package symtab

import (
	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/types"
)

// Kind is the closed set of entity kinds a Symbol can denote.
type Kind int

const (
	KindClass Kind = iota
	KindEnum
	KindEnumerator
	KindFunction
	KindLabel
	KindNamespace
	KindVariable
	KindTypedef
	KindTemplatePrimaryClass
	KindTemplateSpecializedClass
	KindTemplateFunction
	KindNonTypeTemplateParameter
	KindTypeTemplateParameter
	KindTemplateTemplateParameter
	KindDebuggingScope
	KindGCCBuiltinType
	KindDependentEntity
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	case KindEnumerator:
		return "enumerator"
	case KindFunction:
		return "function"
	case KindLabel:
		return "label"
	case KindNamespace:
		return "namespace"
	case KindVariable:
		return "variable"
	case KindTypedef:
		return "typedef"
	case KindTemplatePrimaryClass:
		return "template-primary-class"
	case KindTemplateSpecializedClass:
		return "template-specialized-class"
	case KindTemplateFunction:
		return "template-function"
	case KindNonTypeTemplateParameter:
		return "non-type-template-parameter"
	case KindTypeTemplateParameter:
		return "type-template-parameter"
	case KindTemplateTemplateParameter:
		return "template-template-parameter"
	case KindDebuggingScope:
		return "debugging-scope"
	case KindGCCBuiltinType:
		return "gcc-builtin-type"
	case KindDependentEntity:
		return "dependent-entity"
	default:
		return "invalid"
	}
}

// HasRelatedScope reports whether symbols of this kind own a scope of
// their own, per the data-model invariant that related_scope is non-nil
// exactly for namespace, class, function and template-*-class symbols.
func (k Kind) HasRelatedScope() bool {
	switch k {
	case KindNamespace, KindClass, KindFunction,
		KindTemplatePrimaryClass, KindTemplateSpecializedClass:
		return true
	default:
		return false
	}
}

// State is a Symbol's position in the forward-declared -> complete ->
// defined lifecycle. A Symbol is queryable in every state.
type State int

const (
	StateForwardDeclared State = iota
	StateComplete
	StateDefined
)

func (s State) String() string {
	switch s {
	case StateForwardDeclared:
		return "forward-declared"
	case StateComplete:
		return "complete"
	case StateDefined:
		return "defined"
	default:
		return "invalid"
	}
}

// Satisfies reports whether s has reached at least want in the lifecycle,
// the check consumers needing a complete type are expected to make before
// relying on Symbol.Type or Symbol.RelatedScope being fully populated.
func (s State) Satisfies(want State) bool { return s >= want }

// Symbol is a single scope entry: a named program entity together with
// everything the core needs to classify and type it.
type Symbol struct {
	ID    ids.SymbolID
	Name  string
	Kind  Kind
	State State

	// DefinedCount supports ODR checking: how many definitions (as opposed
	// to declarations) of this entity the driver has seen.
	DefinedCount int

	DeclaringScope ids.ScopeID
	Type           *types.Type

	// RelatedScope is the scope this symbol owns, for namespace, class,
	// function and template-*-class symbols; ids.InvalidScope otherwise.
	RelatedScope ids.ScopeID

	// Initializer is the (optional) initializer expression AST node.
	Initializer ast.Node

	// TemplateParams lists this symbol's own template parameters, in
	// declaration order, for a template-* symbol.
	TemplateParams []ids.SymbolID

	// SpecializationPattern is the declared argument pattern a
	// template-specialized-class symbol was partially specialized over
	// (e.g. `T*` in `template<class T> struct V<T*>`); nil for every other
	// kind, including the primary template itself.
	SpecializationPattern types.TemplateArgumentList

	// Linkage is the linkage-specification string ("C", "C++", ...), or ""
	// if none was given.
	Linkage string

	// AST is the declaration node this symbol was created from, used for
	// diagnostics and location lookups.
	AST ast.Node
}
