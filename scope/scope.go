// Package scope implements the Scope Graph: the six kinds of linked
// scopes and the cross-scope relations between them (enclosing,
// used-namespaces, bases, prototype/function/template pointers).
package scope

import (
	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/symtab"
	"github.com/strategist922/mcxx/types"
)

// Kind is the closed set of scope kinds.
type Kind int

const (
	KindNamespace Kind = iota
	KindPrototype
	KindBlock
	KindFunction
	KindClass
	KindTemplate
)

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindPrototype:
		return "prototype"
	case KindBlock:
		return "block"
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	case KindTemplate:
		return "template"
	default:
		return "invalid"
	}
}

// AccessSpecifier is the access a base class was inherited with.
type AccessSpecifier int

const (
	AccessPublic AccessSpecifier = iota
	AccessProtected
	AccessPrivate
)

func (a AccessSpecifier) String() string {
	switch a {
	case AccessPublic:
		return "public"
	case AccessProtected:
		return "protected"
	case AccessPrivate:
		return "private"
	default:
		return "invalid"
	}
}

// Base is one entry of a class scope's base-class list.
type Base struct {
	ClassType *types.Type // the base's type, as named in the base-specifier
	Scope     ids.ScopeID // the base class's own scope
	Access    AccessSpecifier
}

// Scope is one node of the scope graph.
type Scope struct {
	ID    ids.ScopeID
	Kind  Kind
	Table *symtab.Table

	// Owner is the symbol this scope belongs to (namespace, class,
	// function or template-*-class); ids.InvalidSymbol for the
	// translation-unit scope and for block/prototype/template scopes,
	// which own no symbol of their own.
	Owner ids.SymbolID

	// Enclosing is the lexically surrounding scope; ids.InvalidScope only
	// for the translation-unit (global namespace) scope.
	Enclosing ids.ScopeID

	// UsedNamespaces lists the namespace scopes named by a using-directive
	// recorded against this scope. Duplicates are permitted; the
	// name-lookup engine deduplicates results, not this list.
	UsedNamespaces []ids.ScopeID

	// Bases lists this scope's base classes, in declaration order. Only
	// meaningful for a KindClass scope.
	Bases []Base

	// PrototypeScope is, for a KindBlock scope, the scope holding the
	// parameters of the enclosing function.
	PrototypeScope ids.ScopeID

	// FunctionScope is, for a KindBlock scope, the scope holding the
	// enclosing function's label declarations.
	FunctionScope ids.ScopeID

	// TemplateScope is the nearest enclosing template-parameter scope:
	// inherited from the enclosing scope, except a KindTemplate scope is
	// its own TemplateScope so its parameters stay visible in the bodies
	// it introduces.
	TemplateScope ids.ScopeID
}
