// Package resolve exposes the single compilation context a driver holds
// for the lifetime of a translation unit: the scope graph, the symbol
// arena backing it, and the name-lookup engine over both. Making this
// state an explicit, instantiable value (instead of a process-wide
// global) lets multiple translation units be compiled in the same
// process without interfering with each other.
package resolve

import (
	"context"

	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/lookup"
	"github.com/strategist922/mcxx/scope"
	"github.com/strategist922/mcxx/symtab"
	"github.com/strategist922/mcxx/types"
)

// Context owns everything a single translation unit's name resolution
// needs: the scope graph, its symbol arena, the lookup engine over both,
// and the translation-unit (global namespace) scope itself.
type Context struct {
	Graph  *scope.Graph
	Engine *lookup.Engine

	// Global is the translation-unit scope: the root of the scope graph,
	// and the starting point of every query with a leading "::".
	Global ids.ScopeID
}

// New creates a fresh compilation context with its own scope graph and
// symbol arena, rooted at a newly created global namespace scope.
// evalArgs elaborates template-id argument nodes the lookup engine
// encounters; see lookup.ArgEvaluator.
func New(evalArgs lookup.ArgEvaluator) *Context {
	symbols := symtab.NewArena()
	graph := scope.NewGraph(symbols)
	global := graph.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)
	return &Context{
		Graph:  graph,
		Engine: lookup.NewEngine(graph, global, evalArgs),
		Global: global,
	}
}

// --- Scope constructors (§6) ---

// NewNamespaceScope creates a namespace scope nested in enclosing, owned
// by owner (ids.InvalidSymbol for an anonymous namespace).
func (c *Context) NewNamespaceScope(enclosing ids.ScopeID, owner ids.SymbolID) ids.ScopeID {
	return c.Graph.NewNamespaceScope(enclosing, owner)
}

// NewClassScope creates a class scope nested in enclosing, owned by owner.
func (c *Context) NewClassScope(enclosing ids.ScopeID, owner ids.SymbolID) ids.ScopeID {
	return c.Graph.NewClassScope(enclosing, owner)
}

// NewFunctionScope creates a function scope (label declarations) nested
// in enclosing, owned by owner.
func (c *Context) NewFunctionScope(enclosing ids.ScopeID, owner ids.SymbolID) ids.ScopeID {
	return c.Graph.NewFunctionScope(enclosing, owner)
}

// NewPrototypeScope creates the scope holding a function's parameters.
func (c *Context) NewPrototypeScope(enclosing ids.ScopeID) ids.ScopeID {
	return c.Graph.NewPrototypeScope(enclosing)
}

// NewTemplateScope creates a scope holding a template's own parameters.
func (c *Context) NewTemplateScope(enclosing ids.ScopeID) ids.ScopeID {
	return c.Graph.NewTemplateScope(enclosing)
}

// NewBlockScope creates a nested block scope inside a function body.
func (c *Context) NewBlockScope(enclosing, functionScope, prototypeScope ids.ScopeID) ids.ScopeID {
	return c.Graph.NewBlockScope(enclosing, functionScope, prototypeScope)
}

// AddUsingDirective records a using-directive on scope id for namespace ns.
func (c *Context) AddUsingDirective(id, ns ids.ScopeID) {
	c.Graph.AddUsingDirective(id, ns)
}

// AddBase appends a base-class entry to a class scope's base list.
func (c *Context) AddBase(classScope ids.ScopeID, base scope.Base) {
	c.Graph.AddBase(classScope, base)
}

// --- Symbol Table (§4.2) ---

// NewSymbol creates an uninitialized symbol named name in scope id and
// inserts it, for declaration processing before the symbol's type is
// known.
func (c *Context) NewSymbol(id ids.ScopeID, name string) *symtab.Symbol {
	return c.Graph.NewSymbol(id, name)
}

// Insert adds an already-constructed symbol to scope id's table.
func (c *Context) Insert(id ids.ScopeID, sym *symtab.Symbol) {
	c.Graph.Insert(id, sym)
}

// Symbol resolves a symbol id to its backing Symbol.
func (c *Context) Symbol(id ids.SymbolID) *symtab.Symbol {
	return c.Graph.Symbols().Symbol(id)
}

// --- Name-Lookup Engine (§4.4-4.5) ---

// QueryUnqualified looks up name starting at scopeID, per mode.
func (c *Context) QueryUnqualified(ctx context.Context, scopeID ids.ScopeID, name string, mode lookup.Mode) ([]*symtab.Symbol, error) {
	return c.Engine.QueryUnqualified(ctx, scopeID, name, mode)
}

// QueryNestedName walks a qualified-id and looks up its final component.
func (c *Context) QueryNestedName(ctx context.Context, start ids.ScopeID, n ast.Node) ([]*symtab.Symbol, error) {
	return c.Engine.QueryNestedName(ctx, start, n)
}

// QueryIDExpression dispatches on an id-expression's AST shape.
func (c *Context) QueryIDExpression(ctx context.Context, scopeID ids.ScopeID, n ast.Node, mode lookup.Mode) ([]*symtab.Symbol, error) {
	return c.Engine.QueryIDExpression(ctx, scopeID, n, mode)
}

// QueryTemplateID resolves a template-id to the specialization (or
// primary) it denotes.
func (c *Context) QueryTemplateID(ctx context.Context, lookupScope, evalScope ids.ScopeID, n ast.Node) ([]*symtab.Symbol, error) {
	return c.Engine.QueryTemplateID(ctx, lookupScope, evalScope, n)
}

// --- Filters (§4.4) ---

// FilterByKind keeps only the symbols whose kind is in kinds.
func (c *Context) FilterByKind(list []*symtab.Symbol, kinds ...symtab.Kind) []*symtab.Symbol {
	return lookup.FilterByKind(list, kinds...)
}

// FilterByNonKind keeps only the symbols whose kind is not in kinds.
func (c *Context) FilterByNonKind(list []*symtab.Symbol, kinds ...symtab.Kind) []*symtab.Symbol {
	return lookup.FilterByNonKind(list, kinds...)
}

// FilterSimpleTypeSpecifier reduces an overload set to the single
// type-name it names, if any.
func (c *Context) FilterSimpleTypeSpecifier(list []*symtab.Symbol) *symtab.Symbol {
	return lookup.FilterSimpleTypeSpecifier(list)
}

// --- Type Algebra (§4.1) ---
//
// Type construction and the equivalence/cv/dependence predicates are
// pure functions of their arguments with no need for context state;
// drivers call them directly on the types package. Only the pointer and
// reference constructors are re-exported here.

// MakePointer constructs a pointer type. See types.MakePointer.
func (c *Context) MakePointer(cv types.CV, pointee *types.Type) *types.Type {
	return types.MakePointer(cv, pointee)
}

// MakeReference constructs a reference type. See types.MakeReference.
func (c *Context) MakeReference(pointee *types.Type) *types.Type {
	return types.MakeReference(pointee)
}
