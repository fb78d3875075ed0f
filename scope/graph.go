package scope

import (
	"fmt"

	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/symtab"
)

// Graph owns every Scope created during a translation unit's lifetime,
// and the Symbol arena they insert into — a block scope's debugging
// symbol (below) is the one place the scope graph itself creates a
// symbol, rather than the driver.
type Graph struct {
	scopes  []*Scope // index 0 is an unused sentinel
	symbols *symtab.Arena
	debugID uint64
}

// NewGraph returns an empty scope graph backed by the given symbol arena.
func NewGraph(symbols *symtab.Arena) *Graph {
	return &Graph{scopes: []*Scope{nil}, symbols: symbols}
}

// Scope resolves an id to its backing Scope.
func (g *Graph) Scope(id ids.ScopeID) *Scope {
	if !id.IsValid() || int(id) >= len(g.scopes) {
		return nil
	}
	return g.scopes[id]
}

func (g *Graph) alloc(kind Kind, enclosing ids.ScopeID, owner ids.SymbolID) *Scope {
	s := &Scope{
		ID:        ids.ScopeID(len(g.scopes)),
		Kind:      kind,
		Table:     symtab.NewTable(),
		Owner:     owner,
		Enclosing: enclosing,
	}
	if enclosing.IsValid() {
		s.TemplateScope = g.Scope(enclosing).TemplateScope
	}
	if kind == KindTemplate {
		s.TemplateScope = s.ID
	}
	g.scopes = append(g.scopes, s)
	return s
}

// NewNamespaceScope creates a namespace scope. Pass ids.InvalidScope as
// enclosing only for the single translation-unit (global namespace)
// scope.
func (g *Graph) NewNamespaceScope(enclosing ids.ScopeID, owner ids.SymbolID) ids.ScopeID {
	return g.alloc(KindNamespace, enclosing, owner).ID
}

// NewClassScope creates a class scope.
func (g *Graph) NewClassScope(enclosing ids.ScopeID, owner ids.SymbolID) ids.ScopeID {
	return g.alloc(KindClass, enclosing, owner).ID
}

// NewFunctionScope creates a function scope (the home of label
// declarations, per the data model, not of the function's body).
func (g *Graph) NewFunctionScope(enclosing ids.ScopeID, owner ids.SymbolID) ids.ScopeID {
	return g.alloc(KindFunction, enclosing, owner).ID
}

// NewPrototypeScope creates the scope holding a function's parameters.
func (g *Graph) NewPrototypeScope(enclosing ids.ScopeID) ids.ScopeID {
	return g.alloc(KindPrototype, enclosing, ids.InvalidSymbol).ID
}

// NewTemplateScope creates a scope holding a template's own parameters.
func (g *Graph) NewTemplateScope(enclosing ids.ScopeID) ids.ScopeID {
	return g.alloc(KindTemplate, enclosing, ids.InvalidSymbol).ID
}

// NewBlockScope creates a nested block scope, linking it to the function
// and prototype scopes of the function it lives inside, and inserts a
// debugging symbol of kind scope into the enclosing scope under a
// generated unique name, so a debugger can enumerate nested blocks by
// walking the enclosing scope's own symbol table.
func (g *Graph) NewBlockScope(enclosing, functionScope, prototypeScope ids.ScopeID) ids.ScopeID {
	s := g.alloc(KindBlock, enclosing, ids.InvalidSymbol)
	s.FunctionScope = functionScope
	s.PrototypeScope = prototypeScope

	g.debugID++
	name := fmt.Sprintf("$block$%d", g.debugID)
	debugSym := g.symbols.New(name)
	debugSym.Kind = symtab.KindDebuggingScope
	debugSym.DeclaringScope = enclosing
	debugSym.RelatedScope = s.ID
	debugSym.State = symtab.StateDefined
	g.Scope(enclosing).Table.Insert(name, debugSym.ID)

	return s.ID
}

// AddUsingDirective records that scope id has a using-directive naming
// the namespace ns. Duplicates are permitted; the lookup engine
// deduplicates at query time.
func (g *Graph) AddUsingDirective(id, ns ids.ScopeID) {
	s := g.Scope(id)
	s.UsedNamespaces = append(s.UsedNamespaces, ns)
}

// AddBase appends a base-class entry to a class scope's base list, in
// declaration order.
func (g *Graph) AddBase(classScope ids.ScopeID, base Base) {
	s := g.Scope(classScope)
	s.Bases = append(s.Bases, base)
}

// NewSymbol allocates a fresh symbol named name, declared in scope id, and
// inserts it into that scope's table. It creates an uninitialized symbol
// (Type still nil, State still ForwardDeclared) before the declaration's
// type is known, for declaration processing to fill in incrementally.
func (g *Graph) NewSymbol(id ids.ScopeID, name string) *symtab.Symbol {
	sym := g.symbols.New(name)
	sym.DeclaringScope = id
	g.Scope(id).Table.Insert(name, sym.ID)
	return sym
}

// Insert adds an already-allocated symbol to scope id's table. A symbol
// with no declaring scope yet (one allocated directly through the symbol
// arena rather than through NewSymbol) takes id as its declaring scope; a
// declaring scope already set is not overwritten.
func (g *Graph) Insert(id ids.ScopeID, sym *symtab.Symbol) {
	if !sym.DeclaringScope.IsValid() {
		sym.DeclaringScope = id
	}
	g.Scope(id).Table.Insert(sym.Name, sym.ID)
}

// LookupLocal returns the bucket for name in scope id's own table,
// without traversing to any other scope.
func (g *Graph) LookupLocal(id ids.ScopeID, name string) []ids.SymbolID {
	return g.Scope(id).Table.LookupLocal(name)
}

// Symbols returns the symbol arena backing this graph's debugging-scope
// symbols and shared with the rest of the core.
func (g *Graph) Symbols() *symtab.Arena { return g.symbols }
