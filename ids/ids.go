// Package ids defines the arena index types shared by the symbol table,
// scope graph and type algebra.
//
// The entity graph this core implements — scopes referencing their
// enclosing scope, symbols referencing their declaring scope and their
// related scope, classes referencing their base classes — is naturally
// cyclic if built from ordinary pointers (a class's scope points back at
// the class symbol, which points at the scope). Indexing
// through small integer ids into per-context arenas breaks the cycle at
// the Go type level, keeps every entity trivially comparable and hashable,
// and makes every arena a flat, growable slice.
package ids

// ScopeID indexes a scope.Scope within a scope.Graph.
type ScopeID uint32

// SymbolID indexes a symtab.Symbol within a symtab.Arena.
type SymbolID uint32

// InvalidScope is the zero value, reserved so a zeroed ScopeID reads as
// "no scope" rather than aliasing a real one.
const InvalidScope ScopeID = 0

// InvalidSymbol is the zero value, reserved so a zeroed SymbolID reads as
// "no symbol" rather than aliasing a real one.
const InvalidSymbol SymbolID = 0

// IsValid reports whether id refers to a real scope.
func (id ScopeID) IsValid() bool { return id != InvalidScope }

// IsValid reports whether id refers to a real symbol.
func (id SymbolID) IsValid() bool { return id != InvalidSymbol }
