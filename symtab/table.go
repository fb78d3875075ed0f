package symtab

import "github.com/strategist922/mcxx/ids"

// Table is the symbol table owned by a single scope: a multimap from name
// to the list of symbols declared under that name in that scope, ordered
// most-recent-first. Buckets may hold heterogeneous kinds — a class and
// its constructor share the class's name — filtering by kind is the
// caller's job (see the lookup package's filters).
//
// Table never traverses to an enclosing scope; that's query_unqualified's
// job, not lookup_local's.
type Table struct {
	buckets map[string][]ids.SymbolID
}

// NewTable returns an empty symbol table.
func NewTable() *Table {
	return &Table{buckets: map[string][]ids.SymbolID{}}
}

// Insert appends id to the bucket for name, at the head, so the most
// recently inserted symbol is always found first.
func (t *Table) Insert(name string, id ids.SymbolID) {
	t.buckets[name] = append([]ids.SymbolID{id}, t.buckets[name]...)
}

// LookupLocal returns the bucket for name as-is, without traversing to
// any other scope. The returned slice is a copy; mutating it does not
// affect the table.
func (t *Table) LookupLocal(name string) []ids.SymbolID {
	bucket := t.buckets[name]
	if len(bucket) == 0 {
		return nil
	}
	out := make([]ids.SymbolID, len(bucket))
	copy(out, bucket)
	return out
}

// Names returns every name with at least one entry, in no particular
// order. Used by diagnostics and tests, not by lookup itself.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.buckets))
	for n := range t.buckets {
		names = append(names, n)
	}
	return names
}

// Arena owns every Symbol created during a translation unit's lifetime.
// Symbols are never removed: scopes and symbols live as long as the
// translation-unit context that created them.
type Arena struct {
	symbols []*Symbol // index 0 is an unused sentinel so id 0 reads as invalid
}

// NewArena returns an empty symbol arena.
func NewArena() *Arena {
	return &Arena{symbols: []*Symbol{nil}}
}

// New allocates a fresh, forward-declared Symbol named name, but does not
// insert it into any table. Declaration processing uses this to create a
// symbol before its Type is known, then calls Table.Insert once a scope
// has been chosen for it.
func (a *Arena) New(name string) *Symbol {
	id := ids.SymbolID(len(a.symbols))
	s := &Symbol{ID: id, Name: name, State: StateForwardDeclared}
	a.symbols = append(a.symbols, s)
	return s
}

// Symbol resolves an id to its backing Symbol.
func (a *Arena) Symbol(id ids.SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(a.symbols) {
		return nil
	}
	return a.symbols[id]
}

// Len returns the number of symbols allocated so far.
func (a *Arena) Len() int { return len(a.symbols) - 1 }
