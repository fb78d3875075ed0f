package symtab_test

import (
	"testing"

	"github.com/google/gapid/core/assert"

	"github.com/strategist922/mcxx/symtab"
)

func TestInsertIsMostRecentFirst(t *testing.T) {
	a := assert.To(t)
	arena := symtab.NewArena()
	table := symtab.NewTable()

	first := arena.New("f")
	second := arena.New("f")
	table.Insert("f", first.ID)
	table.Insert("f", second.ID)

	bucket := table.LookupLocal("f")
	a.For("bucket size").That(len(bucket)).Equals(2)
	a.For("most recent first").That(bucket[0]).Equals(second.ID)
	a.For("oldest last").That(bucket[1]).Equals(first.ID)
}

func TestInsertThenLookupLocalContainsSymbolAtHead(t *testing.T) {
	// Invariant: for every insert(scope, sym), lookup_local(scope, sym.name)
	// immediately contains sym at head.
	a := assert.To(t)
	arena := symtab.NewArena()
	table := symtab.NewTable()

	sym := arena.New("x")
	table.Insert("x", sym.ID)
	a.For("head of bucket").That(table.LookupLocal("x")[0]).Equals(sym.ID)
}

func TestLookupLocalMissingNameIsEmpty(t *testing.T) {
	a := assert.To(t)
	table := symtab.NewTable()
	a.For("missing name").That(len(table.LookupLocal("nope"))).Equals(0)
}

func TestArenaInvalidIDResolvesToNil(t *testing.T) {
	a := assert.To(t)
	arena := symtab.NewArena()
	a.For("invalid id").That(arena.Symbol(0)).IsNil()
}
