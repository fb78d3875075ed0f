package scope_test

import (
	"testing"

	"github.com/google/gapid/core/assert"

	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/scope"
	"github.com/strategist922/mcxx/symtab"
)

func TestTemplateScopeInheritance(t *testing.T) {
	a := assert.To(t)
	symbols := symtab.NewArena()
	g := scope.NewGraph(symbols)

	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)
	ns := g.NewNamespaceScope(global, ids.InvalidSymbol)
	a.For("plain namespace has no template scope").That(g.Scope(ns).TemplateScope).Equals(ids.InvalidScope)

	tmpl := g.NewTemplateScope(ns)
	a.For("a template scope is its own template scope").That(g.Scope(tmpl).TemplateScope).Equals(tmpl)

	cls := g.NewClassScope(tmpl, ids.InvalidSymbol)
	a.For("child inherits the enclosing template scope").That(g.Scope(cls).TemplateScope).Equals(tmpl)

	fn := g.NewFunctionScope(cls, ids.InvalidSymbol)
	a.For("inheritance is transitive").That(g.Scope(fn).TemplateScope).Equals(tmpl)
}

func TestBlockScopeInsertsDebuggingSymbol(t *testing.T) {
	a := assert.To(t)
	symbols := symtab.NewArena()
	g := scope.NewGraph(symbols)

	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)
	fnScope := g.NewFunctionScope(global, ids.InvalidSymbol)
	proto := g.NewPrototypeScope(global)
	before := symbols.Len()
	g.NewBlockScope(global, fnScope, proto)
	a.For("one debugging symbol inserted").That(symbols.Len()).Equals(before + 1)

	names := g.Scope(global).Table.Names()
	found := false
	for _, n := range names {
		if len(n) > 7 && n[:7] == "$block$" {
			found = true
			bucket := g.Scope(global).Table.LookupLocal(n)
			a.For("debugging symbol kind").That(symbols.Symbol(bucket[0]).Kind).Equals(symtab.KindDebuggingScope)
		}
	}
	a.For("debugging symbol name found").ThatBoolean(found).IsTrue()
}

func TestInsertThenLookupLocal(t *testing.T) {
	a := assert.To(t)
	symbols := symtab.NewArena()
	g := scope.NewGraph(symbols)
	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)

	sym := g.NewSymbol(global, "x")
	bucket := g.LookupLocal(global, "x")
	a.For("symbol is at head").That(bucket[0]).Equals(sym.ID)
}

func TestUsingDirectiveDuplicatesPermitted(t *testing.T) {
	a := assert.To(t)
	symbols := symtab.NewArena()
	g := scope.NewGraph(symbols)
	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)
	a_ns := g.NewNamespaceScope(global, ids.InvalidSymbol)
	b_ns := g.NewNamespaceScope(global, ids.InvalidSymbol)

	g.AddUsingDirective(b_ns, a_ns)
	g.AddUsingDirective(b_ns, a_ns)
	a.For("duplicates kept in the list").That(len(g.Scope(b_ns).UsedNamespaces)).Equals(2)
}
