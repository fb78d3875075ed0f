package lookup_test

import (
	"testing"

	"github.com/google/gapid/core/assert"
	"github.com/google/gapid/core/log"

	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/lookup"
	"github.com/strategist922/mcxx/scope"
	"github.com/strategist922/mcxx/symtab"
	"github.com/strategist922/mcxx/types"
)

func noArgs(_ []ast.Node, _ ids.ScopeID) types.TemplateArgumentList { return nil }

func ident(name string) ast.Node { return ast.NewIdentifier(name, ast.Location{}) }

func newNamespace(g *scope.Graph, enclosing ids.ScopeID, name string) (*symtab.Symbol, ids.ScopeID) {
	sym := g.NewSymbol(enclosing, name)
	sc := g.NewNamespaceScope(enclosing, sym.ID)
	sym.Kind = symtab.KindNamespace
	sym.RelatedScope = sc
	sym.State = symtab.StateDefined
	return sym, sc
}

func newClass(g *scope.Graph, enclosing ids.ScopeID, name string) (*symtab.Symbol, ids.ScopeID) {
	sym := g.NewSymbol(enclosing, name)
	sc := g.NewClassScope(enclosing, sym.ID)
	sym.Kind = symtab.KindClass
	sym.RelatedScope = sc
	sym.State = symtab.StateDefined
	return sym, sc
}

func newVariable(g *scope.Graph, owner ids.ScopeID, name string) *symtab.Symbol {
	sym := g.NewSymbol(owner, name)
	sym.Kind = symtab.KindVariable
	sym.State = symtab.StateDefined
	return sym
}

func TestNestedNamespaceLookup(t *testing.T) {
	a := assert.To(t)
	ctx := log.Testing(t)
	arena := symtab.NewArena()
	g := scope.NewGraph(arena)
	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)

	_, aScope := newNamespace(g, global, "A")
	_, bScope := newNamespace(g, aScope, "B")
	x := newVariable(g, bScope, "x")

	e := lookup.NewEngine(g, global, noArgs)

	abx := ast.NewQualifiedID(false, []ast.Node{ident("A"), ident("B")}, ident("x"), ast.Location{})
	res, err := e.QueryNestedName(ctx, global, abx)
	a.For("A::B::x from global").ThatError(err).Succeeded()
	a.For("A::B::x result").That(len(res)).Equals(1)
	a.For("A::B::x symbol").That(res[0]).Equals(x)

	bx := ast.NewQualifiedID(false, []ast.Node{ident("B")}, ident("x"), ast.Location{})
	res2, err2 := e.QueryNestedName(ctx, aScope, bx)
	a.For("B::x from A").ThatError(err2).Succeeded()
	a.For("B::x result").That(len(res2)).Equals(1)
	a.For("B::x symbol").That(res2[0]).Equals(x)

	res3, err3 := e.QueryNestedName(ctx, global, bx)
	a.For("B::x from global").ThatError(err3).Succeeded()
	a.For("B::x from global is empty").That(len(res3)).Equals(0)
}

func TestUsingDirectiveTransitivity(t *testing.T) {
	a := assert.To(t)
	ctx := log.Testing(t)
	arena := symtab.NewArena()
	g := scope.NewGraph(arena)
	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)

	_, aScope := newNamespace(g, global, "A")
	x := newVariable(g, aScope, "x")
	_, bScope := newNamespace(g, global, "B")
	g.AddUsingDirective(bScope, aScope)
	_, cScope := newNamespace(g, global, "C")
	g.AddUsingDirective(cScope, bScope)

	e := lookup.NewEngine(g, global, noArgs)

	resB, err := e.QueryUnqualified(ctx, bScope, "x", lookup.FullUnqualified)
	a.For("x from B via using A").ThatError(err).Succeeded()
	a.For("x from B result").That(len(resB)).Equals(1)
	a.For("x from B symbol").That(resB[0]).Equals(x)

	resC, err2 := e.QueryUnqualified(ctx, cScope, "x", lookup.FullUnqualified)
	a.For("x from C via using B using A").ThatError(err2).Succeeded()
	a.For("x from C result").That(len(resC)).Equals(1)
	a.For("x from C symbol").That(resC[0]).Equals(x)
}

func TestClassBaseLookupAndDiamondAmbiguity(t *testing.T) {
	a := assert.To(t)
	ctx := log.Testing(t)
	arena := symtab.NewArena()
	g := scope.NewGraph(arena)
	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)

	_, aScope := newClass(g, global, "A")
	f := newVariable(g, aScope, "f")

	_, bScope := newClass(g, global, "B")
	g.AddBase(bScope, scope.Base{Scope: aScope, Access: scope.AccessPublic})

	e := lookup.NewEngine(g, global, noArgs)

	resB, err := e.QueryUnqualified(ctx, bScope, "f", lookup.FullUnqualified)
	a.For("f via single base").ThatError(err).Succeeded()
	a.For("f via single base result").That(len(resB)).Equals(1)
	a.For("f via single base symbol").That(resB[0]).Equals(f)

	_, cScope := newClass(g, global, "C")
	g.AddBase(cScope, scope.Base{Scope: aScope, Access: scope.AccessPublic})
	_, dScope := newClass(g, global, "D")
	g.AddBase(dScope, scope.Base{Scope: bScope, Access: scope.AccessPublic})
	g.AddBase(dScope, scope.Base{Scope: cScope, Access: scope.AccessPublic})

	resD, err2 := e.QueryUnqualified(ctx, dScope, "f", lookup.FullUnqualified)
	a.For("f via diamond").ThatError(err2).Succeeded()
	a.For("diamond is ambiguous: two entries").That(len(resD)).Equals(2)
}

func TestTypedefTransparencyInQualifiedNames(t *testing.T) {
	a := assert.To(t)
	ctx := log.Testing(t)
	arena := symtab.NewArena()
	g := scope.NewGraph(arena)
	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)

	xSym, xScope := newClass(g, global, "X")
	m := newVariable(g, xScope, "m")

	ySym := g.NewSymbol(global, "Y")
	ySym.Kind = symtab.KindTypedef
	aliased := types.MakeDirect(types.SimpleType{Kind: types.SimpleClass, Symbol: xSym.ID})
	ySym.Type = types.MakeDirect(types.SimpleType{Kind: types.SimpleTypedefAlias, Aliased: aliased})
	ySym.State = symtab.StateDefined

	e := lookup.NewEngine(g, global, noArgs)
	ym := ast.NewQualifiedID(false, []ast.Node{ident("Y")}, ident("m"), ast.Location{})
	res, err := e.QueryNestedName(ctx, global, ym)
	a.For("Y::m resolves through the typedef").ThatError(err).Succeeded()
	a.For("Y::m result").That(len(res)).Equals(1)
	a.For("Y::m symbol").That(res[0]).Equals(m)
}

func TestConstructorDoesNotShadowClass(t *testing.T) {
	a := assert.To(t)
	ctx := log.Testing(t)
	arena := symtab.NewArena()
	g := scope.NewGraph(arena)
	global := g.NewNamespaceScope(ids.InvalidScope, ids.InvalidSymbol)

	classSym, _ := newClass(g, global, "X")
	ctor := g.NewSymbol(global, "X")
	ctor.Kind = symtab.KindFunction
	ctor.State = symtab.StateDefined

	e := lookup.NewEngine(g, global, noArgs)
	hits, err := e.QueryUnqualified(ctx, global, "X", lookup.FullUnqualified)
	a.For("lookup of X").ThatError(err).Succeeded()
	a.For("both the constructor and the class are found").That(len(hits)).Equals(2)

	result := lookup.FilterSimpleTypeSpecifier(hits)
	a.For("constructor does not shadow the class").That(result).Equals(classSym)
}
