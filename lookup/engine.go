// Package lookup implements the Name-Lookup Engine: query_unqualified's
// per-scope-kind dispatch, query_nested_name's qualifier-chain walk, and
// query_id_expression's façade over both, per the scope-kind dispatch
// table that is this component's normative contract.
package lookup

import (
	"context"

	"github.com/google/gapid/core/log"

	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/diag"
	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/scope"
	"github.com/strategist922/mcxx/symtab"
	"github.com/strategist922/mcxx/template"
	"github.com/strategist922/mcxx/types"
)

// ArgEvaluator turns a template-id's raw argument nodes into the typed
// argument list the solver unifies against, evaluating non-type
// expressions in evalScope. Elaborating a type-id or expression AST node
// into a Type or constant value is the driver's job, not this engine's;
// Engine depends on it through this callback the way template.Solve
// depends on ResolveNameFunc, so lookup never needs to import whatever
// package does type elaboration.
type ArgEvaluator func(argNodes []ast.Node, evalScope ids.ScopeID) types.TemplateArgumentList

// Engine is the Name-Lookup Engine: a scope graph plus the callbacks it
// needs to resolve template-ids it encounters along the way.
type Engine struct {
	graph           *scope.Graph
	translationUnit ids.ScopeID
	evalArgs        ArgEvaluator
	depth           int // reentrancy depth, debug tracing only
}

// NewEngine returns an engine over graph, rooted at the translation-unit
// (global namespace) scope, using evalArgs to elaborate template-id
// argument nodes it encounters.
func NewEngine(graph *scope.Graph, translationUnit ids.ScopeID, evalArgs ArgEvaluator) *Engine {
	return &Engine{graph: graph, translationUnit: translationUnit, evalArgs: evalArgs}
}

func (e *Engine) local(s *scope.Scope, name string) []*symtab.Symbol {
	if s == nil {
		return nil
	}
	return e.resolve(s.Table.LookupLocal(name))
}

func (e *Engine) resolve(bucket []ids.SymbolID) []*symtab.Symbol {
	if len(bucket) == 0 {
		return nil
	}
	out := make([]*symtab.Symbol, 0, len(bucket))
	for _, id := range bucket {
		if sym := e.graph.Symbols().Symbol(id); sym != nil {
			out = append(out, sym)
		}
	}
	return out
}

// Mode selects between a local-only peek and a full unqualified search,
// the lookup-mode flag every driver-facing query operation takes.
type Mode int

const (
	// FullUnqualified runs the scope-kind dispatch table in full.
	FullUnqualified Mode = iota
	// LocalOnly restricts the search to scope's own table, equivalent to
	// calling lookup_local directly.
	LocalOnly
)

func (m Mode) String() string {
	if m == LocalOnly {
		return "local-only"
	}
	return "full-unqualified"
}

// QueryUnqualified looks up name starting at scope. In FullUnqualified
// mode it dispatches on scope's kind per the §4.4 table and returns the
// first non-empty sub-search's result; in LocalOnly mode it is exactly
// lookup_local(scope, name).
func (e *Engine) QueryUnqualified(ctx context.Context, id ids.ScopeID, name string, mode Mode) (result []*symtab.Symbol, err error) {
	defer diag.Recover(&err)
	e.depth++
	log.D(ctx, "%*sQueryUnqualified(%v, %q, mode=%v)", e.depth*2, "", id, name, mode)
	defer func() { e.depth-- }()
	if mode == LocalOnly {
		return e.local(e.graph.Scope(id), name), nil
	}
	return e.queryUnqualified(ctx, id, name), nil
}

func (e *Engine) queryUnqualified(ctx context.Context, id ids.ScopeID, name string) []*symtab.Symbol {
	if !id.IsValid() {
		return nil
	}
	s := e.graph.Scope(id)
	if s == nil {
		return nil
	}

	switch s.Kind {
	case scope.KindBlock:
		if r := e.local(s, name); len(r) > 0 {
			return r
		}
		if r := e.usedNamespaces(map[ids.ScopeID]bool{}, s, name); len(r) > 0 {
			return r
		}
		if r := e.local(e.graph.Scope(s.FunctionScope), name); len(r) > 0 {
			return r
		}
		if r := e.local(e.graph.Scope(s.PrototypeScope), name); len(r) > 0 {
			return r
		}
		if r := e.local(e.graph.Scope(s.TemplateScope), name); len(r) > 0 {
			return r
		}
		return e.queryUnqualified(ctx, s.Enclosing, name)

	case scope.KindNamespace:
		if r := e.local(s, name); len(r) > 0 {
			return r
		}
		if r := e.local(e.graph.Scope(s.TemplateScope), name); len(r) > 0 {
			return r
		}
		if r := e.usedNamespaces(map[ids.ScopeID]bool{}, s, name); len(r) > 0 {
			return r
		}
		return e.queryUnqualified(ctx, s.Enclosing, name)

	case scope.KindClass:
		if r := e.local(s, name); len(r) > 0 {
			return r
		}
		if r := e.usedNamespaces(map[ids.ScopeID]bool{}, s, name); len(r) > 0 {
			return r
		}
		if r := e.baseSearch(s, name); len(r) > 0 {
			return r
		}
		if r := e.local(e.graph.Scope(s.TemplateScope), name); len(r) > 0 {
			return r
		}
		return e.queryUnqualified(ctx, s.Enclosing, name)

	case scope.KindFunction:
		if r := e.local(s, name); len(r) > 0 {
			return r
		}
		return e.queryUnqualified(ctx, s.Enclosing, name)

	case scope.KindPrototype:
		if r := e.local(e.graph.Scope(s.TemplateScope), name); len(r) > 0 {
			return r
		}
		return e.queryUnqualified(ctx, s.Enclosing, name)

	case scope.KindTemplate:
		if r := e.local(s, name); len(r) > 0 {
			return r
		}
		return e.queryUnqualified(ctx, s.Enclosing, name)

	default:
		return nil
	}
}

// usedNamespaces unions the results of recursively querying every
// namespace s has a using-directive for: each used namespace's own local
// table, then (transitively) its own used namespaces. visited guards
// against using-directive cycles and, within one top-level call, against
// counting the same namespace twice when two different paths reach it.
func (e *Engine) usedNamespaces(visited map[ids.ScopeID]bool, s *scope.Scope, name string) []*symtab.Symbol {
	var out []*symtab.Symbol
	for _, nsID := range s.UsedNamespaces {
		out = append(out, e.usedNamespaceLookup(visited, nsID, name)...)
	}
	return out
}

func (e *Engine) usedNamespaceLookup(visited map[ids.ScopeID]bool, nsID ids.ScopeID, name string) []*symtab.Symbol {
	if visited[nsID] {
		return nil
	}
	visited[nsID] = true
	ns := e.graph.Scope(nsID)
	if ns == nil {
		return nil
	}
	out := e.local(ns, name)
	out = append(out, e.usedNamespaces(visited, ns, name)...)
	return out
}

// baseSearch walks the base-class DAG breadth-first, one level of
// base-specifiers at a time, stopping at the first level that yields any
// hits. Each level's hits are a plain local lookup in every base scope at
// that level — deliberately not deduplicated by scope, so a name reached
// through two different base paths (the diamond case) is reported as two
// ambiguous entries rather than silently collapsed to one.
func (e *Engine) baseSearch(s *scope.Scope, name string) []*symtab.Symbol {
	level := s.Bases
	for len(level) > 0 {
		var hits []*symtab.Symbol
		var next []scope.Base
		for _, b := range level {
			baseScope := e.graph.Scope(b.Scope)
			if baseScope == nil {
				continue
			}
			hits = append(hits, e.local(baseScope, name)...)
			next = append(next, baseScope.Bases...)
		}
		if len(hits) > 0 {
			return hits
		}
		level = next
	}
	return nil
}

// resolveForTemplate adapts queryUnqualified to template.ResolveNameFunc,
// the dependency-injection seam that lets template.Solve look up a
// template name without this package and template importing each other.
func (e *Engine) resolveForTemplate(ctx context.Context) template.ResolveNameFunc {
	return func(scopeID ids.ScopeID, name string) []*symtab.Symbol {
		return e.queryUnqualified(ctx, scopeID, name)
	}
}

// QueryTemplateID resolves a template-id AST node (name plus argument
// list) at lookupScope, evaluating any non-type argument expressions in
// evalScope. Callers doing qualifier-chain resolution should pass the
// original query scope as evalScope, not the scope a qualifier chain has
// walked into so far.
func (e *Engine) QueryTemplateID(ctx context.Context, lookupScope, evalScope ids.ScopeID, n ast.Node) (result []*symtab.Symbol, err error) {
	defer diag.Recover(&err)
	if n.Kind() != ast.KindTemplateID {
		diag.Raise(n, "expected a template-id, got %s", n.Kind())
	}
	name := ast.TemplateIDName(n)
	args := e.evalArgs(ast.TemplateIDArgs(n), evalScope)
	sym, solveErr := template.Solve(ctx, lookupScope, name.Text(), args, e.resolveForTemplate(ctx))
	if solveErr != nil {
		return nil, solveErr
	}
	if sym == nil {
		return nil, nil
	}
	return []*symtab.Symbol{sym}, nil
}
