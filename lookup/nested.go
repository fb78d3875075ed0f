package lookup

import (
	"context"

	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/diag"
	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/symtab"
	"github.com/strategist922/mcxx/template"
	"github.com/strategist922/mcxx/types"
)

var qualifierStepKinds = []symtab.Kind{
	symtab.KindClass,
	symtab.KindNamespace,
	symtab.KindTypedef,
}

// QueryNestedName walks a qualified-id's qualifier chain and looks up its
// final name in the scope the chain resolves to. start is both the
// lookup scope for the first qualifier step and the evaluation scope for
// any non-type template arguments encountered along the way; a leading
// "::" instead starts the chain at the translation-unit scope.
func (e *Engine) QueryNestedName(ctx context.Context, start ids.ScopeID, n ast.Node) (result []*symtab.Symbol, err error) {
	defer diag.Recover(&err)
	if n.Kind() != ast.KindQualifiedID {
		diag.Raise(n, "expected a qualified-id, got %s", n.Kind())
	}

	cur := start
	if ast.HasGlobalPrefix(n) {
		cur = e.translationUnit
	}

	resolvedClass := false
	for _, q := range ast.Qualifiers(n) {
		nextScope, isClass, stepErr := e.resolveQualifierStep(ctx, cur, start, q)
		if stepErr != nil {
			return nil, stepErr
		}
		if nextScope == ids.InvalidScope {
			return nil, nil
		}
		if resolvedClass && !isClass {
			return nil, diag.ErrMonotonicityViolation
		}
		resolvedClass = resolvedClass || isClass
		cur = nextScope
	}

	return e.queryFinal(ctx, cur, start, ast.Final(n))
}

// resolveQualifierStep resolves one identifier or template-id qualifier
// step in lookupScope, returning the scope it names and whether that
// scope belongs to a class (as opposed to a namespace).
func (e *Engine) resolveQualifierStep(ctx context.Context, lookupScope, evalScope ids.ScopeID, q ast.Node) (ids.ScopeID, bool, error) {
	switch q.Kind() {
	case ast.KindSymbol:
		hits := FilterByKind(e.queryUnqualified(ctx, lookupScope, q.Text()), qualifierStepKinds...)
		if len(hits) == 0 {
			return ids.InvalidScope, false, nil
		}
		if len(hits) > 1 {
			return ids.InvalidScope, false, diag.ErrAmbiguousQualifier
		}
		return e.scopeOfQualifierSymbol(hits[0])

	case ast.KindTemplateID:
		hits, err := e.QueryTemplateID(ctx, lookupScope, evalScope, q)
		if err != nil {
			return ids.InvalidScope, false, err
		}
		if len(hits) == 0 {
			return ids.InvalidScope, false, nil
		}
		sym := hits[0]
		switch sym.Kind {
		case symtab.KindTemplatePrimaryClass, symtab.KindTemplateSpecializedClass, symtab.KindClass:
			return sym.RelatedScope, true, nil
		default:
			return ids.InvalidScope, false, diag.ErrNotAClass
		}

	default:
		diag.Raise(q, "unrecognized qualifier step shape %s", q.Kind())
		return ids.InvalidScope, false, nil
	}
}

func (e *Engine) scopeOfQualifierSymbol(sym *symtab.Symbol) (ids.ScopeID, bool, error) {
	switch sym.Kind {
	case symtab.KindClass, symtab.KindTemplatePrimaryClass, symtab.KindTemplateSpecializedClass:
		return sym.RelatedScope, true, nil
	case symtab.KindNamespace:
		return sym.RelatedScope, false, nil
	case symtab.KindTypedef:
		aliased := types.AdvanceOverTypedefs(sym.Type)
		if aliased.Kind() != types.Direct || aliased.Simple().Kind != types.SimpleClass {
			return ids.InvalidScope, false, diag.ErrNotAClass
		}
		classSym := e.graph.Symbols().Symbol(aliased.Simple().Symbol)
		if classSym == nil {
			return ids.InvalidScope, false, diag.ErrNotAClass
		}
		return classSym.RelatedScope, true, nil
	default:
		return ids.InvalidScope, false, diag.ErrNotAClass
	}
}

// queryFinal looks up a qualified-id's final component in scope cur only,
// with no fallback to any enclosing scope.
func (e *Engine) queryFinal(ctx context.Context, cur, evalScope ids.ScopeID, final ast.Node) ([]*symtab.Symbol, error) {
	s := e.graph.Scope(cur)
	switch final.Kind() {
	case ast.KindSymbol:
		return e.local(s, final.Text()), nil
	case ast.KindTemplateID:
		// The template name is resolved in cur alone, not through
		// QueryTemplateID's unqualified lookup, which would fall back to
		// enclosing scopes.
		args := e.evalArgs(ast.TemplateIDArgs(final), evalScope)
		localOnly := func(_ ids.ScopeID, name string) []*symtab.Symbol { return e.local(s, name) }
		sym, err := template.Solve(ctx, cur, ast.TemplateIDName(final).Text(), args, localOnly)
		if err != nil {
			return nil, err
		}
		if sym == nil {
			return nil, nil
		}
		return []*symtab.Symbol{sym}, nil
	case ast.KindConversionFunctionID:
		return e.local(s, ConversionFunctionName(final.Text())), nil
	case ast.KindDestructorID:
		of := final.Child(0)
		return e.local(s, DestructorName(of.Text())), nil
	case ast.KindOperatorFunctionID:
		return e.local(s, OperatorFunctionName(final.Text())), nil
	default:
		diag.Raise(final, "unrecognized final-name shape %s", final.Kind())
		return nil, nil
	}
}
