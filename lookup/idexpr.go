package lookup

import (
	"context"

	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/diag"
	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/symtab"
)

// QueryIDExpression dispatches on the id-expression's AST shape: a plain
// symbol, destructor-id, operator-function-id and conversion-function-id
// go through unqualified lookup under their canonical name; a
// qualified-id goes through QueryNestedName; a bare template-id is solved
// directly.
func (e *Engine) QueryIDExpression(ctx context.Context, scopeID ids.ScopeID, n ast.Node, mode Mode) (result []*symtab.Symbol, err error) {
	defer diag.Recover(&err)

	switch n.Kind() {
	case ast.KindQualifiedID:
		return e.QueryNestedName(ctx, scopeID, n)
	case ast.KindTemplateID:
		return e.QueryTemplateID(ctx, scopeID, scopeID, n)
	case ast.KindSymbol:
		return e.QueryUnqualified(ctx, scopeID, n.Text(), mode)
	case ast.KindDestructorID:
		of := n.Child(0)
		return e.QueryUnqualified(ctx, scopeID, DestructorName(of.Text()), mode)
	case ast.KindOperatorFunctionID:
		return e.QueryUnqualified(ctx, scopeID, OperatorFunctionName(n.Text()), mode)
	case ast.KindConversionFunctionID:
		return e.QueryUnqualified(ctx, scopeID, ConversionFunctionName(n.Text()), mode)
	default:
		diag.Raise(n, "unrecognized id-expression shape %s", n.Kind())
		return nil, nil
	}
}
