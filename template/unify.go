// Package template implements the Template Solver: specialization
// selection over a template-id via partial ordering, and the structural
// unification that backs it.
package template

import (
	"github.com/strategist922/mcxx/types"
)

type paramKey struct {
	depth int
	index int
}

// Substitution is the binding produced by a successful Unify: type
// template parameters to the Type they matched, non-type parameters to
// the expression they matched.
type Substitution struct {
	types   map[paramKey]*types.Type
	nonType map[int]*types.TemplateArgument
}

// NewSubstitution returns an empty substitution.
func NewSubstitution() *Substitution {
	return &Substitution{types: map[paramKey]*types.Type{}, nonType: map[int]*types.TemplateArgument{}}
}

// Unify attempts to match pattern against args, producing the binding
// that makes them equal. Both sides advance over typedefs before any
// SimpleType comparison.
func Unify(pattern, args types.TemplateArgumentList) (*Substitution, bool) {
	if len(pattern) != len(args) {
		return nil, false
	}
	subst := NewSubstitution()
	for i := range pattern {
		if !unifyArgument(pattern[i], args[i], subst) {
			return nil, false
		}
	}
	return subst, true
}

func unifyArgument(pattern, arg types.TemplateArgument, subst *Substitution) bool {
	if pattern.Kind != arg.Kind {
		return false
	}
	switch pattern.Kind {
	case types.TemplateArgType:
		return unifyType(pattern.Type, arg.Type, subst)
	case types.TemplateArgNonType:
		return unifyNonType(pattern, arg, subst)
	default:
		return false
	}
}

func unifyType(pattern, arg *types.Type, subst *Substitution) bool {
	pattern = types.AdvanceOverTypedefs(pattern)
	arg = types.AdvanceOverTypedefs(arg)

	if pattern.Kind() == types.Direct && pattern.Simple().Kind == types.SimpleTypeTemplateParam {
		key := paramKey{pattern.Simple().Depth, pattern.Simple().Index}
		if existing, bound := subst.types[key]; bound {
			return types.Equivalent(existing, arg)
		}
		subst.types[key] = arg
		return true
	}

	if pattern.Kind() != arg.Kind() {
		return false
	}
	switch pattern.Kind() {
	case types.Direct:
		// The pattern side is not a bare type-template-parameter at this
		// point, so this is an ordinary leaf match: same rule equivalence
		// uses.
		return types.Equivalent(pattern, arg)
	case types.Pointer:
		if pattern.CV() != arg.CV() {
			return false
		}
		return unifyType(pattern.Pointee(), arg.Pointee(), subst)
	case types.PointerToMember:
		if pattern.CV() != arg.CV() || pattern.Owner() != arg.Owner() {
			return false
		}
		return unifyType(pattern.Pointee(), arg.Pointee(), subst)
	case types.Reference:
		return unifyType(pattern.Pointee(), arg.Pointee(), subst)
	case types.Array:
		if !arraySizesUnify(pattern, arg) {
			return false
		}
		return unifyType(pattern.Pointee(), arg.Pointee(), subst)
	case types.Function:
		return unifyFunction(pattern, arg, subst)
	default:
		return false
	}
}

func arraySizesUnify(pattern, arg *types.Type) bool {
	if pattern.Size() == nil {
		// An unevaluated or dependent extent in the pattern matches any
		// extent: the bound, if any, lives in a non-type argument slot
		// elsewhere in the pattern, not in the array Type itself.
		return true
	}
	if arg.Size() == nil {
		return false
	}
	return *pattern.Size() == *arg.Size()
}

func unifyFunction(pattern, arg *types.Type, subst *Substitution) bool {
	if pattern.FuncCV() != arg.FuncCV() || pattern.Variadic() != arg.Variadic() {
		return false
	}
	if !unifyType(pattern.Return(), arg.Return(), subst) {
		return false
	}
	pp, ap := pattern.Params(), arg.Params()
	if len(pp) != len(ap) {
		return false
	}
	for i := range pp {
		if !unifyType(pp[i], ap[i], subst) {
			return false
		}
	}
	return true
}

func unifyNonType(pattern, arg types.TemplateArgument, subst *Substitution) bool {
	if pattern.ParamIndex >= 0 {
		if existing, bound := subst.nonType[pattern.ParamIndex]; bound {
			return nonTypeLiteralEqual(*existing, arg)
		}
		a := arg
		subst.nonType[pattern.ParamIndex] = &a
		return true
	}
	return nonTypeLiteralEqual(pattern, arg)
}

// nonTypeLiteralEqual compares two concrete non-type arguments by their
// expression's lexeme. This core has no constant evaluator of its own, so
// text-level literal equality is as close as unification gets short of a
// full evaluator.
func nonTypeLiteralEqual(a, b types.TemplateArgument) bool {
	if a.Expr == nil || b.Expr == nil {
		return a.Expr == b.Expr
	}
	return a.Expr.Text() == b.Expr.Text()
}
