package template

import (
	"context"

	"github.com/google/gapid/core/log"

	"github.com/strategist922/mcxx/diag"
	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/symtab"
	"github.com/strategist922/mcxx/types"
)

// ResolveNameFunc looks up name starting at scope: unqualified, the way
// lookup.Engine.QueryUnqualified does, or in scope's own table alone for
// the final component of a qualified-id. Solve depends on this function
// rather than importing the lookup package directly, so the two packages
// don't need each other: lookup calls into Solve for template-id steps,
// and Solve calls back out for the template name itself.
type ResolveNameFunc func(scope ids.ScopeID, name string) []*symtab.Symbol

var templateKinds = map[symtab.Kind]bool{
	symtab.KindTemplatePrimaryClass:      true,
	symtab.KindTemplateSpecializedClass:  true,
	symtab.KindTemplateTemplateParameter: true,
	symtab.KindTemplateFunction:          true,
}

// Solve resolves a template-id (name + argument list, at the given
// lookup scope) to the single symbol it denotes: either the primary
// template, verbatim, or the most specialized matching specialization.
func Solve(ctx context.Context, scope ids.ScopeID, name string, args types.TemplateArgumentList, resolveName ResolveNameFunc) (sym *symtab.Symbol, err error) {
	defer diag.Recover(&err)
	log.D(ctx, "template.Solve: %q with %d argument(s)", name, len(args))

	candidates := filterTemplateKinds(resolveName(scope, name))
	if len(candidates) == 0 {
		diag.RaiseErr(nil, diag.ErrNoTemplateCandidates, "template name %q did not resolve to a template after filtering", name)
	}

	var primary *symtab.Symbol
	var specializations []*symtab.Symbol
	for _, c := range candidates {
		switch c.Kind {
		case symtab.KindTemplateSpecializedClass:
			specializations = append(specializations, c)
		default:
			if primary == nil {
				primary = c
			}
		}
	}

	if len(specializations) == 0 {
		return primary, nil
	}

	type matched struct {
		sym   *symtab.Symbol
		subst *Substitution
	}
	var winners []matched
	for _, s := range specializations {
		if subst, ok := Unify(s.SpecializationPattern, args); ok {
			winners = append(winners, matched{s, subst})
		}
	}
	if len(winners) == 0 {
		return primary, nil
	}
	if len(winners) == 1 {
		return winners[0].sym, nil
	}

	// Partial ordering: the most specialized candidate's pattern does not
	// unify against any other winner's pattern, but every other winner's
	// pattern unifies against it.
	var best *symtab.Symbol
	for _, candidate := range winners {
		isMostSpecialized := true
		for _, other := range winners {
			if candidate.sym == other.sym {
				continue
			}
			_, candidateUnifiesOther := Unify(candidate.sym.SpecializationPattern, other.sym.SpecializationPattern)
			_, otherUnifiesCandidate := Unify(other.sym.SpecializationPattern, candidate.sym.SpecializationPattern)
			if candidateUnifiesOther || !otherUnifiesCandidate {
				isMostSpecialized = false
				break
			}
		}
		if isMostSpecialized {
			if best != nil {
				diag.RaiseErr(nil, diag.ErrTemplateSelectionFailure, "no unique most-specialized template candidate for %q", name)
			}
			best = candidate.sym
		}
	}
	if best == nil {
		diag.RaiseErr(nil, diag.ErrTemplateSelectionFailure, "no unique most-specialized template candidate for %q", name)
	}
	return best, nil
}

func filterTemplateKinds(syms []*symtab.Symbol) []*symtab.Symbol {
	out := make([]*symtab.Symbol, 0, len(syms))
	for _, s := range syms {
		if templateKinds[s.Kind] {
			out = append(out, s)
		}
	}
	return out
}
