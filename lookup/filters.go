package lookup

import "github.com/strategist922/mcxx/symtab"

// FilterByKind keeps only the symbols whose Kind is in kinds.
func FilterByKind(list []*symtab.Symbol, kinds ...symtab.Kind) []*symtab.Symbol {
	want := kindSet(kinds)
	out := make([]*symtab.Symbol, 0, len(list))
	for _, s := range list {
		if want[s.Kind] {
			out = append(out, s)
		}
	}
	return out
}

// FilterByNonKind keeps only the symbols whose Kind is not in kinds.
func FilterByNonKind(list []*symtab.Symbol, kinds ...symtab.Kind) []*symtab.Symbol {
	exclude := kindSet(kinds)
	out := make([]*symtab.Symbol, 0, len(list))
	for _, s := range list {
		if !exclude[s.Kind] {
			out = append(out, s)
		}
	}
	return out
}

func kindSet(kinds []symtab.Kind) map[symtab.Kind]bool {
	set := make(map[symtab.Kind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}

var typeSpecifierKinds = map[symtab.Kind]bool{
	symtab.KindClass:                     true,
	symtab.KindEnum:                      true,
	symtab.KindTypedef:                   true,
	symtab.KindTemplatePrimaryClass:      true,
	symtab.KindTemplateSpecializedClass:  true,
	symtab.KindTypeTemplateParameter:     true,
	symtab.KindTemplateTemplateParameter: true,
	symtab.KindGCCBuiltinType:            true,
}

// FilterSimpleTypeSpecifier reduces an overload set to the single
// type-name it names, or nil if it doesn't unambiguously name one. A
// function sharing its name with a class (a constructor) never shadows
// the class; any other non-type declaration sharing the name with a type
// makes the result ambiguous.
func FilterSimpleTypeSpecifier(list []*symtab.Symbol) *symtab.Symbol {
	var typeSym *symtab.Symbol
	shadowed := false
	for _, s := range list {
		switch {
		case typeSpecifierKinds[s.Kind]:
			if typeSym == nil {
				typeSym = s
			}
		case s.Kind == symtab.KindFunction || s.Kind == symtab.KindTemplateFunction:
			// A function never shadows a type of the same name.
		default:
			shadowed = true
		}
	}
	if shadowed {
		return nil
	}
	return typeSym
}
