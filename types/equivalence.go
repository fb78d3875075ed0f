package types

// AdvanceOverTypedefs follows a Direct/SimpleTypedefAlias chain until the
// head variant is no longer a typedef alias. It is total and idempotent:
// typedef chains are acyclic by construction (nothing in this package
// lets a typedef alias itself, directly or through another alias), so the
// loop below always terminates.
func AdvanceOverTypedefs(t *Type) *Type {
	for t.kind == Direct && t.simple.Kind == SimpleTypedefAlias {
		t = t.simple.Aliased
	}
	return t
}

// Equivalent reports whether a and b denote the same type: same recursive
// structure once both sides have been advanced over typedefs, with
// matching cv-qualifiers at every level and user-defined SimpleTypes
// compared by backing-symbol identity rather than by name.
func Equivalent(a, b *Type) bool {
	a, b = AdvanceOverTypedefs(a), AdvanceOverTypedefs(b)
	if a == b {
		return true
	}
	if a.kind != b.kind || a.cv != b.cv {
		return false
	}
	switch a.kind {
	case Direct:
		return simpleEquivalent(a.simple, b.simple)
	case Pointer, PointerToMember:
		if a.kind == PointerToMember && a.owner != b.owner {
			return false
		}
		return Equivalent(a.pointee, b.pointee)
	case Reference:
		return Equivalent(a.pointee, b.pointee)
	case Array:
		if !sizesEquivalent(a, b) {
			return false
		}
		return Equivalent(a.pointee, b.pointee)
	case Function:
		return functionEquivalent(a, b)
	default:
		return false
	}
}

func sizesEquivalent(a, b *Type) bool {
	if (a.size == nil) != (b.size == nil) {
		// One side has a known constant extent and the other doesn't: only
		// equivalent if neither side ever evaluated one (both nil) or both
		// agree on the same value, both handled below.
		return false
	}
	if a.size == nil {
		return true // both unevaluated/dependent; structural shape still matches
	}
	return *a.size == *b.size
}

func functionEquivalent(a, b *Type) bool {
	if a.funcCV != b.funcCV || a.variadic != b.variadic {
		return false
	}
	if !Equivalent(a.ret, b.ret) {
		return false
	}
	if len(a.params) != len(b.params) {
		return false
	}
	for i := range a.params {
		if !Equivalent(a.params[i], b.params[i]) {
			return false
		}
	}
	return true
}

func simpleEquivalent(a, b SimpleType) bool {
	if a.Kind != b.Kind || a.CV != b.CV {
		return false
	}
	switch a.Kind {
	case SimpleBuiltin:
		return a.Builtin.Equivalent(b.Builtin)
	case SimpleClass, SimpleEnum, SimpleUserDefinedRef:
		return a.Symbol == b.Symbol
	case SimpleTypedefAlias:
		// Reached only when both sides are, impossibly, still a typedef
		// after AdvanceOverTypedefs ran on the owning Type; equivalence at
		// this level falls back to comparing the alias target directly.
		return Equivalent(a.Aliased, b.Aliased)
	case SimpleTypeTemplateParam:
		return a.Depth == b.Depth && a.Index == b.Index
	case SimpleDependent, SimpleGCCTypeof:
		return a.Expr == b.Expr && a.Scope == b.Scope
	case SimpleGCCVaList:
		return true
	default:
		return false
	}
}

// ApplyCV returns a Type equal to t but with its outermost cv-qualifier
// set to the union of its old qualifier and cv. t itself is never
// mutated.
func ApplyCV(t *Type, cv CV) *Type {
	switch t.kind {
	case Direct:
		return MakeDirect(t.simple.WithCV(cv))
	case Pointer:
		return MakePointer(t.cv.Union(cv), t.pointee)
	case PointerToMember:
		return MakePointerToMember(t.cv.Union(cv), t.pointee, t.owner)
	case Reference:
		// References are never cv-qualified; applying cv to one is a no-op,
		// matching "a reference to const" meaning "reference to (const X)"
		// rather than a cv-qualified reference.
		return t
	case Array:
		return MakeArray(ApplyCV(t.pointee, cv), t.sizeExpr, t.size)
	case Function:
		return t
	default:
		return t
	}
}

// BasicType strips outer pointer/array/function/reference layers to
// reveal the innermost Direct type.
func BasicType(t *Type) *Type {
	for {
		switch t.kind {
		case Pointer, Reference, PointerToMember, Array:
			t = t.pointee
		case Function:
			t = t.ret
		default:
			return t
		}
	}
}

// IsDependent reports whether any SimpleType reachable from t is a type
// template parameter or a template-dependent type.
func IsDependent(t *Type) bool {
	if t == nil {
		return false
	}
	switch t.kind {
	case Direct:
		switch t.simple.Kind {
		case SimpleTypeTemplateParam, SimpleDependent:
			return true
		case SimpleTypedefAlias:
			return IsDependent(t.simple.Aliased)
		default:
			return false
		}
	case Pointer, Reference, PointerToMember, Array:
		return IsDependent(t.pointee)
	case Function:
		if IsDependent(t.ret) {
			return true
		}
		for _, p := range t.params {
			if IsDependent(p) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
