// Package types implements the Type Algebra: the recursive representation
// of C++ types (pointer, reference, pointer-to-member, array, function,
// direct) together with the parallel SimpleType taxonomy for builtins,
// classes, enums, typedefs, template parameters and typeof expressions.
//
// Types are constructed once and never mutated; apply_cv and the other
// "modifying" operations return a new Type rather than editing one in
// place, so a Type can be shared freely across symbols. Named-entity
// references (the owning class of a pointer-to-member, the symbol behind
// a class/enum/typedef SimpleType) are held as ids.SymbolID rather than a
// direct pointer to a symtab.Symbol so this package never has to import
// symtab — the arena-plus-indices shape that breaks the Type/Symbol/Scope
// ownership cycle.
package types

import (
	"github.com/strategist922/mcxx/ast"
	"github.com/strategist922/mcxx/ids"
)

// CV is the cv-qualifier bitset: const, volatile, restrict.
type CV uint8

const (
	Const CV = 1 << iota
	Volatile
	Restrict
)

// Has reports whether cv contains every bit of other.
func (cv CV) Has(other CV) bool { return cv&other == other }

// Union returns the bitwise union of two cv-qualifier sets.
func (cv CV) Union(other CV) CV { return cv | other }

func (cv CV) String() string {
	s := ""
	if cv.Has(Const) {
		s += "const "
	}
	if cv.Has(Volatile) {
		s += "volatile "
	}
	if cv.Has(Restrict) {
		s += "restrict "
	}
	return s
}

// Kind is the tag of the Type sum.
type Kind int

const (
	Direct Kind = iota
	Pointer
	Reference
	PointerToMember
	Array
	Function
)

func (k Kind) String() string {
	switch k {
	case Direct:
		return "direct"
	case Pointer:
		return "pointer"
	case Reference:
		return "reference"
	case PointerToMember:
		return "pointer-to-member"
	case Array:
		return "array"
	case Function:
		return "function"
	default:
		return "invalid"
	}
}

// Type is the recursive C++ type representation. Which fields are
// meaningful depends on Kind; see the constructors below, which are the
// only supported way to build one.
type Type struct {
	kind Kind
	cv   CV // outer cv-qualifier; meaningless for Reference and Function

	// Direct
	simple SimpleType

	// Pointer, Reference, PointerToMember, Array element type
	pointee *Type

	// PointerToMember: the owning class symbol
	owner ids.SymbolID

	// Array
	sizeExpr ast.Node // non-evaluated size expression, or nil
	size     *uint64  // evaluated size, or nil if unknown/dependent

	// Function
	ret        *Type
	params     []*Type
	variadic   bool
	funcCV     CV // cv-qualifier of a member function
	exceptions []*Type
	flags      FunctionFlags
	owningType ids.SymbolID // owning class of a member function, if any
}

// FunctionFlags groups the boolean properties a function Type carries.
type FunctionFlags struct {
	Static      bool
	Inline      bool
	Virtual     bool
	Pure        bool
	Explicit    bool
	Constructor bool
	Member      bool
}

// Kind returns the Type's variant tag.
func (t *Type) Kind() Kind { return t.kind }

// CV returns the outer cv-qualifier of t. It is always 0 for a Reference.
func (t *Type) CV() CV { return t.cv }

// Simple returns the SimpleType payload of a Direct type. Panics if t is
// not Direct: callers must check Kind first before projecting a variant.
func (t *Type) Simple() SimpleType {
	mustBeKind(t, Direct)
	return t.simple
}

// Pointee returns the pointed-to/referenced/element type of a Pointer,
// Reference, PointerToMember or Array type.
func (t *Type) Pointee() *Type {
	switch t.kind {
	case Pointer, Reference, PointerToMember, Array:
		return t.pointee
	default:
		mustBeKind(t, Pointer)
		return nil
	}
}

// Owner returns the owning class symbol of a PointerToMember type.
func (t *Type) Owner() ids.SymbolID {
	mustBeKind(t, PointerToMember)
	return t.owner
}

// SizeExpr returns the (possibly nil, possibly non-evaluated) array size
// expression of an Array type.
func (t *Type) SizeExpr() ast.Node {
	mustBeKind(t, Array)
	return t.sizeExpr
}

// Size returns the evaluated array size, or nil if it is unknown or
// dependent on a non-evaluated expression.
func (t *Type) Size() *uint64 {
	mustBeKind(t, Array)
	return t.size
}

// Return returns the return type of a Function type.
func (t *Type) Return() *Type {
	mustBeKind(t, Function)
	return t.ret
}

// Params returns the ordered parameter list of a Function type.
func (t *Type) Params() []*Type {
	mustBeKind(t, Function)
	return t.params
}

// Variadic reports whether a Function type's parameter list ends in "...".
func (t *Type) Variadic() bool {
	mustBeKind(t, Function)
	return t.variadic
}

// FuncCV returns the cv-qualifier applied to a member Function type.
func (t *Type) FuncCV() CV {
	mustBeKind(t, Function)
	return t.funcCV
}

// Exceptions returns the exception specification of a Function type.
func (t *Type) Exceptions() []*Type {
	mustBeKind(t, Function)
	return t.exceptions
}

// Flags returns the boolean properties of a Function type.
func (t *Type) Flags() FunctionFlags {
	mustBeKind(t, Function)
	return t.flags
}

// OwningClass returns the class a member Function type belongs to, or
// ids.InvalidSymbol if it is a free function.
func (t *Type) OwningClass() ids.SymbolID {
	mustBeKind(t, Function)
	return t.owningType
}

func mustBeKind(t *Type, want Kind) {
	if t.kind != want {
		panic("types: wrong Kind accessor: have " + t.kind.String() + ", want " + want.String())
	}
}

// MakeDirect constructs a Direct type wrapping a SimpleType. Construction
// is a pure function of its input: calling it twice with equal arguments
// yields structurally equivalent (though not identical) Types.
func MakeDirect(simple SimpleType) *Type {
	return &Type{kind: Direct, cv: simple.CV, simple: simple}
}

// MakePointer constructs a pointer-to-pointee type with the given
// cv-qualifier.
func MakePointer(cv CV, pointee *Type) *Type {
	return &Type{kind: Pointer, cv: cv, pointee: pointee}
}

// MakeReference constructs a reference-to-pointee type. References never
// carry their own cv-qualifier.
func MakeReference(pointee *Type) *Type {
	return &Type{kind: Reference, pointee: pointee}
}

// MakePointerToMember constructs a pointer-to-member type of the given
// owning class.
func MakePointerToMember(cv CV, pointee *Type, owner ids.SymbolID) *Type {
	return &Type{kind: PointerToMember, cv: cv, pointee: pointee, owner: owner}
}

// MakeArray constructs an array-of-element type. sizeExpr is the
// (possibly non-evaluated) AST size expression; size is the evaluated
// extent, or nil.
func MakeArray(element *Type, sizeExpr ast.Node, size *uint64) *Type {
	return &Type{kind: Array, pointee: element, sizeExpr: sizeExpr, size: size}
}

// FunctionSpec groups the arguments needed to construct a function Type.
type FunctionSpec struct {
	Return     *Type
	Params     []*Type
	Variadic   bool
	CV         CV
	Exceptions []*Type
	Flags      FunctionFlags
	Owner      ids.SymbolID
}

// MakeFunction constructs a function type from spec.
func MakeFunction(spec FunctionSpec) *Type {
	return &Type{
		kind:       Function,
		ret:        spec.Return,
		params:     spec.Params,
		variadic:   spec.Variadic,
		funcCV:     spec.CV,
		exceptions: spec.Exceptions,
		flags:      spec.Flags,
		owningType: spec.Owner,
	}
}
