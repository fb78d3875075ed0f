package types

// BuiltinBase is the primitive family a Builtin belongs to.
// CanonicalBuiltins below supplies the table of which width/sign
// modifiers are legal on each member, since Equivalent needs something
// concrete to compare.
type BuiltinBase int

const (
	BInt BuiltinBase = iota
	BBool
	BFloat
	BDouble
	BChar
	BWChar
	BVoid
)

func (b BuiltinBase) String() string {
	switch b {
	case BInt:
		return "int"
	case BBool:
		return "bool"
	case BFloat:
		return "float"
	case BDouble:
		return "double"
	case BChar:
		return "char"
	case BWChar:
		return "wchar_t"
	case BVoid:
		return "void"
	default:
		return "invalid"
	}
}

// Builtin is the payload of a SimpleBuiltin SimpleType: the width/sign
// axes C++ builtins vary over (is_long in {0,1,2}, is_short, is_signed,
// is_unsigned) plus the base family.
type Builtin struct {
	Base     BuiltinBase
	Long     int // 0, 1 (long) or 2 (long long); only meaningful for BInt/BDouble
	Short    bool
	Signed   bool
	Unsigned bool
}

// Equivalent reports whether two Builtins denote the same type. Unlike
// the general SimpleType equivalence rule, builtins compare structurally
// by value since there is no backing symbol to compare by identity.
func (b Builtin) Equivalent(o Builtin) bool {
	return b.Base == o.Base && b.Long == o.Long && b.Short == o.Short &&
		b.Signed == o.Signed && b.Unsigned == o.Unsigned
}

// namedBuiltin pairs a canonical C++ spelling with the Builtin it denotes.
type namedBuiltin struct {
	name string
	b    Builtin
}

// CanonicalBuiltins enumerates the legal combinations of the builtin axes,
// each paired with its canonical C++ spelling. A real front end needs
// this table to turn a type-specifier sequence ("unsigned long long")
// into a single SimpleType and back; the distilled spec assumes it exists
// without supplying it.
var CanonicalBuiltins = []namedBuiltin{
	{"void", Builtin{Base: BVoid}},
	{"bool", Builtin{Base: BBool}},
	{"char", Builtin{Base: BChar}},
	{"signed char", Builtin{Base: BChar, Signed: true}},
	{"unsigned char", Builtin{Base: BChar, Unsigned: true}},
	{"wchar_t", Builtin{Base: BWChar}},
	{"short int", Builtin{Base: BInt, Short: true}},
	{"unsigned short int", Builtin{Base: BInt, Short: true, Unsigned: true}},
	{"int", Builtin{Base: BInt}},
	{"unsigned int", Builtin{Base: BInt, Unsigned: true}},
	{"long int", Builtin{Base: BInt, Long: 1}},
	{"unsigned long int", Builtin{Base: BInt, Long: 1, Unsigned: true}},
	{"long long int", Builtin{Base: BInt, Long: 2}},
	{"unsigned long long int", Builtin{Base: BInt, Long: 2, Unsigned: true}},
	{"float", Builtin{Base: BFloat}},
	{"double", Builtin{Base: BDouble}},
	{"long double", Builtin{Base: BDouble, Long: 1}},
}

// LookupBuiltin resolves a canonical spelling to its Builtin, for driver
// code turning a resolved type-specifier sequence into a SimpleType.
func LookupBuiltin(name string) (Builtin, bool) {
	for _, nb := range CanonicalBuiltins {
		if nb.name == name {
			return nb.b, true
		}
	}
	return Builtin{}, false
}

// CanonicalName returns the canonical C++ spelling of b, or "" if b does
// not match any entry of CanonicalBuiltins (a malformed combination of
// axes, which the driver should have already rejected).
func (b Builtin) CanonicalName() string {
	for _, nb := range CanonicalBuiltins {
		if nb.b.Equivalent(b) {
			return nb.name
		}
	}
	return ""
}
