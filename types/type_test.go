package types_test

import (
	"testing"

	"github.com/google/gapid/core/assert"

	"github.com/strategist922/mcxx/ids"
	"github.com/strategist922/mcxx/types"
)

func intType() *types.Type {
	b, _ := types.LookupBuiltin("int")
	return types.MakeDirect(types.SimpleType{Kind: types.SimpleBuiltin, Builtin: b})
}

func TestEquivalentReflexive(t *testing.T) {
	a := assert.To(t)
	for name, ty := range map[string]*types.Type{
		"int":        intType(),
		"int*":       types.MakePointer(0, intType()),
		"const int*": types.MakePointer(0, types.ApplyCV(intType(), types.Const)),
		"int&":       types.MakeReference(intType()),
		"int[4]":     types.MakeArray(intType(), nil, u64(4)),
	} {
		a.For("%s equivalent to itself", name).ThatBoolean(types.Equivalent(ty, ty)).IsTrue()
	}
}

func u64(v uint64) *uint64 { return &v }

func TestAdvanceOverTypedefsIdempotent(t *testing.T) {
	a := assert.To(t)
	aliased := types.MakePointer(0, intType())
	td := types.MakeDirect(types.SimpleType{Kind: types.SimpleTypedefAlias, Aliased: aliased})
	once := types.AdvanceOverTypedefs(td)
	twice := types.AdvanceOverTypedefs(once)
	a.For("advance is idempotent").ThatBoolean(types.Equivalent(once, twice)).IsTrue()
	a.For("advance reaches the aliased type").ThatBoolean(types.Equivalent(once, aliased)).IsTrue()
}

func TestAdvanceOverTypedefChain(t *testing.T) {
	a := assert.To(t)
	// typedef int A; typedef A B; typedef B C;
	tdA := types.MakeDirect(types.SimpleType{Kind: types.SimpleTypedefAlias, Aliased: intType()})
	tdB := types.MakeDirect(types.SimpleType{Kind: types.SimpleTypedefAlias, Aliased: tdA})
	tdC := types.MakeDirect(types.SimpleType{Kind: types.SimpleTypedefAlias, Aliased: tdB})
	a.For("chain advances all the way to int").ThatBoolean(types.Equivalent(types.AdvanceOverTypedefs(tdC), intType())).IsTrue()
}

func TestEquivalentCVMismatch(t *testing.T) {
	a := assert.To(t)
	plain := intType()
	konst := types.ApplyCV(intType(), types.Const)
	a.For("int != const int").ThatBoolean(types.Equivalent(plain, konst)).IsFalse()
}

func TestEquivalentUserDefinedBySymbolIdentity(t *testing.T) {
	a := assert.To(t)
	classA := types.SimpleType{Kind: types.SimpleClass, Symbol: ids.SymbolID(1)}
	classAAgain := types.SimpleType{Kind: types.SimpleClass, Symbol: ids.SymbolID(1)}
	classB := types.SimpleType{Kind: types.SimpleClass, Symbol: ids.SymbolID(2)}
	a.For("same backing symbol").ThatBoolean(types.Equivalent(classA.Direct(), classAAgain.Direct())).IsTrue()
	a.For("different backing symbol").ThatBoolean(types.Equivalent(classA.Direct(), classB.Direct())).IsFalse()
}

func TestApplyCVUnion(t *testing.T) {
	a := assert.To(t)
	t1 := types.ApplyCV(intType(), types.Const)
	t2 := types.ApplyCV(t1, types.Volatile)
	a.For("const").ThatBoolean(t2.CV().Has(types.Const)).IsTrue()
	a.For("volatile").ThatBoolean(t2.CV().Has(types.Volatile)).IsTrue()
}

func TestApplyCVOnReferenceIsNoOp(t *testing.T) {
	a := assert.To(t)
	ref := types.MakeReference(intType())
	a.For("reference cv stays zero").That(types.ApplyCV(ref, types.Const).CV()).Equals(types.CV(0))
}

func TestBasicTypeStripsLayers(t *testing.T) {
	a := assert.To(t)
	ty := types.MakePointer(0, types.MakeArray(types.MakeReference(intType()), nil, nil))
	a.For("basic type reaches int").ThatBoolean(types.Equivalent(types.BasicType(ty), intType())).IsTrue()
}

func TestIsDependent(t *testing.T) {
	a := assert.To(t)
	param := types.MakeDirect(types.SimpleType{Kind: types.SimpleTypeTemplateParam, Depth: 0, Index: 0})
	a.For("bare parameter").ThatBoolean(types.IsDependent(param)).IsTrue()
	a.For("pointer to parameter").ThatBoolean(types.IsDependent(types.MakePointer(0, param))).IsTrue()
	a.For("plain int is not dependent").ThatBoolean(types.IsDependent(intType())).IsFalse()
}

func TestFunctionEquivalencePositionalAndVariadic(t *testing.T) {
	a := assert.To(t)
	f1 := types.MakeFunction(types.FunctionSpec{Return: intType(), Params: []*types.Type{intType(), intType()}})
	f2 := types.MakeFunction(types.FunctionSpec{Return: intType(), Params: []*types.Type{intType(), intType()}})
	f3 := types.MakeFunction(types.FunctionSpec{Return: intType(), Params: []*types.Type{intType(), intType()}, Variadic: true})
	a.For("same shape").ThatBoolean(types.Equivalent(f1, f2)).IsTrue()
	a.For("trailing ellipsis is significant").ThatBoolean(types.Equivalent(f1, f3)).IsFalse()
}

func TestCanonicalBuiltinRoundTrip(t *testing.T) {
	a := assert.To(t)
	for _, name := range []string{"int", "unsigned long long int", "long double", "wchar_t"} {
		b, ok := types.LookupBuiltin(name)
		a.For("%s resolves", name).ThatBoolean(ok).IsTrue()
		a.For("%s round-trips", name).That(b.CanonicalName()).Equals(name)
	}
}
